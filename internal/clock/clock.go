package clock

import (
	"math"
	"time"
)

// DefaultUnitsPerSecond converts wall time to scene time units (10 units per second).
const DefaultUnitsPerSecond = 10

// Frame is the time information for one rendered frame.
// Time is the global scene time in scene units; Delta is real seconds since the previous Tick.
// Delta is sampled once per frame and must be handed to every consumer that needs it.
type Frame struct {
	Time  float64
	Delta float64
}

// Clock is the shared frame clock. It is never reset.
type Clock struct {
	now            func() time.Time
	start          time.Time
	last           time.Time
	started        bool
	unitsPerSecond float64
	frames         uint64
}

// New returns a clock driven by time.Now. A scale that is not a positive finite number
// uses DefaultUnitsPerSecond.
func New(unitsPerSecond float64) *Clock {
	return NewWithSource(unitsPerSecond, time.Now)
}

// NewWithSource returns a clock that reads time from now (tests pass a fake source).
func NewWithSource(unitsPerSecond float64, now func() time.Time) *Clock {
	if !(unitsPerSecond > 0) || math.IsInf(unitsPerSecond, 1) {
		unitsPerSecond = DefaultUnitsPerSecond
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, unitsPerSecond: unitsPerSecond}
}

// Tick samples the time source once and returns the frame timing.
// The first Tick starts the clock: Time 0, Delta 0.
func (c *Clock) Tick() Frame {
	t := c.now()
	if !c.started {
		c.start = t
		c.last = t
		c.started = true
	}
	delta := t.Sub(c.last).Seconds()
	if delta < 0 {
		delta = 0
	}
	c.last = t
	c.frames++
	return Frame{
		Time:  t.Sub(c.start).Seconds() * c.unitsPerSecond,
		Delta: delta,
	}
}

// Frames returns how many times Tick has been called.
func (c *Clock) Frames() uint64 {
	return c.frames
}

// UnitsPerSecond returns the scene-time scale.
func (c *Clock) UnitsPerSecond() float64 {
	return c.unitsPerSecond
}
