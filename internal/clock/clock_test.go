package clock

import (
	"math"
	"testing"
	"time"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockFirstTick(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWithSource(10, ft.now)

	f := c.Tick()
	if f.Time != 0 || f.Delta != 0 {
		t.Errorf("expected zero first frame, got %+v", f)
	}
}

func TestClockTickAdvances(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWithSource(10, ft.now)
	c.Tick()

	ft.advance(500 * time.Millisecond)
	f := c.Tick()
	if math.Abs(f.Delta-0.5) > 1e-9 {
		t.Errorf("expected delta 0.5, got %f", f.Delta)
	}
	if math.Abs(f.Time-5) > 1e-9 {
		t.Errorf("expected time 5, got %f", f.Time)
	}

	ft.advance(250 * time.Millisecond)
	f = c.Tick()
	if math.Abs(f.Delta-0.25) > 1e-9 {
		t.Errorf("expected delta 0.25, got %f", f.Delta)
	}
	if math.Abs(f.Time-7.5) > 1e-9 {
		t.Errorf("expected time 7.5, got %f", f.Time)
	}
	if c.Frames() != 3 {
		t.Errorf("expected 3 frames, got %d", c.Frames())
	}
}

func TestClockBackwardsTimeClampsDelta(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWithSource(10, ft.now)
	c.Tick()
	ft.advance(-time.Second)
	if f := c.Tick(); f.Delta != 0 {
		t.Errorf("expected delta 0 on backwards step, got %f", f.Delta)
	}
}

func TestClockDefaultScale(t *testing.T) {
	tests := []float64{0, -3, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, in := range tests {
		c := New(in)
		if c.UnitsPerSecond() != DefaultUnitsPerSecond {
			t.Errorf("New(%f): expected %d units/s, got %f", in, DefaultUnitsPerSecond, c.UnitsPerSecond())
		}
	}
	if got := New(2.5).UnitsPerSecond(); got != 2.5 {
		t.Errorf("expected 2.5 units/s kept, got %f", got)
	}
}

func TestClockTimeStaysFiniteWithBadScale(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWithSource(math.NaN(), ft.now)
	c.Tick()
	ft.advance(time.Second)
	if f := c.Tick(); math.IsNaN(f.Time) || math.Abs(f.Time-DefaultUnitsPerSecond) > 1e-9 {
		t.Errorf("expected time %d, got %f", DefaultUnitsPerSecond, f.Time)
	}
}
