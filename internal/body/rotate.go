package body

import "strings"

// RotateDir selects the self-rotation axis and sense.
type RotateDir int

const (
	// CounterClockwise spins about +Y. It is the default.
	CounterClockwise RotateDir = iota
	// Clockwise spins about Y with a negated angle.
	Clockwise
	// AxisUp spins about X (tumbling end over end).
	AxisUp
)

func (d RotateDir) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case AxisUp:
		return "Up"
	default:
		return "CounterClockwise"
	}
}

// ParseRotateDir maps a name to a RotateDir. Matching is case-insensitive; anything
// unrecognised falls back to CounterClockwise.
func ParseRotateDir(s string) RotateDir {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "axisup":
		return AxisUp
	case "clockwise", "cw":
		return Clockwise
	default:
		return CounterClockwise
	}
}

// valid reports whether d is one of the declared directions.
func (d RotateDir) valid() bool {
	return d >= CounterClockwise && d <= AxisUp
}
