// Package params holds the live-tunable appearance coefficients for the sun and its glow.
package params

import (
	"math"
	"strings"
)

// Params is the parameter record. Keys match the yaml tags.
// Displacement and Noise are carried for the surface shader but no computation consumes them.
type Params struct {
	Amplitude    float64 `yaml:"amplitude"`
	Displacement float64 `yaml:"displacement"`
	Noise        float64 `yaml:"noise"`
	TimeFactor   float64 `yaml:"timeFactor"`
	Brightness   float64 `yaml:"brightness"`

	GlowFactor      float64 `yaml:"glowFactor"`
	GlowPower       float64 `yaml:"glowPower"`
	GlowTimeFactor  float64 `yaml:"glowTimeFactor"`
	VNormMultiplier float64 `yaml:"vNormMultiplier"`
	Size            float64 `yaml:"size"`
	BumpScale       float64 `yaml:"bumpScale"`
	BumpSpeed       float64 `yaml:"bumpSpeed"`
}

// Defaults returns the initial control values.
func Defaults() Params {
	return Params{
		Amplitude:    8.0,
		Displacement: 0,
		Noise:        1.0,
		TimeFactor:   -0.15,
		Brightness:   8.0,

		GlowFactor:      0.28,
		GlowPower:       7.33,
		GlowTimeFactor:  1.5,
		VNormMultiplier: 1.0,
		Size:            1,
		BumpScale:       61.0,
		BumpSpeed:       0.60,
	}
}

// Range is the control range of one key.
type Range struct {
	Key    string
	Label  string
	Folder string
	Min    float64
	Max    float64
	Step   float64
}

const (
	folderSun  = "Sun Controls"
	folderGlow = "Sun Glow Controls"
)

var ranges = []Range{
	{"amplitude", "Amplitude", folderSun, 0, 100, 0.1},
	{"displacement", "Displacement", folderSun, 0, 360, 1},
	{"noise", "Noise", folderSun, -15, 15, 0.1},
	{"timeFactor", "Rotation", folderSun, -5, 5, 0.05},
	{"brightness", "Brightness", folderSun, -20, 20, 0.1},
	{"glowFactor", "Spread", folderGlow, 0, 3, 0.01},
	{"glowPower", "Intensity", folderGlow, 0.01, 10, 0.01},
	{"vNormMultiplier", "V Norm Multiplier", folderGlow, 0.01, 5, 0.01},
	{"glowTimeFactor", "Time Factor", folderGlow, -5, 25, 0.5},
	{"size", "Size", folderGlow, 0.5, 5, 0.01},
	{"bumpScale", "Corona Size", folderGlow, -5, 100, 0.5},
	{"bumpSpeed", "Corona Speed", folderGlow, 0.01, 20, 0.01},
}

// Ranges returns every control range in display order.
func Ranges() []Range {
	out := make([]Range, len(ranges))
	copy(out, ranges)
	return out
}

// Keys returns the recognised keys in display order.
func Keys() []string {
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.Key
	}
	return out
}

// Lookup returns the range for key, matching case-insensitively.
func Lookup(key string) (Range, bool) {
	for _, r := range ranges {
		if strings.EqualFold(r.Key, key) {
			return r, true
		}
	}
	return Range{}, false
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

func (p *Params) field(key string) *float64 {
	switch key {
	case "amplitude":
		return &p.Amplitude
	case "displacement":
		return &p.Displacement
	case "noise":
		return &p.Noise
	case "timeFactor":
		return &p.TimeFactor
	case "brightness":
		return &p.Brightness
	case "glowFactor":
		return &p.GlowFactor
	case "glowPower":
		return &p.GlowPower
	case "glowTimeFactor":
		return &p.GlowTimeFactor
	case "vNormMultiplier":
		return &p.VNormMultiplier
	case "size":
		return &p.Size
	case "bumpScale":
		return &p.BumpScale
	case "bumpSpeed":
		return &p.BumpSpeed
	}
	return nil
}

// Get returns the value for key.
func (p Params) Get(key string) (float64, bool) {
	r, ok := Lookup(key)
	if !ok {
		return 0, false
	}
	return *p.field(r.Key), true
}

// Sanitize replaces NaN or infinite values with the default and clamps everything to its range.
func (p Params) Sanitize() Params {
	def := Defaults()
	for _, r := range ranges {
		f := p.field(r.Key)
		if math.IsNaN(*f) || math.IsInf(*f, 0) {
			*f = *def.field(r.Key)
		}
		*f = r.Clamp(*f)
	}
	return p
}
