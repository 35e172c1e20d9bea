package orbit

import (
	"fmt"

	"solar-system/internal/body"
	"solar-system/internal/scene"
)

// RingSpec describes a ring. Distance and Size are multiples of the Earth size.
type RingSpec struct {
	Texture  string   `yaml:"texture"`
	Angle    *float64 `yaml:"angle,omitempty"`
	Distance float64  `yaml:"distance"`
	Size     float64  `yaml:"size"`
}

// BodySpec describes one body relative to Earth: Speed, Radius and RotateSpeed are multiples
// of the Earth values.
type BodySpec struct {
	Name        string    `yaml:"name"`
	Texture     string    `yaml:"texture"`
	Speed       float64   `yaml:"speed"`
	Radius      float64   `yaml:"radius"`
	RotateSpeed float64   `yaml:"rotate_speed"`
	RotateDir   string    `yaml:"rotate_dir,omitempty"`
	Color       string    `yaml:"color,omitempty"`
	Ring        *RingSpec `yaml:"ring,omitempty"`
}

// SystemSpec sizes the whole system around the sun and Earth.
type SystemSpec struct {
	SunSize          float64      `yaml:"sun_size"`
	EarthSize        float64      `yaml:"earth_size"`
	EarthSpeed       float64      `yaml:"earth_speed"`
	EarthRotateSpeed float64      `yaml:"earth_rotate_speed"`
	GuideSegments    int          `yaml:"guide_segments"`
	Orbits           []Multiplier `yaml:"orbits"`
	Bodies           []BodySpec   `yaml:"bodies"`
}

func ptr(v float64) *float64 { return &v }

// DefaultSystemSpec returns the nine-body system with Saturn and Uranus ringed.
func DefaultSystemSpec() SystemSpec {
	return SystemSpec{
		SunSize:          300,
		EarthSize:        20,
		EarthSpeed:       1,
		EarthRotateSpeed: 1,
		GuideSegments:    DefaultGuideSegments,
		Orbits:           DefaultMultipliers(),
		Bodies: []BodySpec{
			{Name: "Mercury", Texture: "mercury", Speed: 0.4, Radius: 0.38, RotateSpeed: 0.1},
			{Name: "Venus", Texture: "venus", Speed: 0.6, Radius: 0.95, RotateSpeed: 0.2},
			{Name: "Earth", Texture: "earth", Speed: 1, Radius: 1, RotateSpeed: 1, Color: "#2194ce"},
			{Name: "Mars", Texture: "mars", Speed: 1.2, Radius: 0.53, RotateSpeed: 0.975},
			{Name: "Jupiter", Texture: "jupiter", Speed: 1.4, Radius: 11.2, RotateSpeed: 2.43},
			{Name: "Saturn", Texture: "saturn", Speed: 1.5, Radius: 9.45, RotateSpeed: 2.35,
				Ring: &RingSpec{Texture: "saturnRings", Angle: ptr(90), Distance: 2, Size: 6}},
			{Name: "Uranus", Texture: "uranus", Speed: 2, Radius: 4, RotateSpeed: 1.34,
				Ring: &RingSpec{Texture: "uranusRings", Angle: ptr(0), Distance: 1.5, Size: 2}},
			{Name: "Neptune", Texture: "neptune", Speed: 2.5, Radius: 3.88, RotateSpeed: 1.25},
			{Name: "Pluto", Texture: "pluto", Speed: 3, Radius: 0.19, RotateSpeed: 0.3},
		},
	}
}

// EarthOrbit is the base reference distance: four sun radii.
func (s SystemSpec) EarthOrbit() float64 {
	return 4 * s.SunSize
}

// Table resolves the orbit multipliers against EarthOrbit.
func (s SystemSpec) Table() *Table {
	return NewTable(s.EarthOrbit(), s.Orbits)
}

// Build resolves every body against the table and registers it with a new engine.
// textures may be nil. A body without an orbit entry is an error.
func Build(s SystemSpec, textures scene.TextureSource) (*Engine, error) {
	table := s.Table()
	e := NewEngine(table)
	for _, bs := range s.Bodies {
		radius, ok := table.Radius(bs.Name)
		if !ok {
			return nil, fmt.Errorf("body %q: no orbit entry", bs.Name)
		}
		p := body.Params{
			Name:        bs.Name,
			Texture:     lookup(textures, bs.Texture),
			Orbit:       radius,
			Speed:       s.EarthSpeed * bs.Speed,
			Radius:      s.EarthSize * bs.Radius,
			Color:       bs.Color,
			RotateSpeed: s.EarthRotateSpeed * bs.RotateSpeed,
			RotateDir:   body.ParseRotateDir(bs.RotateDir),
		}
		if bs.Ring == nil {
			e.Add(body.New(p))
			continue
		}
		e.Add(body.NewRinged(p, body.RingParams{
			Texture:  lookup(textures, bs.Ring.Texture),
			Angle:    bs.Ring.Angle,
			Distance: s.EarthSize * bs.Ring.Distance,
			Size:     s.EarthSize * bs.Ring.Size,
		}))
	}
	return e, nil
}

func lookup(textures scene.TextureSource, name string) scene.Texture {
	if textures == nil || name == "" {
		return nil
	}
	return textures.Texture(name)
}
