package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"solar-system/internal/params"
)

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Error("expected defaults for a missing file")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Error("expected defaults alongside the error")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.yaml")
	body := `
window:
  width: 800
time_scale: 20
overlays:
  stars: false
params:
  amplitude: 500
  brightness: -2
system:
  sun_size: 100
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Window.Width != 800 || c.Window.Height != 720 {
		t.Errorf("expected 800x720, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.TimeScale != 20 {
		t.Errorf("expected time scale 20, got %f", c.TimeScale)
	}
	if c.Overlays.Stars || !c.Overlays.Guides {
		t.Errorf("expected stars off and guides on, got %+v", c.Overlays)
	}
	if c.Params.Amplitude != 100 || c.Params.Brightness != -2 || c.Params.GlowPower != params.Defaults().GlowPower {
		t.Errorf("unexpected params %+v", c.Params)
	}
	if c.System.SunSize != 100 || c.System.EarthOrbit() != 400 || len(c.System.Bodies) != 9 {
		t.Errorf("unexpected system %+v", c.System)
	}
}

func TestNormalize(t *testing.T) {
	c := Default()
	c.Window.Width = -1
	c.RenderScale = 0
	c.System.Bodies = nil
	n := c.Normalize()
	if n.Window.Width != 1280 || n.RenderScale != 0.01 || len(n.System.Bodies) != 9 {
		t.Errorf("expected defaults restored, got %+v", n)
	}
}

func TestNormalizeRejectsNonFiniteScales(t *testing.T) {
	tests := []float64{math.NaN(), math.Inf(1), math.Inf(-1), -2}
	for _, v := range tests {
		c := Default()
		c.TimeScale = v
		c.RenderScale = v
		n := c.Normalize()
		if n.TimeScale != Default().TimeScale || n.RenderScale != Default().RenderScale {
			t.Errorf("%f: expected default scales, got time=%f render=%f", v, n.TimeScale, n.RenderScale)
		}
	}
}

func TestLoadNonFiniteScales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.yaml")
	if err := os.WriteFile(path, []byte("time_scale: .nan\nrender_scale: .inf\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.TimeScale != Default().TimeScale || c.RenderScale != Default().RenderScale {
		t.Errorf("expected default scales, got time=%f render=%f", c.TimeScale, c.RenderScale)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "solar.yaml")
	c := Default()
	c.Window.Fullscreen = true
	c.Params.Noise = 3
	if err := Save(path, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("expected saved config back, got %+v", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := Default()
	clone := c.Clone()
	if !reflect.DeepEqual(c, clone) {
		t.Fatalf("expected equal clone, got %+v", clone)
	}

	clone.System.Bodies[0].Name = "Vulcan"
	clone.System.Orbits[0].Factor = 9
	for i := range clone.System.Bodies {
		if r := clone.System.Bodies[i].Ring; r != nil {
			*r.Angle = 45
			r.Size = 99
		}
	}

	if c.System.Bodies[0].Name != "Mercury" || c.System.Orbits[0].Factor != 0.57 {
		t.Errorf("expected original slices untouched, got %+v", c.System.Bodies[0])
	}
	for _, b := range c.System.Bodies {
		if b.Ring != nil && (*b.Ring.Angle == 45 || b.Ring.Size == 99) {
			t.Errorf("%s: expected original ring untouched, got %+v", b.Name, *b.Ring)
		}
	}
}
