package sim

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"solar-system/internal/clock"
	"solar-system/internal/commands"
	"solar-system/internal/config"
	"solar-system/internal/logger"
	"solar-system/internal/params"
	"solar-system/internal/scene"
)

type sphere struct {
	radius float32
	w, h   int
}

type fakeMeshes struct {
	spheres []sphere
	rings   int
}

func (f *fakeMeshes) Sphere(radius float32, w, h int) scene.Geometry {
	f.spheres = append(f.spheres, sphere{radius, w, h})
	return len(f.spheres)
}

func (f *fakeMeshes) Ring(inner, outer float32, theta, phi int) scene.Geometry {
	f.rings++
	return f.rings
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newSim(t *testing.T) (*Sim, *fakeClock, *params.Store, *fakeMeshes) {
	t.Helper()
	fc := &fakeClock{t: time.Unix(1000, 0)}
	store := params.NewStore(params.Defaults())
	meshes := &fakeMeshes{}
	ctx := Context{Clock: clock.NewWithSource(10, fc.now)}
	s, err := New(ctx, config.Default(), meshes, nil, store, logger.Memory(logger.LevelDebug))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, fc, store, meshes
}

func TestNewBuildsScene(t *testing.T) {
	s, _, _, meshes := newSim(t)
	scn := s.Scene()

	for _, name := range []string{LightName, SunName, GlowName, "Earth", "EarthMesh", "SaturnRingMesh",
		"UranusRingMesh", "PlutoOrbit", "Stars10", "Stars29"} {
		if scn.NodeByName(name) == nil {
			t.Errorf("expected node %s", name)
		}
	}
	if s.Sun().Parent() != s.Light() || s.SunGlow().Parent() != s.Light() {
		t.Error("expected sun and glow under the light")
	}
	if len(s.Guides()) != 9 || len(s.Stars()) != 20 || s.Engine().Len() != 9 {
		t.Errorf("expected 9 guides, 20 star layers, 9 bodies; got %d %d %d",
			len(s.Guides()), len(s.Stars()), s.Engine().Len())
	}
	if meshes.spheres[0] != (sphere{300, 64, 64}) || meshes.spheres[1] != (sphere{550, 32, 16}) {
		t.Errorf("unexpected sun spheres %+v", meshes.spheres[:2])
	}
	if meshes.rings != 2 {
		t.Errorf("expected 2 rings, got %d", meshes.rings)
	}
	glow := s.SunGlow().Mesh.Material
	if glow.Kind != scene.MaterialGlowShader || glow.Side != scene.BackSide || !glow.Additive {
		t.Errorf("unexpected glow material %+v", glow)
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(Context{}, config.Default(), nil, nil, nil, nil); err == nil {
		t.Error("expected error for nil parameter source")
	}
}

func TestNewRejectsBodyWithoutOrbit(t *testing.T) {
	cfg := config.Default()
	cfg.System.Orbits = cfg.System.Orbits[:3]
	_, err := New(Context{}, cfg, nil, nil, params.NewStore(params.Defaults()), nil)
	if err == nil {
		t.Error("expected error for a body without an orbit entry")
	}
}

func TestStepEarthScenario(t *testing.T) {
	s, fc, _, _ := newSim(t)
	earth := s.Scene().NodeByName("Earth")

	f := s.Step()
	if f.Time != 0 {
		t.Fatalf("expected first frame at 0, got %f", f.Time)
	}
	pos := earth.WorldPosition()
	if math.Abs(float64(pos[0])) > 1e-3 || math.Abs(float64(pos[2])-1200) > 1e-2 {
		t.Errorf("expected Earth at (0,0,1200), got %v", pos)
	}

	// 90 scene units = 9 s at 10 units per second; Earth speed 1 → 90°.
	fc.t = fc.t.Add(9 * time.Second)
	f = s.Step()
	if math.Abs(f.Time-90) > 1e-9 || math.Abs(f.Delta-9) > 1e-9 {
		t.Fatalf("expected time 90 delta 9, got %f %f", f.Time, f.Delta)
	}
	pos = earth.WorldPosition()
	if math.Abs(float64(pos[0])-1200) > 1e-2 || math.Abs(float64(pos[2])) > 1e-2 {
		t.Errorf("expected Earth at (1200,0,0), got %v", pos)
	}
}

func TestStepSharesDelta(t *testing.T) {
	s, fc, store, _ := newSim(t)
	if _, err := store.Set("timeFactor", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Set("glowTimeFactor", 4); err != nil {
		t.Fatal(err)
	}
	s.Step()
	fc.t = fc.t.Add(500 * time.Millisecond)
	s.Step()

	if got := float64(s.Surface().Time); math.Abs(got-1.1) > 1e-5 {
		t.Errorf("expected surface time 1.1, got %f", got)
	}
	if got := float64(s.Glow().Time); math.Abs(got-2.1) > 1e-5 {
		t.Errorf("expected glow time 2.1, got %f", got)
	}
	if s.Params().TimeFactor != 2 {
		t.Errorf("expected snapshot with timeFactor 2, got %f", s.Params().TimeFactor)
	}
}

func TestStepTracksCamera(t *testing.T) {
	s, _, store, _ := newSim(t)
	if _, err := store.Set("size", 2); err != nil {
		t.Fatal(err)
	}
	s.Camera().Position = mgl32.Vec3{10, 20, 30}
	s.Step()
	if s.Glow().ViewVector != (mgl32.Vec3{10, 20, 30}) {
		t.Errorf("expected view vector (10,20,30), got %v", s.Glow().ViewVector)
	}
	if s.SunGlow().Scale != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("expected glow scale 2, got %v", s.SunGlow().Scale)
	}
}

func TestResize(t *testing.T) {
	s, _, _, _ := newSim(t)
	s.Resize(1024, 768)
	want := mgl32.Vec2{1024, 768}
	if s.Surface().Resolution != want || s.Glow().Resolution != want {
		t.Errorf("expected %v, got %v %v", want, s.Surface().Resolution, s.Glow().Resolution)
	}
}

func TestToggleCommands(t *testing.T) {
	s, _, _, _ := newSim(t)
	reg := commands.NewRegistry()
	s.RegisterCommands(reg)

	if err := reg.Execute([]string{"guides", "--hide"}); err != nil {
		t.Fatal(err)
	}
	for _, n := range s.Guides() {
		if n.Visible {
			t.Fatal("expected guides hidden")
		}
	}
	if err := reg.Execute([]string{"stars", "--hide"}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Execute([]string{"stars", "--show"}); err != nil {
		t.Fatal(err)
	}
	if !s.Stars()[0].Visible {
		t.Error("expected stars shown again")
	}
}
