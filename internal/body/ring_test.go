package body

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"solar-system/internal/scene"
)

func saturn(angle *float64) *Body {
	return NewRinged(
		Params{Name: "Saturn", Orbit: 7800, Speed: 1.5, Radius: 189, RotateSpeed: 2.35},
		RingParams{Angle: angle, Distance: 40, Size: 120},
	)
}

func TestRingDefaults(t *testing.T) {
	b := NewRinged(Params{Name: "R"}, RingParams{Distance: math.NaN(), Size: math.NaN()})
	r := b.Ring()
	if r.Angle() != 90 || r.Distance() != 50 || r.Size() != 50 {
		t.Errorf("expected defaults 90/50/50, got %f/%f/%f", r.Angle(), r.Distance(), r.Size())
	}
}

func TestRingExplicitZeroAngleKept(t *testing.T) {
	zero := 0.0
	if got := saturn(&zero).Ring().Angle(); got != 0 {
		t.Errorf("expected explicit 0° tilt, got %f", got)
	}
}

func TestRingedCreate(t *testing.T) {
	scn := scene.New()
	meshes := &fakeMeshes{}
	b := saturn(nil)
	group := b.Create(scn, meshes)

	ring := scn.NodeByName("SaturnRingMesh")
	if ring == nil || ring.Parent() != group {
		t.Fatal("expected ring under the body's group node")
	}
	if scn.NodeByName("SaturnMesh").Parent() != group {
		t.Error("expected surface mesh under the same group")
	}
	if len(meshes.rings) != 1 {
		t.Fatalf("expected one ring geometry, got %d", len(meshes.rings))
	}
	got := meshes.rings[0]
	if got.inner != 229 || got.outer != 349 || got.theta != 64 || got.phi != 64 {
		t.Errorf("expected ring 229..349 64x64, got %+v", got)
	}
	if ring.Mesh.Material.Side != scene.DoubleSide {
		t.Error("expected double-sided ring material")
	}
	want := mgl32.HomogRotate3D(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})
	if !ring.Matrix.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("expected 90° X tilt, got %v", ring.Matrix)
	}
}

func TestRingOrientationInvariantUnderUpdate(t *testing.T) {
	scn := scene.New()
	b := saturn(nil)
	b.Create(scn, nil)
	ring := b.Ring().Node()
	before := ring.Matrix

	for ts := 0.0; ts < 50; ts += 1.7 {
		b.Update(scn, ts)
	}
	if ring.Matrix != before {
		t.Errorf("expected ring matrix unchanged, got %v want %v", ring.Matrix, before)
	}
	if b.Spin() == 0 {
		t.Error("expected the body itself to have spun")
	}
	// ring follows the orbit through its parent
	gp := b.Node().WorldPosition()
	rp := ring.WorldPosition()
	if !rp.ApproxEqualThreshold(gp, 1e-3) {
		t.Errorf("expected ring origin at body position %v, got %v", gp, rp)
	}
}
