// Package shader holds the uniform bundles for the sun's surface and glow programs.
// Both states advance once per frame from the same clock.Frame and parameter snapshot.
package shader

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"solar-system/internal/clock"
	"solar-system/internal/geometry"
	"solar-system/internal/params"
	"solar-system/internal/scene"
)

// SunSegments is the width and height segment count of the sun sphere.
const SunSegments = 64

// SurfaceState is the surface shader's uniform set.
type SurfaceState struct {
	Amplitude  float32
	Time       float32
	Brightness float32
	Noise      float32
	Resolution mgl32.Vec2

	// Displacement has one entry per sun vertex. It is allocated but never filled;
	// DisplacementDirty is raised every frame so a renderer re-uploads it.
	Displacement      []float32
	DisplacementDirty bool
}

// NewSurfaceState returns the initial surface uniforms.
func NewSurfaceState() *SurfaceState {
	return &SurfaceState{
		Amplitude:    1,
		Time:         0.1,
		Brightness:   7,
		Displacement: make([]float32, geometry.SphereVertexCount(SunSegments, SunSegments)),
	}
}

// Advance moves the surface one frame forward.
// The phase grows by delta·timeFactor; the amplitude oscillates with global time.
func (s *SurfaceState) Advance(f clock.Frame, p params.Params) {
	s.Time += float32(f.Delta * p.TimeFactor)
	s.Amplitude = float32(p.Amplitude) * math32.Sin(mgl32.DegToRad(float32(f.Time)*5)*0.125)
	s.Brightness = float32(p.Brightness)
	s.Noise = float32(p.Noise)
	s.DisplacementDirty = true
}

// SetResolution publishes the viewport size.
func (s *SurfaceState) SetResolution(w, h int) {
	s.Resolution = mgl32.Vec2{float32(w), float32(h)}
}

// GlowState is the glow halo's uniform set.
type GlowState struct {
	GlowFactor      float32
	GlowPower       float32
	VNormMultiplier float32
	BumpScale       float32
	BumpSpeed       float32
	ViewVector      mgl32.Vec3
	Time            float32
	Scale           float32
	Resolution      mgl32.Vec2
}

// NewGlowState returns the initial glow uniforms.
func NewGlowState() *GlowState {
	return &GlowState{
		GlowFactor:      0.3,
		GlowPower:       1.25,
		VNormMultiplier: 1,
		BumpScale:       40,
		BumpSpeed:       1.5,
		Time:            0.1,
		Scale:           1,
	}
}

// Advance copies the glow coefficients, points the view vector from the glow to the camera,
// advances the glow phase and scales the glow node. cam or glow may be nil, in which case the
// view vector and node scale are left alone.
func (g *GlowState) Advance(f clock.Frame, p params.Params, cam *scene.Camera, glow *scene.Node) {
	g.GlowFactor = float32(p.GlowFactor)
	g.GlowPower = float32(p.GlowPower)
	g.VNormMultiplier = float32(p.VNormMultiplier)
	g.BumpScale = float32(p.BumpScale)
	g.BumpSpeed = float32(p.BumpSpeed)
	g.Time += float32(f.Delta * p.GlowTimeFactor)
	g.Scale = float32(p.Size)

	if glow == nil {
		return
	}
	glow.SetUniformScale(g.Scale)
	if cam != nil {
		g.ViewVector = cam.Position.Sub(glow.WorldPosition())
	}
}

// SetResolution publishes the viewport size.
func (g *GlowState) SetResolution(w, h int) {
	g.Resolution = mgl32.Vec2{float32(w), float32(h)}
}
