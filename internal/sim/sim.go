// Package sim assembles the solar-system scene and advances it once per frame.
package sim

import (
	"fmt"

	"solar-system/internal/clock"
	"solar-system/internal/commands"
	"solar-system/internal/config"
	"solar-system/internal/logger"
	"solar-system/internal/orbit"
	"solar-system/internal/params"
	"solar-system/internal/scene"
	"solar-system/internal/shader"
	"solar-system/internal/starfield"
)

// Node names created by New.
const (
	LightName = "SunLight"
	SunName   = "Sun"
	GlowName  = "SunGlow"
)

const (
	glowPadding    = 250
	glowWidthSegs  = 32
	glowHeightSegs = 16
	sunTextureName = "sun"
	lightIntensity = 1
)

// Context carries the shared scene, camera and clock. Zero fields are filled in by New.
type Context struct {
	Scene  *scene.Scene
	Camera *scene.Camera
	Clock  *clock.Clock
}

// Sim owns the orbit engine and the sun's shader states.
type Sim struct {
	ctx    Context
	engine *orbit.Engine
	store  params.Source
	log    *logger.Logger

	light  *scene.Node
	sun    *scene.Node
	glow   *scene.Node
	guides []*scene.Node
	stars  []*scene.Node

	surface *shader.SurfaceState
	halo    *shader.GlowState

	frame    clock.Frame
	snapshot params.Params
}

// New builds the scene: a point light carrying the sun and its glow, one orbit guide per
// table entry, the starfield and every body. meshes and textures may be nil.
func New(ctx Context, cfg config.Config, meshes scene.MeshFactory, textures scene.TextureSource,
	store params.Source, log *logger.Logger) (*Sim, error) {
	if store == nil {
		return nil, fmt.Errorf("sim: nil parameter source")
	}
	if log == nil {
		log = logger.Memory(logger.LevelWarn)
	}
	if ctx.Scene == nil {
		ctx.Scene = scene.New()
	}
	if ctx.Camera == nil {
		ctx.Camera = scene.NewCamera()
	}
	if ctx.Clock == nil {
		ctx.Clock = clock.New(cfg.TimeScale)
	}

	engine, err := orbit.Build(cfg.System, textures)
	if err != nil {
		return nil, fmt.Errorf("sim: build system: %w", err)
	}

	s := &Sim{
		ctx:      ctx,
		engine:   engine,
		store:    store,
		log:      log,
		surface:  shader.NewSurfaceState(),
		halo:     shader.NewGlowState(),
		snapshot: store.Snapshot(),
	}
	s.buildSun(cfg.System.SunSize, meshes, textures)

	s.guides = engine.AddGuides(ctx.Scene, cfg.System.GuideSegments, scene.White())
	s.SetGuidesVisible(cfg.Overlays.Guides)

	for _, n := range starfield.Generate(cfg.StarSeed).Nodes() {
		ctx.Scene.AddNode(n)
		s.stars = append(s.stars, n)
	}
	s.SetStarsVisible(cfg.Overlays.Stars)

	engine.CreateAll(ctx.Scene, meshes)
	log.Infof("scene ready: %d bodies, %d guides, %d star layers", engine.Len(), len(s.guides), len(s.stars))
	return s, nil
}

func (s *Sim) buildSun(size float64, meshes scene.MeshFactory, textures scene.TextureSource) {
	var tex scene.Texture
	if textures != nil {
		tex = textures.Texture(sunTextureName)
	}
	var sunGeom, glowGeom scene.Geometry
	if meshes != nil {
		sunGeom = meshes.Sphere(float32(size), shader.SunSegments, shader.SunSegments)
		glowGeom = meshes.Sphere(float32(size+glowPadding), glowWidthSegs, glowHeightSegs)
	}

	s.light = scene.NewNode(LightName)
	s.light.Light = &scene.Light{Color: scene.White(), Intensity: lightIntensity}

	s.sun = scene.NewMeshNode(SunName, &scene.Mesh{
		Geometry: sunGeom,
		Material: scene.Material{Kind: scene.MaterialSurfaceShader, Texture: tex, Color: scene.White()},
	})
	s.glow = scene.NewMeshNode(GlowName, &scene.Mesh{
		Geometry: glowGeom,
		Material: scene.Material{
			Kind:     scene.MaterialGlowShader,
			Color:    scene.White(),
			Side:     scene.BackSide,
			Additive: true,
		},
	})
	s.light.Add(s.sun)
	s.light.Add(s.glow)
	s.ctx.Scene.AddNode(s.light)
}

// Step samples the clock once, moves every body and advances both shader states with the
// same frame and parameter snapshot.
func (s *Sim) Step() clock.Frame {
	f := s.ctx.Clock.Tick()
	p := s.store.Snapshot()
	s.engine.UpdateAll(s.ctx.Scene, f.Time)
	s.surface.Advance(f, p)
	s.halo.Advance(f, p, s.ctx.Camera, s.glow)
	s.frame, s.snapshot = f, p
	return f
}

// Resize publishes the viewport size to both shader states.
func (s *Sim) Resize(w, h int) {
	s.surface.SetResolution(w, h)
	s.halo.SetResolution(w, h)
	s.log.Debugf("viewport %dx%d", w, h)
}

// SetGuidesVisible shows or hides the orbit guides.
func (s *Sim) SetGuidesVisible(v bool) {
	for _, n := range s.guides {
		n.Visible = v
	}
}

// SetStarsVisible shows or hides the starfield.
func (s *Sim) SetStarsVisible(v bool) {
	for _, n := range s.stars {
		n.Visible = v
	}
}

// RegisterCommands adds "cmd guides" and "cmd stars".
func (s *Sim) RegisterCommands(reg *commands.Registry) {
	reg.Toggle("guides", "guides --show|--hide: orbit guide curves", s.SetGuidesVisible)
	reg.Toggle("stars", "stars --show|--hide: starfield", s.SetStarsVisible)
}

func (s *Sim) Context() Context              { return s.ctx }
func (s *Sim) Scene() *scene.Scene           { return s.ctx.Scene }
func (s *Sim) Camera() *scene.Camera         { return s.ctx.Camera }
func (s *Sim) Engine() *orbit.Engine         { return s.engine }
func (s *Sim) Sun() *scene.Node              { return s.sun }
func (s *Sim) SunGlow() *scene.Node          { return s.glow }
func (s *Sim) Light() *scene.Node            { return s.light }
func (s *Sim) Guides() []*scene.Node         { return s.guides }
func (s *Sim) Stars() []*scene.Node          { return s.stars }
func (s *Sim) Surface() *shader.SurfaceState { return s.surface }
func (s *Sim) Glow() *shader.GlowState       { return s.halo }

// Frame returns the timing of the last Step.
func (s *Sim) Frame() clock.Frame { return s.frame }

// Params returns the snapshot used by the last Step.
func (s *Sim) Params() params.Params { return s.snapshot }
