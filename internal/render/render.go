// Package render rasterises the scene graph with raylib.
package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"solar-system/internal/logger"
	"solar-system/internal/primitives"
	"solar-system/internal/scene"
	"solar-system/internal/shader"
)

// rlgl cull modes.
const (
	cullFront int32 = 0
	cullBack  int32 = 1
)

// program is a compiled shader with a material using it.
type program struct {
	shader rl.Shader
	mtl    rl.Material
	locs   map[string]int32
}

func newProgram(fs string, uniforms ...string) program {
	p := program{mtl: rl.LoadMaterialDefault(), locs: make(map[string]int32)}
	p.shader = rl.LoadShaderFromMemory(meshVS, fs)
	if !rl.IsShaderValid(p.shader) {
		return p
	}
	p.mtl.Shader = p.shader
	for _, u := range uniforms {
		p.locs[u] = rl.GetShaderLocation(p.shader, u)
	}
	return p
}

func (p program) float(name string, v float32) {
	if loc, ok := p.locs[name]; ok && loc >= 0 {
		rl.SetShaderValue(p.shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

func (p program) vec2(name string, v mgl32.Vec2) {
	if loc, ok := p.locs[name]; ok && loc >= 0 {
		rl.SetShaderValueV(p.shader, loc, []float32{v[0], v[1]}, rl.ShaderUniformVec2, 1)
	}
}

func (p program) vec3(name string, v mgl32.Vec3) {
	if loc, ok := p.locs[name]; ok && loc >= 0 {
		rl.SetShaderValueV(p.shader, loc, []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3, 1)
	}
}

type meshItem struct {
	node  *scene.Node
	world mgl32.Mat4
}

// Renderer draws a scene. Scene units are multiplied by Scale before reaching raylib.
// Shaders are compiled on the first Draw so they are created after the window exists.
type Renderer struct {
	Scale float32

	camera  rl.Camera3D
	log     *logger.Logger
	loaded  bool
	lambert program
	surface program
	glow    program

	opaque   []meshItem
	additive []meshItem
	lightPos mgl32.Vec3
	light    scene.Light
}

// New returns a renderer with the given scene-to-raylib scale.
func New(scale float64, log *logger.Logger) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{
		Scale:  float32(scale),
		log:    log,
		camera: rl.Camera3D{Projection: rl.CameraPerspective},
		light:  scene.Light{Color: scene.White(), Intensity: 1},
	}
}

func (r *Renderer) ensureLoaded() {
	if r.loaded {
		return
	}
	r.lambert = newProgram(lambertFS, "lightPos", "lightColor", "lightIntensity", "ambient")
	r.surface = newProgram(surfaceFS, "time", "amplitude", "brightness", "noise", "resolution")
	r.glow = newProgram(glowFS, "viewVector", "glowFactor", "glowPower", "vNormMultiplier",
		"time", "bumpScale", "bumpSpeed")
	for name, p := range map[string]program{"lambert": r.lambert, "surface": r.surface, "glow": r.glow} {
		if !rl.IsShaderValid(p.shader) {
			r.log.Errorf("shader %s failed to compile, using the default", name)
		}
	}
	r.loaded = true
}

// Unload releases the shaders.
func (r *Renderer) Unload() {
	if !r.loaded {
		return
	}
	for _, p := range []program{r.lambert, r.surface, r.glow} {
		if rl.IsShaderValid(p.shader) {
			rl.UnloadShader(p.shader)
		}
	}
	r.loaded = false
}

// Draw renders scn from cam with the sun's uniforms. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(scn *scene.Scene, cam *scene.Camera, surf *shader.SurfaceState, glow *shader.GlowState) {
	r.ensureLoaded()
	r.syncCamera(cam)
	rl.ClearBackground(toColor(scn.Background, 255))

	r.opaque = r.opaque[:0]
	r.additive = r.additive[:0]
	view := mgl32.Scale3D(r.Scale, r.Scale, r.Scale)

	rl.SetClipPlanes(float64(cam.Near*r.Scale), float64(cam.Far*r.Scale))
	rl.BeginMode3D(r.camera)
	scn.Walk(func(n *scene.Node, world mgl32.Mat4) bool {
		world = view.Mul4(world)
		switch {
		case n.Light != nil:
			r.lightPos = world.Col(3).Vec3()
			r.light = *n.Light
		case n.Line != nil:
			drawLine(n.Line, world)
		case n.Points != nil:
			drawPoints(n.Points, world)
		}
		if n.Mesh != nil {
			item := meshItem{node: n, world: world}
			if n.Mesh.Material.Additive {
				r.additive = append(r.additive, item)
			} else {
				r.opaque = append(r.opaque, item)
			}
		}
		return true
	})

	ambient := colorVec(scn.Ambient).Mul(scn.AmbientIntensity)
	r.lambert.vec3("lightPos", r.lightPos)
	r.lambert.vec3("lightColor", colorVec(r.light.Color))
	r.lambert.float("lightIntensity", r.light.Intensity)
	r.lambert.vec3("ambient", ambient)

	r.surface.float("time", surf.Time)
	r.surface.float("amplitude", surf.Amplitude)
	r.surface.float("brightness", surf.Brightness)
	r.surface.float("noise", surf.Noise)
	r.surface.vec2("resolution", surf.Resolution)

	r.glow.vec3("viewVector", glow.ViewVector)
	r.glow.float("glowFactor", glow.GlowFactor)
	r.glow.float("glowPower", glow.GlowPower)
	r.glow.float("vNormMultiplier", glow.VNormMultiplier)
	r.glow.float("time", glow.Time)
	r.glow.float("bumpScale", glow.BumpScale)
	r.glow.float("bumpSpeed", glow.BumpSpeed)

	for _, it := range r.opaque {
		r.drawMesh(it, ambient)
	}
	if len(r.additive) > 0 {
		rl.BeginBlendMode(rl.BlendAdditive)
		rl.DisableDepthMask()
		for _, it := range r.additive {
			r.drawMesh(it, ambient)
		}
		rl.EnableDepthMask()
		rl.EndBlendMode()
	}
	rl.EndMode3D()
}

// syncCamera copies the scene camera into raylib units.
func (r *Renderer) syncCamera(cam *scene.Camera) {
	r.camera.Position = toVec3(cam.Position.Mul(r.Scale))
	r.camera.Target = toVec3(cam.Target.Mul(r.Scale))
	r.camera.Up = toVec3(cam.Up)
	r.camera.Fovy = cam.Fovy
}

// ControlCamera lets the user fly the camera while the right mouse button is held and
// writes the result back to cam in scene units.
func (r *Renderer) ControlCamera(cam *scene.Camera) {
	r.syncCamera(cam)
	if !rl.IsMouseButtonDown(rl.MouseButtonRight) && rl.GetMouseWheelMove() == 0 {
		return
	}
	rl.UpdateCamera(&r.camera, rl.CameraFree)
	inv := 1 / r.Scale
	cam.Position = fromVec3(r.camera.Position).Mul(inv)
	cam.Target = fromVec3(r.camera.Target).Mul(inv)
}

func (r *Renderer) drawMesh(it meshItem, ambient mgl32.Vec3) {
	m := it.node.Mesh
	tex, hasTex := m.Material.Texture.(*rl.Texture2D)

	switch m.Material.Side {
	case scene.BackSide:
		rl.SetCullFace(cullFront)
		defer rl.SetCullFace(cullBack)
	case scene.DoubleSide:
		rl.DisableBackfaceCulling()
		defer rl.EnableBackfaceCulling()
	}

	switch g := m.Geometry.(type) {
	case *primitives.Sphere:
		p := r.programFor(m.Material.Kind)
		if albedo := p.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = toColor(m.Material.Color, 255)
		}
		if hasTex {
			rl.SetMaterialTexture(&p.mtl, rl.MapAlbedo, *tex)
		} else {
			rl.SetMaterialTexture(&p.mtl, rl.MapAlbedo, rl.Texture2D{ID: rl.GetTextureIdDefault(), Width: 1, Height: 1, Mipmaps: 1})
		}
		rl.DrawMesh(g.Mesh(), p.mtl, toMatrix(it.world))
	case *primitives.Ring:
		var id uint32
		if hasTex {
			id = tex.ID
		}
		drawAnnulus(g, it.world, id, litTint(m.Material.Color, ambient, r.light))
	}
}

func (r *Renderer) programFor(kind scene.MaterialKind) *program {
	switch kind {
	case scene.MaterialSurfaceShader:
		return &r.surface
	case scene.MaterialGlowShader:
		return &r.glow
	default:
		return &r.lambert
	}
}

// drawAnnulus pushes ring triangles through the immediate-mode batch. Vertices are moved to
// world space on the CPU.
func drawAnnulus(g *primitives.Ring, world mgl32.Mat4, texID uint32, tint color.RGBA) {
	rl.SetTexture(texID)
	rl.Begin(rl.Triangles)
	rl.Color4ub(tint.R, tint.G, tint.B, tint.A)
	for _, i := range g.Indices {
		v := g.Vertices[i]
		p := world.Mul4x1(v.Position.Vec4(1))
		rl.TexCoord2f(v.UV[0], v.UV[1])
		rl.Vertex3f(p[0], p[1], p[2])
	}
	rl.End()
	rl.SetTexture(0)
}

func drawLine(l *scene.Line, world mgl32.Mat4) {
	if len(l.Points) < 2 {
		return
	}
	c := toColor(l.Color, 90)
	prev := toVec3(world.Mul4x1(l.Points[0].Vec4(1)).Vec3())
	for _, p := range l.Points[1:] {
		next := toVec3(world.Mul4x1(p.Vec4(1)).Vec3())
		rl.DrawLine3D(prev, next, c)
		prev = next
	}
}

func drawPoints(p *scene.Points, world mgl32.Mat4) {
	c := toColor(p.Color, 255)
	for _, pt := range p.Points {
		rl.DrawPoint3D(toVec3(world.Mul4x1(pt.Vec4(1)).Vec3()), c)
	}
}

// litTint approximates Lambert shading for immediate-mode geometry: half-lit plus ambient.
func litTint(c colorful.Color, ambient mgl32.Vec3, light scene.Light) color.RGBA {
	l := colorVec(light.Color).Mul(light.Intensity * 0.5).Add(ambient)
	return toColor(colorful.Color{
		R: c.R * float64(l[0]),
		G: c.G * float64(l[1]),
		B: c.B * float64(l[2]),
	}.Clamped(), 255)
}
