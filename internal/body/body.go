// Package body models the orbiting bodies: a plain sphere on a circular path that spins
// about its own axis, optionally carrying a tilted ring.
package body

import (
	"math"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"solar-system/internal/scene"
)

const (
	sphereWidthSegments  = 32
	sphereHeightSegments = 32

	// MeshSuffix is appended to the body name to name its surface mesh node.
	MeshSuffix = "Mesh"
)

// Drawable is anything that can attach itself to a scene.
type Drawable interface {
	Create(scn *scene.Scene, meshes scene.MeshFactory) *scene.Node
}

// Updatable is anything that recomputes its transform for a point in scene time.
type Updatable interface {
	Update(scn *scene.Scene, t float64)
}

// Params are the construction parameters of a body. NaN or infinite numbers become 0.
// Color is a hex string ("#2194ce"); empty or invalid means white.
type Params struct {
	Name        string
	Texture     scene.Texture
	Orbit       float64
	Speed       float64
	Radius      float64
	Color       string
	RotateSpeed float64
	RotateDir   RotateDir
	X, Y, Z     float64
}

// Body is a celestial body. Its transform node is created once by Create and updated
// every frame by Update. A Body with a Ring is the ringed specialisation.
type Body struct {
	name        string
	texture     scene.Texture
	orbit       float64
	speed       float64
	radius      float64
	color       colorful.Color
	rotateSpeed float64
	rotateDir   RotateDir
	offset      mgl32.Vec3

	ring *Ring
	node *scene.Node
	spin float64
}

// New returns a plain body.
func New(p Params) *Body {
	name := p.Name
	if name == "" {
		name = "Obj" + strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	dir := p.RotateDir
	if !dir.valid() {
		dir = CounterClockwise
	}
	return &Body{
		name:        name,
		texture:     p.Texture,
		orbit:       finite(p.Orbit),
		speed:       finite(p.Speed),
		radius:      finite(p.Radius),
		color:       parseColor(p.Color),
		rotateSpeed: finite(p.RotateSpeed),
		rotateDir:   dir,
		offset:      mgl32.Vec3{float32(finite(p.X)), float32(finite(p.Y)), float32(finite(p.Z))},
	}
}

// NewRinged returns a body carrying a ring.
func NewRinged(p Params, rp RingParams) *Body {
	b := New(p)
	b.ring = newRing(rp)
	return b
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseColor(s string) colorful.Color {
	if s == "" {
		return scene.White()
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return scene.White()
	}
	return c
}

func (b *Body) Name() string           { return b.name }
func (b *Body) Orbit() float64         { return b.orbit }
func (b *Body) Speed() float64         { return b.speed }
func (b *Body) Radius() float64        { return b.radius }
func (b *Body) Color() colorful.Color  { return b.color }
func (b *Body) RotateSpeed() float64   { return b.rotateSpeed }
func (b *Body) RotateDir() RotateDir   { return b.rotateDir }
func (b *Body) Offset() mgl32.Vec3     { return b.offset }
func (b *Body) Ring() *Ring            { return b.ring }
func (b *Body) Texture() scene.Texture { return b.texture }

// Node returns the transform node, or nil before Create.
func (b *Body) Node() *scene.Node { return b.node }

// Spin returns the total self-rotation applied so far, in radians. It grows without bound.
func (b *Body) Spin() float64 { return b.spin }

// Create builds the surface mesh inside a group node named after the body and adds the
// group to scn at the initial offset. A nil scn is a no-op. Calling Create again returns
// the existing node.
func (b *Body) Create(scn *scene.Scene, meshes scene.MeshFactory) *scene.Node {
	if scn == nil {
		return nil
	}
	if b.node != nil {
		return b.node
	}
	var geom scene.Geometry
	if meshes != nil {
		geom = meshes.Sphere(float32(b.radius), sphereWidthSegments, sphereHeightSegments)
	}
	surface := scene.NewMeshNode(b.name+MeshSuffix, &scene.Mesh{
		Geometry: geom,
		Material: scene.Material{
			Kind:    scene.MaterialLambert,
			Texture: b.texture,
			Color:   b.color,
		},
	})
	group := scene.NewNode(b.name)
	group.Add(surface)
	scn.AddNode(group)
	group.Position = b.offset
	b.node = group

	if b.ring != nil {
		b.ring.attach(group, b, meshes)
	}
	return group
}

// Update moves the group to its orbital position for scene time t and composes one
// self-rotation step onto the surface mesh. No-op when scn is nil or Create has not run.
func (b *Body) Update(scn *scene.Scene, t float64) {
	if scn == nil || b.node == nil {
		return
	}
	x, y, z := OrbitPosition(b.orbit, b.speed, t)

	b.node.ManualTransform = true
	b.node.Position = mgl32.Vec3{float32(x), float32(y), float32(z)}
	b.node.Matrix = mgl32.Translate3D(float32(x), float32(y), float32(z))

	surface := b.node.FindByName(b.name + MeshSuffix)
	if surface == nil {
		return
	}
	angle := b.rotateSpeed * math.Pi / 180
	surface.ManualTransform = true
	surface.ApplyMatrix(spinStep(b.rotateDir, float32(angle)))
	b.spin += angle
}

func spinStep(dir RotateDir, angle float32) mgl32.Mat4 {
	switch dir {
	case AxisUp:
		return mgl32.HomogRotate3D(angle, mgl32.Vec3{1, 0, 0})
	case Clockwise:
		return mgl32.HomogRotate3D(-angle, mgl32.Vec3{0, 1, 0})
	default:
		return mgl32.HomogRotate3D(angle, mgl32.Vec3{0, 1, 0})
	}
}

// OrbitPosition returns the position on a circular orbit at scene time t. Angles are in
// degrees: x = sin(t/speed)·orbit and z = sin(t/speed + 90)·orbit. A zero speed pins the
// body at its t = 0 position.
func OrbitPosition(orbit, speed, t float64) (x, y, z float64) {
	var deg float64
	if speed != 0 {
		deg = t / speed
	}
	x = math.Sin(deg*math.Pi/180) * orbit
	z = math.Sin((deg+90)*math.Pi/180) * orbit
	return x, 0, z
}
