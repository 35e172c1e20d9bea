package body

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"solar-system/internal/scene"
)

const (
	ringThetaSegments = 64
	ringPhiSegments   = 64

	defaultRingAngle    = 90
	defaultRingDistance = 50
	defaultRingSize     = 50

	// RingSuffix is appended to the body name to name its ring mesh node.
	RingSuffix = "RingMesh"
)

// RingParams configure a ring. A nil Angle means the default 90° tilt; an explicit 0 is kept.
// NaN Distance or Size fall back to 50.
type RingParams struct {
	Texture  scene.Texture
	Angle    *float64
	Distance float64
	Size     float64
}

// Ring is a flat annulus around a body, tilted once about X at creation.
type Ring struct {
	texture  scene.Texture
	angle    float64
	distance float64
	size     float64
	node     *scene.Node
}

func newRing(p RingParams) *Ring {
	angle := float64(defaultRingAngle)
	if p.Angle != nil && !math.IsNaN(*p.Angle) && !math.IsInf(*p.Angle, 0) {
		angle = *p.Angle
	}
	return &Ring{
		texture:  p.Texture,
		angle:    angle,
		distance: orDefault(p.Distance, defaultRingDistance),
		size:     orDefault(p.Size, defaultRingSize),
	}
}

func orDefault(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

func (r *Ring) Angle() float64    { return r.angle }
func (r *Ring) Distance() float64 { return r.distance }
func (r *Ring) Size() float64     { return r.size }

// Node returns the ring mesh node, or nil before the owning body is created.
func (r *Ring) Node() *scene.Node { return r.node }

// InnerRadius is the ring's inner edge for a body of the given radius.
func (r *Ring) InnerRadius(bodyRadius float64) float64 {
	return bodyRadius + r.distance
}

// OuterRadius is the ring's outer edge for a body of the given radius.
func (r *Ring) OuterRadius(bodyRadius float64) float64 {
	return bodyRadius + r.distance + r.size
}

// attach builds the ring mesh as a sibling of the surface mesh so it follows the orbit
// but not the body's spin.
func (r *Ring) attach(group *scene.Node, b *Body, meshes scene.MeshFactory) {
	inner := float32(r.InnerRadius(b.radius))
	outer := float32(r.OuterRadius(b.radius))
	var geom scene.Geometry
	if meshes != nil {
		geom = meshes.Ring(inner, outer, ringThetaSegments, ringPhiSegments)
	}
	n := scene.NewMeshNode(b.name+RingSuffix, &scene.Mesh{
		Geometry: geom,
		Material: scene.Material{
			Kind:    scene.MaterialLambert,
			Texture: r.texture,
			Color:   b.color,
			Side:    scene.DoubleSide,
		},
	})
	n.ApplyMatrix(mgl32.HomogRotate3D(mgl32.DegToRad(float32(r.angle)), mgl32.Vec3{1, 0, 0}))
	group.Add(n)
	r.node = n
}
