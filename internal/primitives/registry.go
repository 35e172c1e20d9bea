package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/geometry"
	"solar-system/internal/scene"
)

// Sphere is a sphere geometry handle. The GPU mesh is generated on first use so it is
// allocated after the window/OpenGL context exists.
type Sphere struct {
	Radius float32
	Rings  int
	Slices int
	mesh   rl.Mesh
	loaded bool
}

// Mesh returns the GPU mesh, generating it if needed.
func (s *Sphere) Mesh() rl.Mesh {
	if !s.loaded {
		s.mesh = rl.GenMeshSphere(s.Radius, s.Rings, s.Slices)
		s.loaded = true
	}
	return s.mesh
}

// Ring is an annulus drawn in immediate mode; its vertices stay on the CPU.
type Ring struct {
	geometry.Annulus
}

type sphereKey struct {
	radius        float32
	rings, slices int
}

// Registry is the raylib MeshFactory. Spheres with the same dimensions share one mesh.
type Registry struct {
	spheres map[sphereKey]*Sphere
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{spheres: make(map[sphereKey]*Sphere)}
}

// Sphere returns a sphere of the given radius. raylib counts rings top to bottom and slices
// around, matching height and width segments.
func (r *Registry) Sphere(radius float32, widthSegments, heightSegments int) scene.Geometry {
	k := sphereKey{radius, heightSegments, widthSegments}
	if s, ok := r.spheres[k]; ok {
		return s
	}
	s := &Sphere{Radius: radius, Rings: heightSegments, Slices: widthSegments}
	r.spheres[k] = s
	return s
}

// Ring returns a flat annulus in the XY plane.
func (r *Registry) Ring(innerRadius, outerRadius float32, thetaSegments, phiSegments int) scene.Geometry {
	return &Ring{Annulus: geometry.Ring(innerRadius, outerRadius, thetaSegments, phiSegments)}
}

// Unload releases every generated mesh. Call before closing the window.
func (r *Registry) Unload() {
	for _, s := range r.spheres {
		if s.loaded {
			rl.UnloadMesh(&s.mesh)
			s.loaded = false
		}
	}
}
