// Package geometry generates the few meshes raylib has no generator for.
package geometry

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minThetaSegments = 3
	minPhiSegments   = 1

	// maxVertices is the most a uint16 index buffer can address.
	maxVertices = math.MaxUint16 + 1
)

// Vertex is one ring vertex. Normals face +Z.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Annulus is an indexed flat ring in the XY plane centred on the origin.
type Annulus struct {
	Vertices []Vertex
	Indices  []uint16
	Inner    float32
	Outer    float32
}

// Ring builds a flat annulus. U runs radially from the inner edge (0) to the outer edge (1)
// so a strip texture maps across the band instead of around it; V runs around the ring.
// thetaSegments is clamped to at least 3, phiSegments to at least 1. Counts that would need
// more vertices than uint16 indices can address are reduced, phi first.
func Ring(inner, outer float32, thetaSegments, phiSegments int) Annulus {
	if thetaSegments < minThetaSegments {
		thetaSegments = minThetaSegments
	}
	if phiSegments < minPhiSegments {
		phiSegments = minPhiSegments
	}
	if thetaSegments+1 > maxVertices/(minPhiSegments+1) {
		thetaSegments = maxVertices/(minPhiSegments+1) - 1
	}
	if (phiSegments+1)*(thetaSegments+1) > maxVertices {
		phiSegments = maxVertices/(thetaSegments+1) - 1
	}
	if outer < inner {
		inner, outer = outer, inner
	}
	a := Annulus{
		Vertices: make([]Vertex, 0, (phiSegments+1)*(thetaSegments+1)),
		Indices:  make([]uint16, 0, phiSegments*thetaSegments*6),
		Inner:    inner,
		Outer:    outer,
	}
	normal := mgl32.Vec3{0, 0, 1}
	for i := 0; i <= phiSegments; i++ {
		u := float32(i) / float32(phiSegments)
		r := inner + (outer-inner)*u
		for j := 0; j <= thetaSegments; j++ {
			v := float32(j) / float32(thetaSegments)
			theta := v * 2 * math32.Pi
			a.Vertices = append(a.Vertices, Vertex{
				Position: mgl32.Vec3{r * math32.Cos(theta), r * math32.Sin(theta), 0},
				Normal:   normal,
				UV:       mgl32.Vec2{u, v},
			})
		}
	}
	stride := thetaSegments + 1
	for i := 0; i < phiSegments; i++ {
		for j := 0; j < thetaSegments; j++ {
			a0 := uint16(i*stride + j)
			a1 := a0 + 1
			b0 := uint16((i+1)*stride + j)
			b1 := b0 + 1
			a.Indices = append(a.Indices, a0, b0, a1, a1, b0, b1)
		}
	}
	return a
}

// TriangleCount returns the number of indexed triangles.
func (a Annulus) TriangleCount() int {
	return len(a.Indices) / 3
}

// SphereVertexCount returns the vertex count of a UV sphere with the given segments
// (one extra column and row for the texture seam and poles).
func SphereVertexCount(widthSegments, heightSegments int) int {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	return (widthSegments + 1) * (heightSegments + 1)
}
