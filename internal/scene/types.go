package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Texture is an opaque handle supplied by the asset loader. The scene never looks inside it.
type Texture any

// Geometry is an opaque mesh handle returned by a MeshFactory.
type Geometry any

// MeshFactory builds geometry from dimensions. Vertex generation belongs to the implementation
// (raylib in the app, a recording fake in tests).
type MeshFactory interface {
	Sphere(radius float32, widthSegments, heightSegments int) Geometry
	Ring(innerRadius, outerRadius float32, thetaSegments, phiSegments int) Geometry
}

// TextureSource resolves a texture by catalogue name. Unknown names return nil.
type TextureSource interface {
	Texture(name string) Texture
}

// MaterialKind selects how the renderer shades a mesh.
type MaterialKind int

const (
	MaterialLambert MaterialKind = iota
	MaterialSurfaceShader
	MaterialGlowShader
)

// Side selects which faces are drawn.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Material describes how a mesh is shaded. Texture may be nil (tint only).
type Material struct {
	Kind     MaterialKind
	Texture  Texture
	Color    colorful.Color
	Side     Side
	Additive bool
}

// Mesh pairs geometry with a material.
type Mesh struct {
	Geometry Geometry
	Material Material
}

// Line is a polyline drawn in the node's space (orbit guides).
type Line struct {
	Points []mgl32.Vec3
	Color  colorful.Color
}

// Points is a point cloud drawn in the node's space (starfield layers).
type Points struct {
	Points []mgl32.Vec3
	Color  colorful.Color
	Size   float32
}

// Light marks a node as a point light at its world position.
type Light struct {
	Color     colorful.Color
	Intensity float32
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// White returns the default tint.
func White() colorful.Color {
	return white
}
