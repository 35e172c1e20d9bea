// Package starfield generates the backdrop: two random point clouds reused by twenty
// rotated, scaled layers.
package starfield

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"solar-system/internal/scene"
)

const (
	// Extent is the half-size of the cube the points are drawn from.
	Extent = 2000

	firstLayer = 10
	lastLayer  = 30
	maxAngle   = 6

	// NodePrefix names layer nodes Stars10..Stars29.
	NodePrefix = "Stars"
)

// SetSizes are the point counts of the two clouds.
var SetSizes = [2]int{50, 375}

// Style is one entry of the star palette.
type Style struct {
	Color colorful.Color
	Size  float32
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("starfield: bad palette colour %q", s))
	}
	return c
}

// Palette is indexed by layer % 6.
var Palette = [6]Style{
	{mustHex("#dddddd"), 2},
	{mustHex("#dddddd"), 1},
	{mustHex("#aaaaaa"), 2},
	{mustHex("#7a7a7a"), 1},
	{mustHex("#5a5a5a"), 2},
	{mustHex("#5a5a5a"), 1},
}

// Layer is one rotated, scaled copy of a point set.
type Layer struct {
	Index    int
	Set      int
	Style    Style
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    float32
}

// Matrix returns the layer's fixed transform.
func (l Layer) Matrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(l.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(l.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(l.Rotation[2]))
	return rot.Mul4(mgl32.Scale3D(l.Scale, l.Scale, l.Scale))
}

// Field is a generated starfield.
type Field struct {
	Sets   [2][]mgl32.Vec3
	Layers []Layer
}

// Generate builds a starfield. The same seed always yields the same field.
func Generate(seed uint64) Field {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var f Field
	for s, n := range SetSizes {
		pts := make([]mgl32.Vec3, n)
		for i := range pts {
			pts[i] = mgl32.Vec3{
				(rng.Float32()*2 - 1) * Extent,
				(rng.Float32()*2 - 1) * Extent,
				(rng.Float32()*2 - 1) * Extent,
			}
		}
		f.Sets[s] = pts
	}
	for i := firstLayer; i < lastLayer; i++ {
		f.Layers = append(f.Layers, Layer{
			Index: i,
			Set:   i % 2,
			Style: Palette[i%len(Palette)],
			Rotation: mgl32.Vec3{
				rng.Float32() * maxAngle,
				rng.Float32() * maxAngle,
				rng.Float32() * maxAngle,
			},
			Scale: float32(i * 10),
		})
	}
	return f
}

// Nodes returns one manually transformed point-cloud node per layer. Layers share the
// underlying point slices.
func (f Field) Nodes() []*scene.Node {
	nodes := make([]*scene.Node, 0, len(f.Layers))
	for _, l := range f.Layers {
		n := scene.NewNode(fmt.Sprintf("%s%d", NodePrefix, l.Index))
		n.Points = &scene.Points{Points: f.Sets[l.Set], Color: l.Style.Color, Size: l.Style.Size}
		n.Matrix = l.Matrix()
		n.ManualTransform = true
		nodes = append(nodes, n)
	}
	return nodes
}
