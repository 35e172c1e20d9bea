package orbit

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"solar-system/internal/scene"
)

// DefaultGuideSegments is the polyline resolution of an orbit guide.
const DefaultGuideSegments = 360

// GuideSuffix is appended to a body name to name its orbit guide node.
const GuideSuffix = "Orbit"

// Guide returns a closed polyline of segments+1 points on a circle of the given radius in
// the XZ plane. The last point repeats the first. segments <= 0 uses DefaultGuideSegments.
func Guide(radius float64, segments int) []mgl32.Vec3 {
	if segments <= 0 {
		segments = DefaultGuideSegments
	}
	r := float32(radius)
	pts := make([]mgl32.Vec3, 0, segments+1)
	for i := 0; i < segments; i++ {
		theta := float32(i) / float32(segments) * math32.Pi * 2
		pts = append(pts, mgl32.Vec3{math32.Cos(theta) * r, 0, math32.Sin(theta) * r})
	}
	// float32 sin(2π) is not zero; close the loop exactly.
	return append(pts, pts[0])
}

// AddGuides adds one guide node per table entry to scn and returns them in table order.
func (e *Engine) AddGuides(scn *scene.Scene, segments int, color colorful.Color) []*scene.Node {
	if scn == nil {
		return nil
	}
	nodes := make([]*scene.Node, 0, e.table.Len())
	for _, entry := range e.table.entries {
		n := scene.NewNode(entry.Name + GuideSuffix)
		n.Line = &scene.Line{Points: Guide(entry.Radius, segments), Color: color}
		scn.AddNode(n)
		nodes = append(nodes, n)
	}
	return nodes
}
