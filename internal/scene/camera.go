package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera is the viewer in scene units. The renderer syncs it with its own camera each frame.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32
	Near     float32
	Far      float32
}

// NewCamera returns a perspective camera above and behind the sun looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{0, 735, 2935},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     45,
		Near:     5,
		Far:      500000,
	}
}
