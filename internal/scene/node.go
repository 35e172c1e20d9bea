package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is a transform node in the scene graph. It owns its children and at most one
// drawable (Mesh, Line, or Points) or Light.
//
// The local transform is composed from Position and Scale unless ManualTransform is set,
// in which case Matrix is used as-is and never recomputed.
type Node struct {
	Name            string
	Position        mgl32.Vec3
	Scale           mgl32.Vec3
	Matrix          mgl32.Mat4
	ManualTransform bool
	Visible         bool

	Mesh   *Mesh
	Line   *Line
	Points *Points
	Light  *Light

	parent   *Node
	children []*Node
}

// NewNode returns an empty, visible node with identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   mgl32.Vec3{1, 1, 1},
		Matrix:  mgl32.Ident4(),
		Visible: true,
	}
}

// NewMeshNode returns a node that draws m.
func NewMeshNode(name string, m *Mesh) *Node {
	n := NewNode(name)
	n.Mesh = m
	return n
}

// Add attaches child to n, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child from n. Returns false if child was not a direct child.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns the direct children in insertion order. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// FindByName does a depth-first search of n and its descendants.
func (n *Node) FindByName(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// SetPosition sets the position used by the composed transform.
func (n *Node) SetPosition(x, y, z float32) {
	n.Position = mgl32.Vec3{x, y, z}
}

// SetUniformScale sets the same scale on all three axes.
func (n *Node) SetUniformScale(s float32) {
	n.Scale = mgl32.Vec3{s, s, s}
}

// LocalMatrix returns the node's transform relative to its parent.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	if n.ManualTransform {
		return n.Matrix
	}
	return mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2]).
		Mul4(mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2]))
}

// ApplyMatrix pre-multiplies m onto the current local transform and hands transform
// authority to Matrix. Repeated calls compose.
func (n *Node) ApplyMatrix(m mgl32.Mat4) {
	n.Matrix = m.Mul4(n.LocalMatrix())
	n.ManualTransform = true
}

// WorldMatrix returns the transform from node space to scene space.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	if n.parent == nil {
		return n.LocalMatrix()
	}
	return n.parent.WorldMatrix().Mul4(n.LocalMatrix())
}

// WorldPosition returns the node origin in scene space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}
