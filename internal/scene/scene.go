package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// RootName is the name of the scene's root node.
const RootName = "Scene"

// Scene is the root of the node tree plus scene-wide lighting and background.
// Node names are expected to be unique; NodeByName returns the first depth-first match.
type Scene struct {
	root             *Node
	Background       colorful.Color
	Ambient          colorful.Color
	AmbientIntensity float32
}

// New returns an empty scene with a near-black blue background.
func New() *Scene {
	return &Scene{
		root:             NewNode(RootName),
		Background:       colorful.Hsl(0.51*360, 0.4, 0.02),
		Ambient:          White(),
		AmbientIntensity: 0.2,
	}
}

// Root returns the root node.
func (s *Scene) Root() *Node {
	return s.root
}

// AddNode attaches n to the root.
func (s *Scene) AddNode(n *Node) {
	s.root.Add(n)
}

// RemoveNode detaches n from wherever it sits in the tree.
func (s *Scene) RemoveNode(n *Node) bool {
	if n == nil || n.parent == nil {
		return false
	}
	if !s.contains(n) {
		return false
	}
	return n.parent.Remove(n)
}

func (s *Scene) contains(n *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == s.root {
			return true
		}
	}
	return false
}

// NodeByName returns the first node with the given name, or nil.
func (s *Scene) NodeByName(name string) *Node {
	return s.root.FindByName(name)
}

// Walk visits every visible node depth-first with its world matrix. Returning false from
// fn skips that node's children.
func (s *Scene) Walk(fn func(n *Node, world mgl32.Mat4) bool) {
	walk(s.root, mgl32.Ident4(), fn)
}

func walk(n *Node, parent mgl32.Mat4, fn func(*Node, mgl32.Mat4) bool) {
	if !n.Visible {
		return
	}
	world := parent.Mul4(n.LocalMatrix())
	if !fn(n, world) {
		return
	}
	for _, c := range n.children {
		walk(c, world, fn)
	}
}
