// Package orbit drives the orbiting bodies: an ordered registry updated once per frame,
// the orbital-radius table, and the static orbit guide curves.
package orbit

import (
	"solar-system/internal/body"
	"solar-system/internal/scene"
)

// Celestial is the capability set the engine needs from a body.
type Celestial interface {
	Name() string
	body.Drawable
	body.Updatable
}

// Engine holds named bodies in registration order. Bodies are independent of each other;
// order only fixes the iteration sequence.
type Engine struct {
	table  *Table
	order  []string
	bodies map[string]Celestial
}

// NewEngine returns an empty engine backed by table (may be nil).
func NewEngine(table *Table) *Engine {
	if table == nil {
		table = NewTable(0, nil)
	}
	return &Engine{table: table, bodies: make(map[string]Celestial)}
}

// Add registers c. Registering a name again replaces the body but keeps its slot.
func (e *Engine) Add(c Celestial) {
	if c == nil {
		return
	}
	name := c.Name()
	if _, ok := e.bodies[name]; !ok {
		e.order = append(e.order, name)
	}
	e.bodies[name] = c
}

// Get returns the body registered under name.
func (e *Engine) Get(name string) (Celestial, bool) {
	c, ok := e.bodies[name]
	return c, ok
}

// Bodies returns the bodies in registration order.
func (e *Engine) Bodies() []Celestial {
	out := make([]Celestial, 0, len(e.order))
	for _, name := range e.order {
		out = append(out, e.bodies[name])
	}
	return out
}

// Names returns the body names in registration order.
func (e *Engine) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Len returns the number of bodies.
func (e *Engine) Len() int {
	return len(e.order)
}

// Table returns the orbit table the engine was built with.
func (e *Engine) Table() *Table {
	return e.table
}

// CreateAll attaches every body to scn.
func (e *Engine) CreateAll(scn *scene.Scene, meshes scene.MeshFactory) {
	for _, name := range e.order {
		e.bodies[name].Create(scn, meshes)
	}
}

// UpdateAll recomputes every body's transform for scene time t. Runs every frame.
func (e *Engine) UpdateAll(scn *scene.Scene, t float64) {
	for _, name := range e.order {
		e.bodies[name].Update(scn, t)
	}
}
