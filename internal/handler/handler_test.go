package handler

import (
	"testing"

	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/layout"
	"github.com/stretchr/testify/require"
)

type call struct {
	op        string
	id        diagram.ID
	delta     geometry.Delta
	newParent *diagram.Shape
	hints     *Hints
	bounds    geometry.Bounds
	layout    layout.Hints
}

// recorder is a Modeling that only records what it was asked to do.
type recorder struct {
	calls []call
	err   error
}

func (r *recorder) MoveShape(s *diagram.Shape, delta geometry.Delta, newParent *diagram.Shape, hints *Hints) error {
	r.calls = append(r.calls, call{op: "moveShape", id: s.ID, delta: delta, newParent: newParent, hints: hints})
	return r.err
}

func (r *recorder) MoveConnection(c *diagram.Connection, delta geometry.Delta, newParent *diagram.Shape, hints *Hints) error {
	r.calls = append(r.calls, call{op: "moveConnection", id: c.ID, delta: delta, newParent: newParent, hints: hints})
	return r.err
}

func (r *recorder) ResizeShape(s *diagram.Shape, bounds geometry.Bounds) error {
	r.calls = append(r.calls, call{op: "resizeShape", id: s.ID, bounds: bounds})
	return r.err
}

func (r *recorder) LayoutConnection(c *diagram.Connection, hints layout.Hints) error {
	r.calls = append(r.calls, call{op: "layoutConnection", id: c.ID, layout: hints})
	return r.err
}

func (r *recorder) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op + " " + string(c.id)
	}
	return out
}

func box(id string, x, y, w, h float64) *diagram.Shape {
	return &diagram.Shape{ID: diagram.ID(id), Bounds: geometry.Bounds{X: x, Y: y, Width: w, Height: h}}
}

func add(t *testing.T, d *diagram.Diagram, s, parent *diagram.Shape) *diagram.Shape {
	t.Helper()
	require.NoError(t, d.AddShape(s, parent))
	return s
}

func connect(t *testing.T, d *diagram.Diagram, id string, source, target *diagram.Shape) *diagram.Connection {
	t.Helper()
	c := &diagram.Connection{
		ID:        diagram.ID(id),
		Source:    source.ID,
		Target:    target.ID,
		Waypoints: []geometry.Point{source.Center(), target.Center()},
	}
	require.NoError(t, d.AddConnection(c, nil))
	return c
}

func childIDs(d *diagram.Diagram, s *diagram.Shape) []diagram.ID {
	var out []diagram.ID
	for _, el := range d.Children(s) {
		out = append(out, el.ElementID())
	}
	return out
}
