package modeling

import (
	"fmt"

	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/handler"
	"github.com/bethropolis/drift/internal/layout"
	"github.com/bethropolis/drift/internal/logger"
)

// autoResize grows the parent of shape until shape fits inside it. The
// canvas root and label shapes never trigger it.
func (m *Modeling) autoResize(shape *diagram.Shape) error {
	if shape.IsLabel() {
		return nil
	}
	parent := m.diagram.Parent(shape)
	if parent == nil || m.diagram.IsRoot(parent) {
		return nil
	}

	bounds, grown := fitBounds(parent.Bounds, shape.Bounds, m.opts.AutoResizePadding)
	if !grown {
		return nil
	}
	logger.DebugTagf("modeling", "auto-resize %s %s -> %s to fit %s", parent.ID, parent.Bounds, bounds, shape.ID)
	return m.ResizeShape(parent, bounds)
}

// fitBounds expands outer on each side inner sticks out of, leaving
// padding. Sides inner stays within are untouched.
func fitBounds(outer, inner geometry.Bounds, padding float64) (geometry.Bounds, bool) {
	left, top := outer.X, outer.Y
	right, bottom := outer.Right(), outer.Bottom()
	grown := false

	if inner.X < left {
		left = inner.X - padding
		grown = true
	}
	if inner.Y < top {
		top = inner.Y - padding
		grown = true
	}
	if inner.Right() > right {
		right = inner.Right() + padding
		grown = true
	}
	if inner.Bottom() > bottom {
		bottom = inner.Bottom() + padding
		grown = true
	}

	return geometry.Bounds{X: left, Y: top, Width: right - left, Height: bottom - top}, grown
}

// moveSubtreeConnections keeps the connections of shape's descendants in
// step with a recursive move. Connections whose ends all moved are
// translated; otherwise the end at a descendant is re-anchored. A
// connection between shape and the outside is left to the handler, which
// already laid it out.
func (m *Modeling) moveSubtreeConnections(shape *diagram.Shape, delta geometry.Delta, hints handler.Hints) error {
	if delta.IsZero() {
		return nil
	}
	inside := func(id diagram.ID) bool {
		s := m.diagram.Shape(id)
		return s != nil && s != shape && m.diagram.IsAncestor(shape, s)
	}

	seen := make(map[diagram.ID]bool)
	var conns []*diagram.Connection
	stack := m.diagram.ChildShapes(shape)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = append(stack[:len(stack)-1], m.diagram.ChildShapes(s)...)
		for _, c := range append(m.diagram.Outgoing(s), m.diagram.Incoming(s)...) {
			if !seen[c.ID] {
				seen[c.ID] = true
				conns = append(conns, c)
			}
		}
	}

	for _, c := range conns {
		source, target := inside(c.Source), inside(c.Target)
		own := c.Source == shape.ID || c.Target == shape.ID
		// The handler re-anchored the end at shape but kept the other one.
		relaid := own && hints.LaysOut(c)

		var err error
		switch {
		case own && !source && !target:
			continue
		case (source || own) && (target || own) && !relaid:
			err = m.MoveConnection(c, delta, nil, &handler.Hints{Layout: handler.LayoutNone})
			if err == nil {
				err = m.followLabels(c.ID, delta, shape)
			}
		case source:
			start := layout.MovedSourceAnchor(c, m.diagram.Shape(c.Source), delta)
			err = m.LayoutConnection(c, layout.Hints{Start: &start})
		default:
			end := layout.MovedTargetAnchor(c, m.diagram.Shape(c.Target), delta)
			err = m.LayoutConnection(c, layout.Hints{End: &end})
		}
		if err != nil {
			return fmt.Errorf("follow connection %s: %w", c.ID, err)
		}
	}
	return nil
}
