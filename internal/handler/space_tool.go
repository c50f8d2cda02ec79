package handler

import (
	"fmt"

	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/space"
)

// SpaceToolContext describes one space-tool gesture.
type SpaceToolContext struct {
	MovingShapes   []*diagram.Shape
	ResizingShapes []*diagram.Shape
	Delta          geometry.Delta
	Direction      geometry.Direction

	// Plan is filled by PreExecute.
	Plan *space.Plan
}

// SpaceToolHandler turns a gesture into a sequence of move and resize
// commands. It has no state of its own to revert.
type SpaceToolHandler struct {
	diagram  *diagram.Diagram
	modeling Modeling
}

// NewSpaceToolHandler creates a handler working on d.
func NewSpaceToolHandler(d *diagram.Diagram, m Modeling) *SpaceToolHandler {
	return &SpaceToolHandler{diagram: d, modeling: m}
}

// PreExecute plans the gesture and runs every step in order.
func (h *SpaceToolHandler) PreExecute(ctx *SpaceToolContext) error {
	plan, err := space.NewPlan(h.diagram, ctx.MovingShapes, ctx.ResizingShapes, ctx.Delta, ctx.Direction)
	if err != nil {
		return fmt.Errorf("space tool: %w", err)
	}
	ctx.Plan = plan

	for _, step := range plan.Steps {
		switch step.Type {
		case space.StepMove:
			err = h.MoveElements(step.Elements, ctx.Delta, plan.Layouting)
		case space.StepResize:
			err = h.ResizeShapes(step.Shapes, ctx.Delta, ctx.Direction)
		}
		if err != nil {
			return fmt.Errorf("space tool %s step at depth %d: %w", step.Type, step.Depth, err)
		}
	}
	return nil
}

// Execute is a no-op; the work happens in the commands PreExecute issues.
func (h *SpaceToolHandler) Execute(*SpaceToolContext) error { return nil }

// Revert is a no-op for the same reason.
func (h *SpaceToolHandler) Revert(*SpaceToolContext) error { return nil }

// MoveElements translates shapes and connections by delta. Shapes only
// re-lay-out connections from layouting; everything else is switched off.
func (h *SpaceToolHandler) MoveElements(elements []diagram.Element, delta geometry.Delta, layouting []*diagram.Connection) error {
	for _, el := range elements {
		switch el := el.(type) {
		case *diagram.Connection:
			hints := DefaultHints()
			hints.MoveElementsBehavior = false
			if err := h.modeling.MoveConnection(el, delta, nil, &hints); err != nil {
				return err
			}
		case *diagram.Shape:
			hints := &Hints{Layout: LayoutOnly, LayoutConnections: layouting}
			if err := h.modeling.MoveShape(el, delta, nil, hints); err != nil {
				return err
			}
		}
	}
	return nil
}

// ResizeShapes grows or shrinks each shape on the side given by direction.
func (h *SpaceToolHandler) ResizeShapes(shapes []*diagram.Shape, delta geometry.Delta, direction geometry.Direction) error {
	for _, s := range shapes {
		bounds, err := geometry.ResizeBounds(s.Bounds, direction, delta)
		if err != nil {
			return err
		}
		if err := h.modeling.ResizeShape(s, bounds); err != nil {
			return err
		}
	}
	return nil
}
