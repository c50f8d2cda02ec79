package handler

import (
	"fmt"

	"github.com/bethropolis/drift/internal/collection"
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/layout"
	"github.com/bethropolis/drift/internal/logger"
)

// MoveShapeContext carries one move-shape invocation. The caller fills the
// intent fields; Execute fills the Old* fields that Revert consumes.
type MoveShapeContext struct {
	Shape     *diagram.Shape
	Delta     geometry.Delta
	NewParent *diagram.Shape
	// NewParentIndex is the sibling position in NewParent; nil appends.
	NewParentIndex *int
	Hints          *Hints

	OldParent      *diagram.Shape
	OldParentIndex int
	OldBounds      geometry.Bounds

	State State
}

// MoveShapeHandler translates a shape and optionally reparents it.
type MoveShapeHandler struct {
	diagram  *diagram.Diagram
	modeling Modeling
	helper   *MoveHelper
}

// NewMoveShapeHandler creates a handler working on d that issues its
// follow-up commands through m.
func NewMoveShapeHandler(d *diagram.Diagram, m Modeling) *MoveShapeHandler {
	return &MoveShapeHandler{
		diagram:  d,
		modeling: m,
		helper:   NewMoveHelper(d, m),
	}
}

// Execute moves ctx.Shape by ctx.Delta into the new parent and returns it.
// Preconditions are checked before anything is touched.
func (h *MoveShapeHandler) Execute(ctx *MoveShapeContext) (*diagram.Shape, error) {
	if !ctx.State.canExecute() {
		return nil, fmt.Errorf("move shape from state %s: %w", ctx.State, ErrInvalidState)
	}
	shape := ctx.Shape
	if shape == nil {
		return nil, fmt.Errorf("move shape: %w", ErrNoShape)
	}

	oldParent := h.diagram.Parent(shape)
	if oldParent == nil {
		return nil, fmt.Errorf("move shape %s: %w", shape.ID, ErrNoParent)
	}
	if h.diagram.IndexOf(oldParent, shape) < 0 {
		return nil, fmt.Errorf("move shape %s out of %s: %w", shape.ID, oldParent.ID, ErrNotChild)
	}

	newParent := h.NewParent(ctx)
	if newParent == shape || h.diagram.IsAncestor(shape, newParent) {
		return nil, fmt.Errorf("move shape %s into %s: %w", shape.ID, newParent.ID, ErrCyclicParent)
	}
	ctx.NewParent = newParent

	ctx.OldBounds = shape.Bounds
	ctx.OldParent = oldParent
	ctx.OldParentIndex = h.diagram.RemoveChild(oldParent, shape)

	index := collection.End
	if ctx.NewParentIndex != nil {
		index = *ctx.NewParentIndex
	}
	h.diagram.InsertChild(newParent, shape, index)

	shape.X += ctx.Delta.X
	shape.Y += ctx.Delta.Y

	ctx.State = StateExecuted
	return shape, nil
}

// PostExecute re-lays-out the connections attached to the moved shape and,
// unless the hints say otherwise, drags its descendants along.
func (h *MoveShapeHandler) PostExecute(ctx *MoveShapeContext) error {
	if ctx.State != StateExecuted {
		return fmt.Errorf("post-execute move shape from state %s: %w", ctx.State, ErrInvalidState)
	}
	hints := ResolveHints(ctx.Hints)
	shape := ctx.Shape

	for _, conn := range h.diagram.Incoming(shape) {
		if !hints.LaysOut(conn) {
			continue
		}
		end := layout.MovedTargetAnchor(conn, shape, ctx.Delta)
		logger.DebugTagf("layout", "connection %s end -> %s (target %s moved)", conn.ID, end, shape.ID)
		if err := h.modeling.LayoutConnection(conn, layout.Hints{End: &end}); err != nil {
			return fmt.Errorf("layout incoming %s: %w", conn.ID, err)
		}
	}

	for _, conn := range h.diagram.Outgoing(shape) {
		if !hints.LaysOut(conn) {
			continue
		}
		start := layout.MovedSourceAnchor(conn, shape, ctx.Delta)
		logger.DebugTagf("layout", "connection %s start -> %s (source %s moved)", conn.ID, start, shape.ID)
		if err := h.modeling.LayoutConnection(conn, layout.Hints{Start: &start}); err != nil {
			return fmt.Errorf("layout outgoing %s: %w", conn.ID, err)
		}
	}

	if hints.Recurse {
		if err := h.MoveChildren(ctx); err != nil {
			return err
		}
	}

	ctx.State = StatePostExecuted
	return nil
}

// MoveChildren translates every descendant of the moved shape by the same
// delta, each as its own reversible move.
func (h *MoveShapeHandler) MoveChildren(ctx *MoveShapeContext) error {
	return h.helper.MoveRecursive(h.diagram.ChildShapes(ctx.Shape), ctx.Delta)
}

// NewParent returns the requested parent or, when none was given, the
// shape's current one.
func (h *MoveShapeHandler) NewParent(ctx *MoveShapeContext) *diagram.Shape {
	if ctx.NewParent != nil {
		return ctx.NewParent
	}
	return h.diagram.Parent(ctx.Shape)
}

// Revert puts the shape back at its old sibling position and bounds.
// Follow-up commands from PostExecute are reverted on their own.
func (h *MoveShapeHandler) Revert(ctx *MoveShapeContext) (*diagram.Shape, error) {
	if !ctx.State.canRevert() {
		return nil, fmt.Errorf("revert move shape from state %s: %w", ctx.State, ErrInvalidState)
	}
	shape := ctx.Shape

	if current := h.diagram.Parent(shape); current != nil {
		h.diagram.RemoveChild(current, shape)
	}
	h.diagram.InsertChild(ctx.OldParent, shape, ctx.OldParentIndex)

	shape.X = ctx.OldBounds.X
	shape.Y = ctx.OldBounds.Y

	ctx.State = StateReverted
	return shape, nil
}
