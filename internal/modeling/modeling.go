// Package modeling is the editing facade. Every method wraps a handler in
// an action and runs it on the command stack, so a gesture and all the
// follow-up commands it triggers undo and redo as one transaction.
package modeling

import (
	"fmt"

	"github.com/bethropolis/drift/internal/command"
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/handler"
	"github.com/bethropolis/drift/internal/layout"
	"github.com/bethropolis/drift/internal/logger"
)

// DefaultAutoResizePadding is the gap kept between a grown parent and the
// child that made it grow.
const DefaultAutoResizePadding = 10

// Options tune the behaviors attached to the commands.
type Options struct {
	AutoResizePadding float64
}

// Modeling implements handler.Modeling on top of a command stack.
type Modeling struct {
	diagram *diagram.Diagram
	stack   *command.Stack
	opts    Options

	moveShape *handler.MoveShapeHandler
	spaceTool *handler.SpaceToolHandler
}

var _ handler.Modeling = (*Modeling)(nil)

// New creates the facade for d. Commands are recorded on stack.
func New(d *diagram.Diagram, stack *command.Stack, opts Options) *Modeling {
	if opts.AutoResizePadding < 0 {
		opts.AutoResizePadding = 0
	}
	m := &Modeling{diagram: d, stack: stack, opts: opts}
	m.moveShape = handler.NewMoveShapeHandler(d, m)
	m.spaceTool = handler.NewSpaceToolHandler(d, m)
	return m
}

// Diagram returns the diagram this facade edits.
func (m *Modeling) Diagram() *diagram.Diagram { return m.diagram }

// Stack returns the command stack commands are recorded on.
func (m *Modeling) Stack() *command.Stack { return m.stack }

// MoveShape moves shape by delta, appending it to newParent when given.
// A nil hints means handler.DefaultHints.
func (m *Modeling) MoveShape(shape *diagram.Shape, delta geometry.Delta, newParent *diagram.Shape, hints *handler.Hints) error {
	return m.MoveShapeWith(&handler.MoveShapeContext{
		Shape:     shape,
		Delta:     delta,
		NewParent: newParent,
		Hints:     hints,
	})
}

// MoveShapeTo is MoveShape with an explicit sibling index in newParent.
func (m *Modeling) MoveShapeTo(shape *diagram.Shape, delta geometry.Delta, newParent *diagram.Shape, index int, hints *handler.Hints) error {
	return m.MoveShapeWith(&handler.MoveShapeContext{
		Shape:          shape,
		Delta:          delta,
		NewParent:      newParent,
		NewParentIndex: &index,
		Hints:          hints,
	})
}

// MoveShapeWith runs a move from a caller-built context.
func (m *Modeling) MoveShapeWith(ctx *handler.MoveShapeContext) error {
	return m.stack.Execute(&moveShapeAction{m: m, ctx: ctx})
}

// MoveConnection translates every waypoint of conn by delta.
func (m *Modeling) MoveConnection(conn *diagram.Connection, delta geometry.Delta, newParent *diagram.Shape, hints *handler.Hints) error {
	if conn == nil {
		return fmt.Errorf("move connection: %w", ErrNoConnection)
	}
	return m.stack.Execute(&moveConnectionAction{m: m, ctx: &MoveConnectionContext{
		Connection: conn,
		Delta:      delta,
		NewParent:  newParent,
		Hints:      hints,
	}})
}

// ResizeShape gives shape new bounds and re-lays-out its connections.
func (m *Modeling) ResizeShape(shape *diagram.Shape, bounds geometry.Bounds) error {
	if shape == nil {
		return fmt.Errorf("resize shape: %w", handler.ErrNoShape)
	}
	return m.stack.Execute(&resizeShapeAction{m: m, shape: shape, newBounds: bounds})
}

// LayoutConnection recomputes the waypoints of conn. Pinned ends in hints
// win over the current ones.
func (m *Modeling) LayoutConnection(conn *diagram.Connection, hints layout.Hints) error {
	if conn == nil {
		return fmt.Errorf("layout connection: %w", ErrNoConnection)
	}
	return m.stack.Execute(&layoutConnectionAction{m: m, conn: conn, hints: hints})
}

// CreateSpace runs a space-tool gesture.
func (m *Modeling) CreateSpace(moving, resizing []*diagram.Shape, delta geometry.Delta, direction geometry.Direction) error {
	logger.DebugTagf("modeling", "create space %s by %+v: %d moving, %d resizing", direction, delta, len(moving), len(resizing))
	return m.stack.Execute(&spaceToolAction{m: m, ctx: &handler.SpaceToolContext{
		MovingShapes:   moving,
		ResizingShapes: resizing,
		Delta:          delta,
		Direction:      direction,
	}})
}

// followLabels moves the labels of the element with the given ID by delta.
// Labels inside skip are left alone; they already moved with their parent.
func (m *Modeling) followLabels(id diagram.ID, delta geometry.Delta, skip *diagram.Shape) error {
	if delta.IsZero() {
		return nil
	}
	for _, label := range m.diagram.Labels(id) {
		if skip != nil && m.diagram.IsAncestor(skip, label) {
			continue
		}
		if err := m.MoveShape(label, delta, nil, &handler.Hints{Layout: handler.LayoutNone}); err != nil {
			return fmt.Errorf("move label %s: %w", label.ID, err)
		}
	}
	return nil
}
