package modeling

import (
	"fmt"

	"github.com/bethropolis/drift/internal/collection"
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/handler"
	"github.com/bethropolis/drift/internal/layout"
)

// moveShapeAction runs the move-shape handler and the behaviors layered on
// top of it: labels and inner connections follow, and the new parent grows
// to fit.
type moveShapeAction struct {
	m   *Modeling
	ctx *handler.MoveShapeContext
}

func (a *moveShapeAction) Name() string { return "shape.move" }

func (a *moveShapeAction) Execute() error {
	_, err := a.m.moveShape.Execute(a.ctx)
	return err
}

func (a *moveShapeAction) PostExecute() error {
	if err := a.m.moveShape.PostExecute(a.ctx); err != nil {
		return err
	}

	hints := handler.ResolveHints(a.ctx.Hints)
	if hints.MoveElementsBehavior {
		var skip *diagram.Shape
		if hints.Recurse {
			skip = a.ctx.Shape
		}
		if err := a.m.followLabels(a.ctx.Shape.ID, a.ctx.Delta, skip); err != nil {
			return err
		}
		if hints.Recurse {
			if err := a.m.moveSubtreeConnections(a.ctx.Shape, a.ctx.Delta, hints); err != nil {
				return err
			}
		}
	}
	if hints.AutoResize {
		return a.m.autoResize(a.ctx.Shape)
	}
	return nil
}

func (a *moveShapeAction) Revert() error {
	_, err := a.m.moveShape.Revert(a.ctx)
	return err
}

func (a *moveShapeAction) Changed() []diagram.ID {
	ids := []diagram.ID{a.ctx.Shape.ID}
	if a.ctx.OldParent != nil && a.ctx.NewParent != nil && a.ctx.OldParent != a.ctx.NewParent {
		ids = append(ids, a.ctx.OldParent.ID, a.ctx.NewParent.ID)
	}
	return ids
}

// MoveConnectionContext carries one move-connection invocation.
type MoveConnectionContext struct {
	Connection *diagram.Connection
	Delta      geometry.Delta
	NewParent  *diagram.Shape
	Hints      *handler.Hints

	OldWaypoints   []geometry.Point
	OldParent      *diagram.Shape
	OldParentIndex int
}

type moveConnectionAction struct {
	m   *Modeling
	ctx *MoveConnectionContext
}

func (a *moveConnectionAction) Name() string { return "connection.move" }

func (a *moveConnectionAction) Execute() error {
	d := a.m.diagram
	conn := a.ctx.Connection

	oldParent := d.Parent(conn)
	if oldParent == nil {
		return fmt.Errorf("move connection %s: %w", conn.ID, handler.ErrNoParent)
	}
	a.ctx.OldParent = oldParent
	a.ctx.OldWaypoints = conn.CopyWaypoints()

	if a.ctx.NewParent != nil && a.ctx.NewParent != oldParent {
		a.ctx.OldParentIndex = d.RemoveChild(oldParent, conn)
		d.InsertChild(a.ctx.NewParent, conn, collection.End)
	} else {
		a.ctx.OldParentIndex = d.IndexOf(oldParent, conn)
	}

	for i := range conn.Waypoints {
		conn.Waypoints[i] = conn.Waypoints[i].Translate(a.ctx.Delta)
	}
	return nil
}

func (a *moveConnectionAction) PostExecute() error {
	if !handler.ResolveHints(a.ctx.Hints).MoveElementsBehavior {
		return nil
	}
	return a.m.followLabels(a.ctx.Connection.ID, a.ctx.Delta, nil)
}

func (a *moveConnectionAction) Revert() error {
	d := a.m.diagram
	conn := a.ctx.Connection

	if current := d.Parent(conn); current != a.ctx.OldParent {
		if current != nil {
			d.RemoveChild(current, conn)
		}
		d.InsertChild(a.ctx.OldParent, conn, a.ctx.OldParentIndex)
	}
	conn.Waypoints = append([]geometry.Point(nil), a.ctx.OldWaypoints...)
	return nil
}

func (a *moveConnectionAction) Changed() []diagram.ID {
	return []diagram.ID{a.ctx.Connection.ID}
}

// resizeShapeAction swaps the bounds of a shape and re-anchors the
// connections attached to it.
type resizeShapeAction struct {
	m         *Modeling
	shape     *diagram.Shape
	newBounds geometry.Bounds
	oldBounds geometry.Bounds
}

func (a *resizeShapeAction) Name() string { return "shape.resize" }

func (a *resizeShapeAction) Execute() error {
	if a.newBounds.Width < 0 || a.newBounds.Height < 0 {
		return fmt.Errorf("resize %s to %s: %w", a.shape.ID, a.newBounds, ErrInvalidBounds)
	}
	a.oldBounds = a.shape.Bounds
	a.shape.Bounds = a.newBounds
	return nil
}

func (a *resizeShapeAction) PostExecute() error {
	d := a.m.diagram
	for _, conn := range d.Incoming(a.shape) {
		end := layout.ResizedTargetAnchor(conn, a.shape, a.oldBounds)
		if err := a.m.LayoutConnection(conn, layout.Hints{End: &end}); err != nil {
			return err
		}
	}
	for _, conn := range d.Outgoing(a.shape) {
		start := layout.ResizedSourceAnchor(conn, a.shape, a.oldBounds)
		if err := a.m.LayoutConnection(conn, layout.Hints{Start: &start}); err != nil {
			return err
		}
	}
	return nil
}

func (a *resizeShapeAction) Revert() error {
	a.shape.Bounds = a.oldBounds
	return nil
}

func (a *resizeShapeAction) Changed() []diagram.ID {
	return []diagram.ID{a.shape.ID}
}

// layoutConnectionAction replaces the waypoints of a connection. The
// layout is computed once; redo reapplies the same points.
type layoutConnectionAction struct {
	m     *Modeling
	conn  *diagram.Connection
	hints layout.Hints

	oldWaypoints []geometry.Point
	newWaypoints []geometry.Point
}

func (a *layoutConnectionAction) Name() string { return "connection.layout" }

func (a *layoutConnectionAction) Execute() error {
	a.oldWaypoints = a.conn.CopyWaypoints()
	if a.newWaypoints == nil {
		a.newWaypoints = layout.Straight(a.m.diagram, a.conn, a.hints)
	}
	a.conn.Waypoints = append([]geometry.Point(nil), a.newWaypoints...)
	return nil
}

// PostExecute moves the connection's labels by the shift of its midpoint.
func (a *layoutConnectionAction) PostExecute() error {
	before, ok := (&diagram.Connection{Waypoints: a.oldWaypoints}).Mid()
	if !ok {
		return nil
	}
	after, ok := a.conn.Mid()
	if !ok {
		return nil
	}
	return a.m.followLabels(a.conn.ID, after.Sub(before), nil)
}

func (a *layoutConnectionAction) Revert() error {
	a.conn.Waypoints = append([]geometry.Point(nil), a.oldWaypoints...)
	return nil
}

func (a *layoutConnectionAction) Changed() []diagram.ID {
	return []diagram.ID{a.conn.ID}
}

// spaceToolAction issues the whole gesture from PreExecute; it owns no
// state of its own.
type spaceToolAction struct {
	m   *Modeling
	ctx *handler.SpaceToolContext
}

func (a *spaceToolAction) Name() string { return "elements.createSpace" }

func (a *spaceToolAction) PreExecute() error {
	return a.m.spaceTool.PreExecute(a.ctx)
}

func (a *spaceToolAction) Execute() error {
	return a.m.spaceTool.Execute(a.ctx)
}

func (a *spaceToolAction) Revert() error {
	return a.m.spaceTool.Revert(a.ctx)
}
