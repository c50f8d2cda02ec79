package handler

import (
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/layout"
)

// Modeling is the facade handlers use to issue nested, individually
// reversible commands. A nil newParent keeps the current parent.
type Modeling interface {
	MoveShape(shape *diagram.Shape, delta geometry.Delta, newParent *diagram.Shape, hints *Hints) error
	MoveConnection(conn *diagram.Connection, delta geometry.Delta, newParent *diagram.Shape, hints *Hints) error
	ResizeShape(shape *diagram.Shape, bounds geometry.Bounds) error
	LayoutConnection(conn *diagram.Connection, hints layout.Hints) error
}
