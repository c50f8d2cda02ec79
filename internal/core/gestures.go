package core

import (
	"fmt"

	"github.com/bethropolis/drift/internal/collection"
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
)

// stepDelta turns a compass direction into a translation of length step.
func stepDelta(direction geometry.Direction, step float64) (geometry.Delta, error) {
	switch direction {
	case geometry.North:
		return geometry.Delta{Y: -step}, nil
	case geometry.South:
		return geometry.Delta{Y: step}, nil
	case geometry.West:
		return geometry.Delta{X: -step}, nil
	case geometry.East:
		return geometry.Delta{X: step}, nil
	}
	return geometry.Delta{}, direction.Validate()
}

// Nudge moves the selection by step in direction. Shapes take their
// children, labels and connection ends along.
func (e *Editor) Nudge(direction geometry.Direction, step float64) error {
	delta, err := stepDelta(direction, step)
	if err != nil {
		return err
	}

	switch el := e.Selected().(type) {
	case *diagram.Shape:
		return e.modeling.MoveShape(el, delta, nil, nil)
	case *diagram.Connection:
		return e.modeling.MoveConnection(el, delta, nil, nil)
	}
	return ErrNothingSelected
}

func (e *Editor) selectedShape() (*diagram.Shape, error) {
	switch el := e.Selected().(type) {
	case *diagram.Shape:
		return el, nil
	case nil:
		return nil, ErrNothingSelected
	}
	return nil, ErrNotShape
}

// Raise moves the selected shape to the end of its siblings, drawing it
// on top.
func (e *Editor) Raise() error {
	return e.reorder(collection.End)
}

// Lower moves the selected shape to the front of its siblings.
func (e *Editor) Lower() error {
	return e.reorder(0)
}

func (e *Editor) reorder(index int) error {
	shape, err := e.selectedShape()
	if err != nil {
		return err
	}
	parent := e.Diagram().Parent(shape)
	return e.modeling.MoveShapeTo(shape, geometry.Delta{}, parent, index, nil)
}

// ReparentIn moves the selected shape into its closest preceding sibling
// shape. Labels are never used as containers.
func (e *Editor) ReparentIn() (*diagram.Shape, error) {
	shape, err := e.selectedShape()
	if err != nil {
		return nil, err
	}
	d := e.Diagram()
	parent := d.Parent(shape)
	if parent == nil {
		return nil, fmt.Errorf("reparent %s: %w", shape.ID, ErrNoTarget)
	}

	var target *diagram.Shape
	for _, sibling := range d.ChildShapes(parent) {
		if sibling == shape {
			break
		}
		if !sibling.IsLabel() {
			target = sibling
		}
	}
	if target == nil {
		return nil, fmt.Errorf("reparent %s: %w", shape.ID, ErrNoTarget)
	}
	return target, e.modeling.MoveShape(shape, geometry.Delta{}, target, nil)
}

// ReparentOut moves the selected shape up to its grandparent, right after
// its current parent.
func (e *Editor) ReparentOut() (*diagram.Shape, error) {
	shape, err := e.selectedShape()
	if err != nil {
		return nil, err
	}
	d := e.Diagram()
	parent := d.Parent(shape)
	if parent == nil || d.IsRoot(parent) {
		return nil, fmt.Errorf("reparent %s: %w", shape.ID, ErrNoTarget)
	}
	grandparent := d.Parent(parent)
	index := d.IndexOf(grandparent, parent) + 1
	return grandparent, e.modeling.MoveShapeTo(shape, geometry.Delta{}, grandparent, index, nil)
}
