package core

import (
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/logger"
	"github.com/bethropolis/drift/internal/space"
)

// StartSpace shows the space line. It opens at the center of the selected
// shape, or where it was last closed.
func (e *Editor) StartSpace() geometry.Point {
	at := e.lastSpaceLine
	if s, ok := e.Selected().(*diagram.Shape); ok {
		at = s.Center()
	}
	e.spaceLine = &at
	return at
}

// StopSpace hides the space line.
func (e *Editor) StopSpace() {
	if e.spaceLine != nil {
		e.lastSpaceLine = *e.spaceLine
	}
	e.spaceLine = nil
}

// SpaceLine returns the space line position and whether it is shown.
func (e *Editor) SpaceLine() (geometry.Point, bool) {
	if e.spaceLine == nil {
		return geometry.Point{}, false
	}
	return *e.spaceLine, true
}

// MoveSpaceLine shifts the space line. The diagram is not touched.
func (e *Editor) MoveSpaceLine(direction geometry.Direction, step float64) error {
	if e.spaceLine == nil {
		return ErrNotSpaceMode
	}
	delta, err := stepDelta(direction, step)
	if err != nil {
		return err
	}
	*e.spaceLine = e.spaceLine.Translate(delta)
	return nil
}

// CreateSpace runs a space-tool gesture at the space line: shapes beyond
// the line on the given side move by amount, shapes it cuts are resized on
// that side. It returns the number of shapes affected; zero means nothing
// was recorded.
func (e *Editor) CreateSpace(direction geometry.Direction, amount float64) (int, error) {
	if e.spaceLine == nil {
		return 0, ErrNotSpaceMode
	}
	moving, resizing, err := space.Adjustments(e.Diagram(), *e.spaceLine, direction)
	if err != nil {
		return 0, err
	}
	if len(moving)+len(resizing) == 0 {
		logger.DebugTagf("space", "nothing beyond %s on side %s", e.spaceLine, direction)
		return 0, nil
	}

	delta := geometry.Delta{Y: amount}
	if direction.Horizontal() {
		delta = geometry.Delta{X: amount}
	}
	if err := e.modeling.CreateSpace(moving, resizing, delta, direction); err != nil {
		return 0, err
	}
	return len(moving) + len(resizing), nil
}
