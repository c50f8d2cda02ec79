package space

import (
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
)

// Adjustments picks the shapes a space-tool gesture starting at start
// affects. Shapes lying entirely on the far side of the line through start
// (in the gesture direction) move; non-label shapes the line cuts through
// are resized. The root is never included.
func Adjustments(d *diagram.Diagram, start geometry.Point, direction geometry.Direction) (moving, resizing []*diagram.Shape, err error) {
	if err := direction.Validate(); err != nil {
		return nil, nil, err
	}

	d.Walk(func(el diagram.Element) bool {
		s, ok := el.(*diagram.Shape)
		if !ok || d.IsRoot(s) {
			return true
		}

		switch {
		case beyond(s.Bounds, start, direction):
			moving = append(moving, s)
		case crosses(s.Bounds, start, direction) && !s.IsLabel():
			resizing = append(resizing, s)
		}
		return true
	})
	return moving, resizing, nil
}

func beyond(b geometry.Bounds, start geometry.Point, direction geometry.Direction) bool {
	switch direction {
	case geometry.East:
		return b.X >= start.X
	case geometry.West:
		return b.Right() <= start.X
	case geometry.South:
		return b.Y >= start.Y
	case geometry.North:
		return b.Bottom() <= start.Y
	}
	return false
}

func crosses(b geometry.Bounds, start geometry.Point, direction geometry.Direction) bool {
	if direction.Horizontal() {
		return b.X < start.X && b.Right() > start.X
	}
	return b.Y < start.Y && b.Bottom() > start.Y
}
