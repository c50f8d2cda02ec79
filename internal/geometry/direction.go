package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned for anything other than n, s, e or w.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is the compass side a space-tool gesture grows or shrinks.
type Direction string

const (
	North Direction = "n"
	South Direction = "s"
	East  Direction = "e"
	West  Direction = "w"
)

// ParseDirection validates s as a compass direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate returns ErrInvalidDirection unless d is one of the four sides.
func (d Direction) Validate() error {
	switch d {
	case North, South, East, West:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidDirection, string(d))
}

// Horizontal reports whether the direction works on the x axis.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// ResizeBounds grows or shrinks b on the side named by direction by the
// matching delta component. North and west move the top-left corner and
// compensate the extent; south and east only change the extent.
func ResizeBounds(b Bounds, direction Direction, delta Delta) (Bounds, error) {
	if err := direction.Validate(); err != nil {
		return b, err
	}
	out := b
	switch direction {
	case North:
		out.Y = b.Y + delta.Y
		out.Height = b.Height - delta.Y
	case South:
		out.Height = b.Height + delta.Y
	case East:
		out.Width = b.Width + delta.X
	case West:
		out.X = b.X + delta.X
		out.Width = b.Width - delta.X
	}
	return out, nil
}
