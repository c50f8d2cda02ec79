package core

import "errors"

var (
	// ErrNothingSelected is returned by gestures that need a selection.
	ErrNothingSelected = errors.New("nothing selected")

	// ErrNotShape is returned when a shape-only gesture targets a
	// connection.
	ErrNotShape = errors.New("selection is not a shape")

	// ErrNoTarget is returned when a reparent gesture has nowhere to go.
	ErrNoTarget = errors.New("no shape to move into")

	// ErrNotSpaceMode is returned by space gestures while the space line
	// is not shown.
	ErrNotSpaceMode = errors.New("space tool not active")
)
