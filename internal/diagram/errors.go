package diagram

import "errors"

var (
	// ErrDuplicateID indicates an element with the same ID is already registered.
	ErrDuplicateID = errors.New("duplicate element id")

	// ErrUnknownElement indicates an ID that is not registered in the diagram.
	ErrUnknownElement = errors.New("unknown element")

	// ErrNotShape indicates a connection endpoint or parent that is not a shape.
	ErrNotShape = errors.New("element is not a shape")
)
