package handler

import "errors"

// Precondition violations. They are returned before anything is mutated.
var (
	// ErrNoShape indicates a move context without a shape.
	ErrNoShape = errors.New("no shape given")

	// ErrNoParent indicates a shape that is not attached to the tree.
	ErrNoParent = errors.New("shape has no parent")

	// ErrNotChild indicates the tree is inconsistent: the parent's child
	// list does not contain the shape.
	ErrNotChild = errors.New("shape missing from its parent's children")

	// ErrCyclicParent indicates a move into the shape itself or one of
	// its descendants.
	ErrCyclicParent = errors.New("new parent is the shape or its descendant")

	// ErrInvalidState indicates a lifecycle call out of order, e.g.
	// revert before execute.
	ErrInvalidState = errors.New("invalid command state")
)
