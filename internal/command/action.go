// Package command provides the undo/redo stack every diagram mutation goes
// through. Actions executed while another action is running (from its
// pre- or post-execute step) join the same transaction and are undone and
// redone together with it.
package command

import "github.com/bethropolis/drift/internal/diagram"

// Action is a single reversible mutation with its context already bound.
type Action interface {
	// Name identifies the action kind, e.g. "shape.move".
	Name() string
	// Execute applies the mutation and stashes whatever Revert needs.
	Execute() error
	// Revert is the exact inverse of Execute.
	Revert() error
}

// PreExecutor is implemented by actions that issue other commands before
// their own Execute runs.
type PreExecutor interface {
	PreExecute() error
}

// PostExecutor is implemented by actions with follow-up side effects, such
// as connection layout, that run as separate nested commands.
type PostExecutor interface {
	PostExecute() error
}

// Changer is implemented by actions that can report the elements they
// touched; the stack announces them with an elements-changed event.
type Changer interface {
	Changed() []diagram.ID
}

type transaction struct {
	name    string
	actions []Action
}
