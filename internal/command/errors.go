package command

import "errors"

var (
	// ErrBusy is returned by Undo and Redo while a transaction is open.
	ErrBusy = errors.New("command stack is executing")

	// ErrReplaying is returned when an action tries to execute a command
	// while the stack is undoing or redoing.
	ErrReplaying = errors.New("command stack is replaying")
)
