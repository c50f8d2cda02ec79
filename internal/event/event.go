// Package event is the in-process bus the command stack and the front-end
// use to tell each other that the diagram changed.
package event

import "github.com/bethropolis/drift/internal/diagram"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Diagram events
	TypeElementsChanged // an action touched the listed elements

	// Command stack events
	TypeCommandExecuted     // a top-level transaction completed
	TypeCommandReverted     // a transaction was undone
	TypeCommandRedone       // a transaction was redone
	TypeCommandFailed       // a transaction failed and was rolled back
	TypeCommandStackChanged // undo/redo availability may have changed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeElementsChanged:
		return "elements.changed"
	case TypeCommandExecuted:
		return "command.executed"
	case TypeCommandReverted:
		return "command.reverted"
	case TypeCommandRedone:
		return "command.redone"
	case TypeCommandFailed:
		return "command.failed"
	case TypeCommandStackChanged:
		return "commandStack.changed"
	case TypeAppReady:
		return "app.ready"
	case TypeAppQuit:
		return "app.quit"
	}
	return "unknown"
}

// Event is the structure passed through the bus.
type Event struct {
	Type Type
	Data interface{}
}

// ElementsChangedData lists the elements an action modified.
type ElementsChangedData struct {
	Elements []diagram.ID
}

// CommandData describes a transaction on the command stack.
type CommandData struct {
	Name    string // name of the top-level action
	Actions int    // number of actions in the transaction
	Err     error  // set for TypeCommandFailed
}

// StackChangedData reports undo/redo availability.
type StackChangedData struct {
	CanUndo bool
	CanRedo bool
}
