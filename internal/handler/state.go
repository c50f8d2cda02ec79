package handler

// State tracks where a command context is in its lifecycle.
type State int

const (
	// StatePending is a context that has not run yet.
	StatePending State = iota
	// StateExecuted follows a successful Execute.
	StateExecuted
	// StatePostExecuted follows PostExecute; the command is complete.
	StatePostExecuted
	// StateReverted follows Revert. The context may be executed again.
	StateReverted
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateExecuted:
		return "executed"
	case StatePostExecuted:
		return "postExecuted"
	case StateReverted:
		return "reverted"
	}
	return "unknown"
}

// canExecute allows a fresh context and a redo after revert.
func (s State) canExecute() bool {
	return s == StatePending || s == StateReverted
}

func (s State) canRevert() bool {
	return s == StateExecuted || s == StatePostExecuted
}
