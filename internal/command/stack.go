package command

import (
	"fmt"

	"github.com/bethropolis/drift/internal/event"
	"github.com/bethropolis/drift/internal/logger"
)

// DefaultMaxHistory is the history depth used when NewStack gets no
// positive limit.
const DefaultMaxHistory = 100

// Stack executes actions and keeps the undo/redo history. It is meant to
// be driven from a single goroutine; nested Execute calls are expected.
type Stack struct {
	events       *event.Manager
	transactions []*transaction
	currentIndex int // index of the next transaction to redo
	maxHistory   int

	current   *transaction // open while a top-level Execute runs
	replaying bool
}

// NewStack creates a command stack. events may be nil.
func NewStack(events *event.Manager, maxHistory int) *Stack {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Stack{
		events:       events,
		transactions: make([]*transaction, 0, maxHistory),
		maxHistory:   maxHistory,
	}
}

// Execute runs a through its pre-execute, execute and post-execute steps.
// Called at top level it opens a transaction; called from inside a running
// action it adds to the open one. If anything in the transaction fails,
// every action already executed in it is reverted in reverse order and the
// error is returned.
func (s *Stack) Execute(a Action) error {
	if s.replaying {
		return fmt.Errorf("%s: %w", a.Name(), ErrReplaying)
	}

	if s.current != nil {
		return s.run(a)
	}

	s.current = &transaction{name: a.Name()}
	err := s.run(a)
	tx := s.current
	s.current = nil

	if err != nil {
		logger.Warnf("Command: %s failed, rolling back %d action(s): %v", tx.name, len(tx.actions), err)
		s.rollback(tx.actions)
		s.events.Dispatch(event.TypeCommandFailed, event.CommandData{Name: tx.name, Actions: len(tx.actions), Err: err})
		return err
	}

	s.push(tx)
	logger.DebugTagf("command", "executed %s (%d action(s)), index=%d", tx.name, len(tx.actions), s.currentIndex)
	s.events.Dispatch(event.TypeCommandExecuted, event.CommandData{Name: tx.name, Actions: len(tx.actions)})
	s.dispatchStackChanged()
	return nil
}

func (s *Stack) run(a Action) error {
	if pre, ok := a.(PreExecutor); ok {
		if err := pre.PreExecute(); err != nil {
			return fmt.Errorf("%s: pre-execute: %w", a.Name(), err)
		}
	}

	if err := a.Execute(); err != nil {
		return fmt.Errorf("%s: %w", a.Name(), err)
	}
	s.current.actions = append(s.current.actions, a)
	s.elementsChanged(a)

	if post, ok := a.(PostExecutor); ok {
		if err := post.PostExecute(); err != nil {
			return fmt.Errorf("%s: post-execute: %w", a.Name(), err)
		}
	}
	return nil
}

func (s *Stack) rollback(actions []Action) {
	s.replaying = true
	defer func() { s.replaying = false }()

	for i := len(actions) - 1; i >= 0; i-- {
		if err := actions[i].Revert(); err != nil {
			logger.Errorf("Command: rollback of %s failed: %v", actions[i].Name(), err)
			continue
		}
		s.elementsChanged(actions[i])
	}
}

func (s *Stack) push(tx *transaction) {
	// A new transaction discards the redo history.
	if s.currentIndex < len(s.transactions) {
		s.transactions = s.transactions[:s.currentIndex]
	}
	s.transactions = append(s.transactions, tx)
	if len(s.transactions) > s.maxHistory {
		s.transactions = s.transactions[len(s.transactions)-s.maxHistory:]
	}
	s.currentIndex = len(s.transactions)
}

// Undo reverts the last transaction. It returns false when there is
// nothing to undo.
func (s *Stack) Undo() (bool, error) {
	if s.current != nil {
		return false, ErrBusy
	}
	if s.currentIndex <= 0 {
		logger.DebugTagf("command", "nothing to undo")
		return false, nil
	}

	tx := s.transactions[s.currentIndex-1]
	s.replaying = true
	defer func() { s.replaying = false }()

	for i := len(tx.actions) - 1; i >= 0; i-- {
		if err := tx.actions[i].Revert(); err != nil {
			// Put the already reverted tail back so the history stays consistent.
			s.reapply(tx.actions[i+1:])
			return false, fmt.Errorf("undo %s: %w", tx.name, err)
		}
		s.elementsChanged(tx.actions[i])
	}

	s.currentIndex--
	logger.DebugTagf("command", "undid %s, index=%d", tx.name, s.currentIndex)
	s.events.Dispatch(event.TypeCommandReverted, event.CommandData{Name: tx.name, Actions: len(tx.actions)})
	s.dispatchStackChanged()
	return true, nil
}

// Redo re-executes the last undone transaction. Only Execute is replayed;
// nested actions were recorded in the transaction on the first run.
func (s *Stack) Redo() (bool, error) {
	if s.current != nil {
		return false, ErrBusy
	}
	if s.currentIndex >= len(s.transactions) {
		logger.DebugTagf("command", "nothing to redo")
		return false, nil
	}

	tx := s.transactions[s.currentIndex]
	s.replaying = true
	defer func() { s.replaying = false }()

	for i, a := range tx.actions {
		if err := a.Execute(); err != nil {
			s.revertAll(tx.actions[:i])
			return false, fmt.Errorf("redo %s: %w", tx.name, err)
		}
		s.elementsChanged(a)
	}

	s.currentIndex++
	logger.DebugTagf("command", "redid %s, index=%d", tx.name, s.currentIndex)
	s.events.Dispatch(event.TypeCommandRedone, event.CommandData{Name: tx.name, Actions: len(tx.actions)})
	s.dispatchStackChanged()
	return true, nil
}

func (s *Stack) reapply(actions []Action) {
	for _, a := range actions {
		if err := a.Execute(); err != nil {
			logger.Errorf("Command: re-applying %s failed: %v", a.Name(), err)
		}
	}
}

func (s *Stack) revertAll(actions []Action) {
	for i := len(actions) - 1; i >= 0; i-- {
		if err := actions[i].Revert(); err != nil {
			logger.Errorf("Command: reverting %s failed: %v", actions[i].Name(), err)
		}
	}
}

// Clear drops the whole history.
func (s *Stack) Clear() {
	s.transactions = s.transactions[:0]
	s.currentIndex = 0
	s.dispatchStackChanged()
}

// CanUndo reports whether there is a transaction to undo.
func (s *Stack) CanUndo() bool { return s.currentIndex > 0 }

// CanRedo reports whether there is a transaction to redo.
func (s *Stack) CanRedo() bool { return s.currentIndex < len(s.transactions) }

// Len returns the number of transactions in the history.
func (s *Stack) Len() int { return len(s.transactions) }

// Executing reports whether a transaction is currently open.
func (s *Stack) Executing() bool { return s.current != nil }

func (s *Stack) elementsChanged(a Action) {
	if c, ok := a.(Changer); ok {
		s.events.Dispatch(event.TypeElementsChanged, event.ElementsChangedData{Elements: c.Changed()})
	}
}

func (s *Stack) dispatchStackChanged() {
	s.events.Dispatch(event.TypeCommandStackChanged, event.StackChangedData{
		CanUndo: s.CanUndo(),
		CanRedo: s.CanRedo(),
	})
}
