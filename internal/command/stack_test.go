package command

import (
	"errors"
	"testing"

	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a tiny reversible state the test actions mutate.
type counter struct {
	value int
	log   []string
}

type addAction struct {
	c      *counter
	n      int
	stack  *Stack
	pre    []Action
	post   []Action
	failOn string
}

func (a *addAction) Name() string { return "add" }

func (a *addAction) PreExecute() error {
	for _, nested := range a.pre {
		if err := a.stack.Execute(nested); err != nil {
			return err
		}
	}
	if a.failOn == "pre" {
		return errors.New("pre boom")
	}
	return nil
}

func (a *addAction) Execute() error {
	if a.failOn == "execute" {
		return errors.New("execute boom")
	}
	a.c.value += a.n
	a.c.log = append(a.c.log, "exec")
	return nil
}

func (a *addAction) PostExecute() error {
	for _, nested := range a.post {
		if err := a.stack.Execute(nested); err != nil {
			return err
		}
	}
	if a.failOn == "post" {
		return errors.New("post boom")
	}
	return nil
}

func (a *addAction) Revert() error {
	a.c.value -= a.n
	a.c.log = append(a.c.log, "revert")
	return nil
}

func (a *addAction) Changed() []diagram.ID { return []diagram.ID{"counter"} }

func TestExecuteUndoRedo(t *testing.T) {
	c := &counter{}
	s := NewStack(nil, 0)

	require.NoError(t, s.Execute(&addAction{c: c, n: 2, stack: s}))
	require.NoError(t, s.Execute(&addAction{c: c, n: 3, stack: s}))
	assert.Equal(t, 5, c.value)
	assert.True(t, s.CanUndo())
	assert.False(t, s.CanRedo())

	undone, err := s.Undo()
	require.NoError(t, err)
	assert.True(t, undone)
	assert.Equal(t, 2, c.value)

	redone, err := s.Redo()
	require.NoError(t, err)
	assert.True(t, redone)
	assert.Equal(t, 5, c.value)

	_, _ = s.Undo()
	_, _ = s.Undo()
	assert.Equal(t, 0, c.value)

	undone, err = s.Undo()
	require.NoError(t, err)
	assert.False(t, undone)

	t.Run("new command drops redo history", func(t *testing.T) {
		require.NoError(t, s.Execute(&addAction{c: c, n: 10, stack: s}))
		assert.False(t, s.CanRedo())
		assert.Equal(t, 1, s.Len())
	})
}

func TestNestedActionsShareTransaction(t *testing.T) {
	c := &counter{}
	s := NewStack(nil, 0)
	inner := &addAction{c: c, n: 1, stack: s}
	after := &addAction{c: c, n: 100, stack: s}
	outer := &addAction{c: c, n: 10, stack: s, pre: []Action{inner}, post: []Action{after}}

	require.NoError(t, s.Execute(outer))
	assert.Equal(t, 111, c.value)
	assert.Equal(t, 1, s.Len())

	_, err := s.Undo()
	require.NoError(t, err)
	assert.Equal(t, 0, c.value)

	_, err = s.Redo()
	require.NoError(t, err)
	assert.Equal(t, 111, c.value)
	assert.Equal(t, []string{"exec", "exec", "exec", "revert", "revert", "revert", "exec", "exec", "exec"}, c.log)
}

func TestFailedTransactionRollsBack(t *testing.T) {
	for _, stage := range []string{"pre", "execute", "post"} {
		t.Run(stage, func(t *testing.T) {
			c := &counter{}
			s := NewStack(nil, 0)
			nested := &addAction{c: c, n: 1, stack: s}
			a := &addAction{c: c, n: 10, stack: s, post: []Action{nested}, failOn: stage}
			if stage == "pre" {
				a.pre = []Action{&addAction{c: c, n: 5, stack: s}}
			}

			err := s.Execute(a)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "boom")
			assert.Equal(t, 0, c.value)
			assert.False(t, s.CanUndo())
		})
	}
}

func TestReplayingRejectsNestedExecute(t *testing.T) {
	s := NewStack(nil, 0)
	s.replaying = true

	err := s.Execute(&addAction{c: &counter{}, n: 1, stack: s})
	assert.ErrorIs(t, err, ErrReplaying)
}

func TestMaxHistory(t *testing.T) {
	c := &counter{}
	s := NewStack(nil, 2)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Execute(&addAction{c: c, n: 1, stack: s}))
	}

	assert.Equal(t, 2, s.Len())
	_, _ = s.Undo()
	_, _ = s.Undo()
	undone, _ := s.Undo()
	assert.False(t, undone)
	assert.Equal(t, 3, c.value)
}

func TestEvents(t *testing.T) {
	events := event.NewManager()
	var seen []event.Type
	for _, typ := range []event.Type{event.TypeElementsChanged, event.TypeCommandExecuted, event.TypeCommandReverted, event.TypeCommandFailed, event.TypeCommandStackChanged} {
		events.Subscribe(typ, func(e event.Event) bool {
			seen = append(seen, e.Type)
			return false
		})
	}

	c := &counter{}
	s := NewStack(events, 0)
	require.NoError(t, s.Execute(&addAction{c: c, n: 1, stack: s}))
	_, _ = s.Undo()
	_ = s.Execute(&addAction{c: c, n: 1, stack: s, failOn: "execute"})

	assert.Equal(t, []event.Type{
		event.TypeElementsChanged, event.TypeCommandExecuted, event.TypeCommandStackChanged,
		event.TypeElementsChanged, event.TypeCommandReverted, event.TypeCommandStackChanged,
		event.TypeCommandFailed,
	}, seen)

	s.Clear()
	assert.False(t, s.CanUndo())
	assert.False(t, s.Executing())
}
