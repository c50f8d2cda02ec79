// Package core holds the editing session: the diagram, its modeling
// facade, the selection and the space-tool line. The front-end calls into
// it; every change to the diagram goes through the modeling facade.
package core

import (
	"github.com/bethropolis/drift/internal/core/clipboard"
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/logger"
	"github.com/bethropolis/drift/internal/modeling"
)

type Editor struct {
	modeling  *modeling.Modeling
	clipboard *clipboard.Manager

	selected diagram.ID

	// Space tool state. spaceLine is nil unless the tool is active;
	// lastSpaceLine is where it reopens.
	spaceLine     *geometry.Point
	lastSpaceLine geometry.Point
}

// NewEditor creates an editor over the diagram m edits. The first
// selectable element starts selected.
func NewEditor(m *modeling.Modeling, clip *clipboard.Manager) *Editor {
	if clip == nil {
		clip = clipboard.NewManager(false)
	}
	e := &Editor{
		modeling:  m,
		clipboard: clip,
	}
	if ids := e.selectable(); len(ids) > 0 {
		e.selected = ids[0]
	}
	return e
}

// Diagram returns the edited diagram.
func (e *Editor) Diagram() *diagram.Diagram { return e.modeling.Diagram() }

// Modeling returns the facade commands go through.
func (e *Editor) Modeling() *modeling.Modeling { return e.modeling }

// Clipboard returns the clipboard manager.
func (e *Editor) Clipboard() *clipboard.Manager { return e.clipboard }

// Undo reverts the last gesture.
func (e *Editor) Undo() (bool, error) {
	return e.modeling.Stack().Undo()
}

// Redo replays the last undone gesture.
func (e *Editor) Redo() (bool, error) {
	return e.modeling.Stack().Redo()
}

// CanUndo reports whether there is a gesture to undo.
func (e *Editor) CanUndo() bool { return e.modeling.Stack().CanUndo() }

// CanRedo reports whether there is a gesture to redo.
func (e *Editor) CanRedo() bool { return e.modeling.Stack().CanRedo() }

// CopySelectedID copies the ID of the selection and returns it.
func (e *Editor) CopySelectedID() (diagram.ID, error) {
	if e.Selected() == nil {
		return "", ErrNothingSelected
	}
	if err := e.clipboard.Copy(string(e.selected)); err != nil {
		return e.selected, err
	}
	logger.Debugf("Editor: copied ID %s", e.selected)
	return e.selected, nil
}
