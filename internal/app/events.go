package app

import (
	"github.com/bethropolis/drift/internal/event"
	"github.com/bethropolis/drift/internal/logger"
)

// handleStackChangedForStatus mirrors undo/redo availability.
func (a *App) handleStackChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.StackChangedData); ok {
		a.statusBar.SetHistory(data.CanUndo, data.CanRedo)
	}
	return false // Not consumed
}

// handleCommandFailedForStatus reports a rolled back gesture.
func (a *App) handleCommandFailedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CommandData); ok {
		a.statusBar.SetTemporaryMessage("%s rolled back: %v", data.Name, data.Err)
	}
	return false
}

func (a *App) handleElementsChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ElementsChangedData); ok {
		logger.DebugTagf("draw", "elements changed: %v", data.Elements)
	}
	a.requestRedraw()
	return false
}
