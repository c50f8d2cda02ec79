// Package modehandler interprets decoded key actions according to the
// current input mode and turns them into editor gestures.
package modehandler

import (
	"errors"
	"strings"

	"github.com/bethropolis/drift/internal/config"
	"github.com/bethropolis/drift/internal/core"
	"github.com/bethropolis/drift/internal/input"
	"github.com/bethropolis/drift/internal/logger"
	"github.com/bethropolis/drift/internal/statusbar"
	"github.com/bethropolis/drift/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeSpace            // the space line is shown; arrows create space
)

func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSpace:
		return "space"
	}
	return "unknown"
}

// ModeHandler manages input modes and dispatches actions to the editor.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	themes         *theme.Manager
	canvas         config.CanvasConfig
	quitSignal     chan<- struct{}

	currentMode InputMode
	quitting    bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	StatusBar      *statusbar.StatusBar
	Themes         *theme.Manager
	Canvas         config.CanvasConfig
	QuitSignal     chan<- struct{} // closed once on quit
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.Themes == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		statusBar:      cfg.StatusBar,
		themes:         cfg.Themes,
		canvas:         cfg.Canvas,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "key %s -> %s in %s mode", ev.Name(), actionEvent.Action, mh.currentMode)

	switch actionEvent.Action {
	case input.ActionQuit:
		mh.quit()
		return false
	case input.ActionUnknown:
		return false
	}

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModeSpace:
		return mh.handleActionSpace(actionEvent)
	}
	logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
	return false
}

func (mh *ModeHandler) quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}

// handleShared runs the actions that mean the same in every mode. ok is
// false when the action is not one of them.
func (mh *ModeHandler) handleShared(actionEvent input.ActionEvent) (redraw, ok bool) {
	switch actionEvent.Action {
	case input.ActionUndo:
		undone, err := mh.editor.Undo()
		mh.reportHistory("Undo", undone, err)
		return true, true
	case input.ActionRedo:
		redone, err := mh.editor.Redo()
		mh.reportHistory("Redo", redone, err)
		return true, true
	case input.ActionSelectNext:
		mh.editor.SelectNext()
		return true, true
	case input.ActionSelectPrev:
		mh.editor.SelectPrev()
		return true, true
	case input.ActionCycleTheme:
		th := mh.themes.Next()
		mh.statusBar.SetTemporaryMessage("Theme: %s", th.Name)
		return true, true
	}
	return false, false
}

func (mh *ModeHandler) reportHistory(what string, done bool, err error) {
	switch {
	case err != nil:
		mh.statusBar.SetTemporaryMessage("%s failed: %v", what, err)
		logger.Errorf("ModeHandler: %s failed: %v", what, err)
	case !done:
		mh.statusBar.SetTemporaryMessage("Nothing to %s", strings.ToLower(what))
	}
}

// reportGesture shows a failed gesture in the status bar. The command
// stack has already rolled it back.
func (mh *ModeHandler) reportGesture(what string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, core.ErrNothingSelected) || errors.Is(err, core.ErrNotShape) || errors.Is(err, core.ErrNoTarget) {
		mh.statusBar.SetTemporaryMessage("%s: %v", what, err)
		return
	}
	mh.statusBar.SetTemporaryMessage("%s failed: %v", what, err)
	logger.Warnf("ModeHandler: %s failed: %v", what, err)
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCurrentModeString returns the current mode for the status bar.
func (mh *ModeHandler) GetCurrentModeString() string {
	return mh.currentMode.String()
}
