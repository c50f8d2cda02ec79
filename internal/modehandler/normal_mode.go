package modehandler

import (
	"github.com/bethropolis/drift/internal/input"
	"github.com/bethropolis/drift/internal/logger"
)

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	if redraw, ok := mh.handleShared(actionEvent); ok {
		return redraw
	}

	switch actionEvent.Action {
	case input.ActionNudge:
		step := mh.canvas.NudgeStep
		if actionEvent.Big {
			step = mh.canvas.BigNudgeStep
		}
		mh.reportGesture("Move", mh.editor.Nudge(actionEvent.Direction, step))

	case input.ActionRaise:
		mh.reportGesture("Raise", mh.editor.Raise())
	case input.ActionLower:
		mh.reportGesture("Lower", mh.editor.Lower())

	case input.ActionReparentIn:
		target, err := mh.editor.ReparentIn()
		if err == nil {
			mh.statusBar.SetTemporaryMessage("Moved into %s", target.ID)
		}
		mh.reportGesture("Move in", err)
	case input.ActionReparentOut:
		target, err := mh.editor.ReparentOut()
		if err == nil {
			mh.statusBar.SetTemporaryMessage("Moved out to %s", target.ID)
		}
		mh.reportGesture("Move out", err)

	case input.ActionCopyID:
		id, err := mh.editor.CopySelectedID()
		if err != nil {
			mh.reportGesture("Copy", err)
			break
		}
		mh.statusBar.SetTemporaryMessage("Copied %s", id)

	case input.ActionSpaceMode:
		at := mh.editor.StartSpace()
		mh.currentMode = ModeSpace
		mh.statusBar.SetTemporaryMessage("Space tool at %s: arrows add/remove space, hjkl move the line", at)
		logger.Debugf("ModeHandler: Entering Space Mode at %s", at)

	case input.ActionCancel:
		mh.editor.ClearSelection()

	default:
		return false
	}
	return true
}
