package modehandler

import (
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/input"
	"github.com/bethropolis/drift/internal/logger"
)

// handleActionSpace handles actions when in ModeSpace.
func (mh *ModeHandler) handleActionSpace(actionEvent input.ActionEvent) bool {
	if redraw, ok := mh.handleShared(actionEvent); ok {
		return redraw
	}

	switch actionEvent.Action {
	case input.ActionNudge:
		side, amount := spaceGesture(actionEvent.Direction, actionEvent.Big, mh.canvas.SpaceStep)
		n, err := mh.editor.CreateSpace(side, amount)
		if err != nil {
			mh.reportGesture("Space", err)
			break
		}
		if n == 0 {
			mh.statusBar.SetTemporaryMessage("Nothing on side %s of the line", side)
		}

	case input.ActionMoveSpace:
		step := mh.canvas.NudgeStep
		if actionEvent.Big {
			step = mh.canvas.BigNudgeStep
		}
		mh.reportGesture("Space line", mh.editor.MoveSpaceLine(actionEvent.Direction, step))

	case input.ActionSpaceMode, input.ActionCancel:
		mh.editor.StopSpace()
		mh.currentMode = ModeNormal
		mh.statusBar.ResetTemporaryMessage()
		logger.Debugf("ModeHandler: Leaving Space Mode")

	default:
		return false
	}
	return true
}

// spaceGesture maps an arrow key to a space-tool gesture. Plain arrows
// work on the far side of the line (e or s), arrows with a modifier on the
// near side (w or n). Right and down push shapes toward larger
// coordinates, left and up toward smaller ones.
func spaceGesture(arrow geometry.Direction, near bool, step float64) (geometry.Direction, float64) {
	amount := step
	if arrow == geometry.West || arrow == geometry.North {
		amount = -step
	}

	if arrow.Horizontal() {
		if near {
			return geometry.West, amount
		}
		return geometry.East, amount
	}
	if near {
		return geometry.North, amount
	}
	return geometry.South, amount
}
