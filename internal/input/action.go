// Package input translates terminal key events into editor actions.
package input

import "github.com/bethropolis/drift/internal/geometry"

// Action represents an operation the canvas can perform.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionCancel // leave the current mode

	// --- Selection ---
	ActionSelectNext
	ActionSelectPrev
	ActionCopyID

	// --- Gestures ---
	ActionNudge      // move the selection one step in Direction
	ActionSpaceMode  // toggle the space tool
	ActionMoveSpace  // move the space line, space mode only
	ActionRaise      // bring to front among siblings
	ActionLower      // send to back among siblings
	ActionReparentIn // drop into the previous sibling
	ActionReparentOut

	// --- History ---
	ActionUndo
	ActionRedo

	// --- View ---
	ActionCycleTheme
)

var actionNames = map[Action]string{
	ActionUnknown:     "unknown",
	ActionQuit:        "quit",
	ActionCancel:      "cancel",
	ActionSelectNext:  "select-next",
	ActionSelectPrev:  "select-prev",
	ActionCopyID:      "copy-id",
	ActionNudge:       "nudge",
	ActionSpaceMode:   "space-mode",
	ActionMoveSpace:   "move-space",
	ActionRaise:       "raise",
	ActionLower:       "lower",
	ActionReparentIn:  "reparent-in",
	ActionReparentOut: "reparent-out",
	ActionUndo:        "undo",
	ActionRedo:        "redo",
	ActionCycleTheme:  "cycle-theme",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent is a decoded key press. Direction and Big only matter for
// directional actions.
type ActionEvent struct {
	Action    Action
	Direction geometry.Direction
	Big       bool // modifier held: larger step
}
