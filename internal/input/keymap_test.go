package input

import (
	"testing"

	"github.com/bethropolis/drift/internal/geometry"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"arrow nudges", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionEvent{Action: ActionNudge, Direction: geometry.West}},
		{"shift arrow nudges further", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), ActionEvent{Action: ActionNudge, Direction: geometry.North, Big: true}},
		{"tab selects next", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionSelectNext}},
		{"backtab selects previous", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), ActionEvent{Action: ActionSelectPrev}},
		{"escape cancels", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionCancel}},
		{"ctrl+z undoes", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionEvent{Action: ActionUndo}},
		{"ctrl+y redoes", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), ActionEvent{Action: ActionRedo}},
		{"ctrl+q quits", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), ActionEvent{Action: ActionQuit}},
		{"u undoes", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), ActionEvent{Action: ActionUndo}},
		{"U redoes", tcell.NewEventKey(tcell.KeyRune, 'U', tcell.ModShift), ActionEvent{Action: ActionRedo}},
		{"s toggles space mode", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionEvent{Action: ActionSpaceMode}},
		{"l moves the space line", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), ActionEvent{Action: ActionMoveSpace, Direction: geometry.East}},
		{"K moves it further", tcell.NewEventKey(tcell.KeyRune, 'K', tcell.ModShift), ActionEvent{Action: ActionMoveSpace, Direction: geometry.North, Big: true}},
		{"y copies", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), ActionEvent{Action: ActionCopyID}},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionEvent{Action: ActionUnknown}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "reparent-out", ActionReparentOut.String())
	assert.Equal(t, "unknown", Action(999).String())
}
