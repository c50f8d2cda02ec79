package input

import (
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/gdamore/tcell/v2"
)

type Keymap map[tcell.Key]Action        // For special keys (Tab, Esc, etc.)
type RuneKeymap map[rune]Action         // For plain rune bindings
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers

var arrowDirections = map[tcell.Key]geometry.Direction{
	tcell.KeyUp:    geometry.North,
	tcell.KeyDown:  geometry.South,
	tcell.KeyLeft:  geometry.West,
	tcell.KeyRight: geometry.East,
}

// vi-style keys move the space line.
var spaceRunes = map[rune]geometry.Direction{
	'k': geometry.North,
	'j': geometry.South,
	'h': geometry.West,
	'l': geometry.East,
	'K': geometry.North,
	'J': geometry.South,
	'H': geometry.West,
	'L': geometry.East,
}

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyTab] = ActionSelectNext
	p.keymap[tcell.KeyBacktab] = ActionSelectPrev
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlR] = ActionRedo
	p.keymap[tcell.KeyCtrlY] = ActionRedo

	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlQ] = ActionQuit
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	p.runeKeymap['q'] = ActionQuit
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['U'] = ActionRedo
	p.runeKeymap['s'] = ActionSpaceMode
	p.runeKeymap[']'] = ActionRaise
	p.runeKeymap['['] = ActionLower
	p.runeKeymap['>'] = ActionReparentIn
	p.runeKeymap['<'] = ActionReparentOut
	p.runeKeymap['y'] = ActionCopyID
	p.runeKeymap['t'] = ActionCycleTheme
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. Modes are not handled here; the app reinterprets actions
// based on its mode.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// 1. Arrows nudge; any modifier makes a big step.
	if dir, ok := arrowDirections[key]; ok {
		return ActionEvent{Action: ActionNudge, Direction: dir, Big: mod != tcell.ModNone}
	}

	// 2. Modifier + key combinations
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+letter keys already imply the modifier.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 3. Simple keys
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 4. Runes
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		r := ev.Rune()
		if dir, ok := spaceRunes[r]; ok {
			return ActionEvent{Action: ActionMoveSpace, Direction: dir, Big: r >= 'A' && r <= 'Z'}
		}
		if action, ok := p.runeKeymap[r]; ok {
			return ActionEvent{Action: action}
		}
	}

	return ActionEvent{Action: ActionUnknown}
}
