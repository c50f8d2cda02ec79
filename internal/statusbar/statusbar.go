// Package statusbar draws the bottom line of the canvas: mode, selection,
// history state and transient messages.
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/drift/internal/theme"
	"github.com/bethropolis/drift/internal/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	mode      string
	selection string
	canUndo   bool
	canRedo   bool
	elements  int

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetMode updates the displayed editor mode.
func (sb *StatusBar) SetMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetSelection updates the description of the selected element.
func (sb *StatusBar) SetSelection(desc string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.selection = desc
}

// SetHistory updates the undo/redo indicators.
func (sb *StatusBar) SetHistory(canUndo, canRedo bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.canUndo = canUndo
	sb.canRedo = canRedo
}

// SetElementCount updates the number of elements shown.
func (sb *StatusBar) SetElementCount(n int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.elements = n
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns what Draw would show, message included if still active.
func (sb *StatusBar) Text() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if msg, ok := sb.activeMessage(); ok {
		return msg
	}
	return sb.defaultText()
}

// activeMessage expires an old message. Callers hold the lock.
func (sb *StatusBar) activeMessage() (string, bool) {
	if sb.tempMessageTime.IsZero() {
		return "", false
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return "", false
	}
	return sb.tempMessage, true
}

func (sb *StatusBar) defaultText() string {
	selection := sb.selection
	if selection == "" {
		selection = "nothing selected"
	}

	var history []string
	if sb.canUndo {
		history = append(history, "undo")
	}
	if sb.canRedo {
		history = append(history, "redo")
	}
	historyText := "-"
	if len(history) > 0 {
		historyText = strings.Join(history, "/")
	}

	return fmt.Sprintf(" %s | %d elements | %s", selection, sb.elements, historyText)
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	msg, isMessage := sb.activeMessage()
	text := sb.defaultText()
	mode := sb.mode
	sb.mu.Unlock()

	style := th.GetStyle(theme.StyleStatusBar)
	if isMessage {
		text = " " + msg
		style = th.GetStyle(theme.StyleStatusBarMessage)
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	x := 0
	if mode != "" {
		modeText := " " + strings.ToUpper(mode) + " "
		x += tui.DrawText(screen, x, y, width, modeText, th.GetStyle(theme.StyleStatusBarMode))
	}
	if uniseg.StringWidth(text) > width-x {
		text = tui.Truncate(text, width-x)
	}
	tui.DrawText(screen, x, y, width-x, text, style)
}
