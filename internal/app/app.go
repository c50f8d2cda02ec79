// Package app wires the editor together and runs the terminal main loop.
package app

import (
	"fmt"

	"github.com/bethropolis/drift/internal/command"
	"github.com/bethropolis/drift/internal/config"
	"github.com/bethropolis/drift/internal/core"
	"github.com/bethropolis/drift/internal/core/clipboard"
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/event"
	"github.com/bethropolis/drift/internal/input"
	"github.com/bethropolis/drift/internal/logger"
	"github.com/bethropolis/drift/internal/modehandler"
	"github.com/bethropolis/drift/internal/modeling"
	"github.com/bethropolis/drift/internal/statusbar"
	"github.com/bethropolis/drift/internal/theme"
	"github.com/bethropolis/drift/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	themeManager *theme.Manager
	config       *config.Config

	// Channels managed by the App
	quit          chan struct{}
	events        chan tcell.Event
	redrawRequest chan struct{}
}

// Options configure NewApp. Zero values pick the real terminal, the
// sample diagram and no theme directory.
type Options struct {
	Screen    tcell.Screen
	Diagram   *diagram.Diagram
	ThemesDir string
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen)
	} else {
		tuiManager, err = tui.New()
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	d := opts.Diagram
	if d == nil {
		d, err = SampleDiagram()
		if err != nil {
			tuiManager.Close()
			return nil, fmt.Errorf("building sample diagram: %w", err)
		}
	}

	eventManager := event.NewManager()
	stack := command.NewStack(eventManager, cfg.History.MaxDepth)
	m := modeling.New(d, stack, modeling.Options{AutoResizePadding: cfg.Modeling.AutoResizePadding})
	editor := core.NewEditor(m, clipboard.NewManager(cfg.Canvas.SystemClipboard))

	statusBar := statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout})
	themeManager := theme.NewManager(opts.ThemesDir, cfg.Canvas.Theme)
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      statusBar,
		Themes:         themeManager,
		Canvas:         cfg.Canvas,
		QuitSignal:     quitChan,
	})

	a := &App{
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		modeHandler:   modeHandler,
		themeManager:  themeManager,
		config:        cfg,
		quit:          quitChan,
		events:        make(chan tcell.Event),
		redrawRequest: make(chan struct{}, 1),
	}

	eventManager.Subscribe(event.TypeCommandStackChanged, a.handleStackChangedForStatus)
	eventManager.Subscribe(event.TypeCommandFailed, a.handleCommandFailedForStatus)
	eventManager.Subscribe(event.TypeElementsChanged, a.handleElementsChanged)

	logger.Debugf("App: %d elements loaded, theme %s", d.Len(), themeManager.Current().Name)
	return a, nil
}

// Run starts the application's main event and drawing loops. It returns
// once the quit signal is closed.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.statusBar.SetTemporaryMessage("drift - Tab select | arrows move | s space tool | u undo | q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			logger.Infof("Exiting application.")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.drawCanvas()
		}
	}
}

// eventLoop polls the terminal and hands events to the main loop, which
// owns all editor state.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent processes one terminal event and reports whether the screen
// needs a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// Editor returns the editing session.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// GetTheme returns the app's active theme.
func (a *App) GetTheme() *theme.Theme {
	return a.themeManager.Current()
}
