package app

import (
	"github.com/bethropolis/drift/internal/config"
	"github.com/bethropolis/drift/internal/logger"
	"github.com/bethropolis/drift/internal/tui"
)

// drawCanvas clears screen and redraws all components.
func (a *App) drawCanvas() {
	a.updateStatusBarContent()

	currentTheme := a.themeManager.Current()
	a.tuiManager.ApplyTheme(currentTheme)

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	viewHeight := height - config.StatusBarHeight

	logger.DebugTagf("draw", "drawCanvas: Screen Size (%d x %d), ViewHeight: %d", width, height, viewHeight)

	opts := tui.DrawOptions{
		View:     tui.View{Width: width, Height: viewHeight},
		Selected: a.editor.SelectedID(),
	}
	if at, ok := a.editor.SpaceLine(); ok {
		opts.SpaceLine = &tui.SpaceLine{At: at}
	}

	a.tuiManager.Clear()
	tui.DrawDiagram(a.tuiManager, a.editor.Diagram(), currentTheme, opts)
	a.statusBar.Draw(screen, width, height, currentTheme)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetMode(a.modeHandler.GetCurrentModeString())
	a.statusBar.SetSelection(a.editor.DescribeSelection())
	a.statusBar.SetElementCount(a.editor.Diagram().Len() - 1)
	a.statusBar.SetHistory(a.editor.CanUndo(), a.editor.CanRedo())
}
