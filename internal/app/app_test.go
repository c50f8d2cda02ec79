package app

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/drift/internal/config"
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	cfg := config.NewDefaultConfig()
	cfg.Canvas.SystemClipboard = false
	a, err := NewApp(cfg, Options{Screen: s})
	require.NoError(t, err)
	s.SetSize(100, 20)
	return a, s
}

func screenRow(s tcell.SimulationScreen, y int) string {
	cells, width, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		if r := cells[y*width+x].Runes; len(r) > 0 {
			b.WriteRune(r[0])
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func TestSampleDiagram(t *testing.T) {
	d, err := SampleDiagram()
	require.NoError(t, err)
	assert.Equal(t, 10, d.Len())
	assert.Equal(t, []diagram.ID{"review", "approve", "notes", "submit", "ok"}, d.Shape("pool").ChildIDs())
	assert.Equal(t, []*diagram.Shape{d.Shape("done")}, d.Labels("store"))
}

func TestHandleEvent(t *testing.T) {
	a, s := newTestApp(t)
	defer a.tuiManager.Close()

	assert.Equal(t, diagram.ID("pool"), a.Editor().SelectedID())
	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))

	review := a.Editor().Diagram().Shape("review")
	assert.Equal(t, 7.0, review.X)

	a.drawCanvas()
	assert.Equal(t, tcell.RuneULCorner, []rune(screenRow(s, 4))[7])
	status := screenRow(s, 19)
	assert.True(t, strings.HasPrefix(status, " NORMAL  shape review"), status)
	assert.Contains(t, status, "| 9 elements | undo")

	t.Run("space line drawn in space mode", func(t *testing.T) {
		a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
		a.drawCanvas()
		at, ok := a.Editor().SpaceLine()
		require.True(t, ok)
		assert.Equal(t, '┼', []rune(screenRow(s, int(math.Round(at.Y))))[int(math.Round(at.X))])
		assert.True(t, strings.HasPrefix(screenRow(s, 19), " SPACE "))
	})

	t.Run("resize is not a key", func(t *testing.T) {
		assert.True(t, a.handleEvent(tcell.NewEventResize(100, 20)))
		assert.False(t, a.handleEvent(tcell.NewEventInterrupt(nil)))
	})
}

func TestStackEventsReachStatusBar(t *testing.T) {
	a, _ := newTestApp(t)
	defer a.tuiManager.Close()

	a.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.Contains(t, a.statusBar.Text(), "undo")

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone))
	assert.Contains(t, a.statusBar.Text(), "redo")
	assert.NotContains(t, a.statusBar.Text(), "undo/")
}

func TestRunQuits(t *testing.T) {
	a, s := newTestApp(t)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit")
	}
}
