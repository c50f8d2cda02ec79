package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawText draws text from (x, y) using at most maxWidth cells and returns
// the number of cells used. Grapheme clusters that do not fit are dropped
// whole.
func DrawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	gr := uniseg.NewGraphemes(text)
	used := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if used+clusterWidth > maxWidth {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		// Wide clusters occupy the following cells too.
		for cw := 1; cw < clusterWidth; cw++ {
			screen.SetContent(x+used+cw, y, ' ', nil, style)
		}
		used += clusterWidth
	}
	return used
}

// Truncate shortens text to maxWidth cells, marking the cut with an
// ellipsis.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if uniseg.StringWidth(text) <= maxWidth {
		return text
	}
	gr := uniseg.NewGraphemes(text)
	out := make([]rune, 0, maxWidth)
	used := 0
	for gr.Next() {
		if used+gr.Width() > maxWidth-1 {
			break
		}
		out = append(out, gr.Runes()...)
		used += gr.Width()
	}
	return string(append(out, '…'))
}
