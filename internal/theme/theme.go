// Package theme maps the canvas style names used by the renderer to tcell
// styles. Themes are built in or loaded from TOML files.
package theme

import (
	"strings"

	"github.com/bethropolis/drift/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the renderer. A dotted name falls back to its
// base, e.g. "Shape.selected" to "Shape".
const (
	StyleDefault            = "Default"
	StyleShape              = "Shape"
	StyleShapeSelected      = "Shape.selected"
	StyleContainer          = "Container"
	StyleContainerSelected  = "Container.selected"
	StyleLabel              = "Label"
	StyleConnection         = "Connection"
	StyleConnectionSelected = "Connection.selected"
	StyleSpaceLine          = "SpaceLine"
	StyleStatusBar          = "StatusBar"
	StyleStatusBarMode      = "StatusBarMode"
	StyleStatusBarMessage   = "StatusBarMessage"
)

type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves name, then its base name, then "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("draw", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Built-in themes ---

var DriftDark = func() Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	magenta := tcell.NewHexColor(0xc678dd)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	return Theme{
		Name:   "Drift Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:            base,
			StyleShape:              base.Foreground(blue),
			StyleShapeSelected:      base.Foreground(yellow).Bold(true),
			StyleContainer:          base.Foreground(cyan),
			StyleContainerSelected:  base.Foreground(yellow).Bold(true),
			StyleLabel:              base.Foreground(foreground).Italic(true),
			StyleConnection:         base.Foreground(muted),
			StyleConnectionSelected: base.Foreground(yellow),
			StyleSpaceLine:          base.Foreground(magenta).Bold(true),
			StyleStatusBar:          tcell.StyleDefault.Background(background).Foreground(foreground),
			StyleStatusBarMode:      tcell.StyleDefault.Background(background).Foreground(green).Bold(true),
			StyleStatusBarMessage:   tcell.StyleDefault.Background(background).Foreground(foreground).Bold(true),
		},
	}
}()

var DriftLight = func() Theme {
	foreground := tcell.NewHexColor(0x383a42)
	bar := tcell.NewHexColor(0xe5e5e6)
	blue := tcell.NewHexColor(0x4078f2)
	teal := tcell.NewHexColor(0x0184bc)
	orange := tcell.NewHexColor(0xc18401)
	grey := tcell.NewHexColor(0xa0a1a7)
	purple := tcell.NewHexColor(0xa626a4)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	return Theme{
		Name: "Drift Light",
		Styles: map[string]tcell.Style{
			StyleDefault:            base,
			StyleShape:              base.Foreground(blue),
			StyleShapeSelected:      base.Foreground(orange).Bold(true),
			StyleContainer:          base.Foreground(teal),
			StyleContainerSelected:  base.Foreground(orange).Bold(true),
			StyleLabel:              base.Italic(true),
			StyleConnection:         base.Foreground(grey),
			StyleSpaceLine:          base.Foreground(purple).Bold(true),
			StyleStatusBar:          tcell.StyleDefault.Background(bar).Foreground(foreground),
			StyleStatusBarMode:      tcell.StyleDefault.Background(bar).Foreground(teal).Bold(true),
			StyleStatusBarMessage:   tcell.StyleDefault.Background(bar).Foreground(foreground).Bold(true),
			StyleConnectionSelected: base.Foreground(orange),
		},
	}
}()
