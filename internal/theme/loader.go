package theme

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/drift/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// styleSpec is one entry of a theme file's [styles] table. Unset fields
// inherit from the "Default" entry.
type styleSpec struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// themeFile is the on-disk layout of a theme.
type themeFile struct {
	Name   string               `toml:"name"`
	IsDark bool                 `toml:"is_dark"`
	Styles map[string]styleSpec `toml:"styles"`
}

var styleNames = []string{
	StyleShape, StyleShapeSelected, StyleContainer, StyleContainerSelected,
	StyleLabel, StyleConnection, StyleConnectionSelected, StyleSpaceLine,
	StyleStatusBar, StyleStatusBarMode, StyleStatusBarMessage,
}

// LoadThemeFromFile reads a TOML theme. Styles that fail to parse are
// logged and left out; the theme itself only fails on I/O or syntax errors.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	var file themeFile
	meta, err := toml.DecodeFile(filePath, &file)
	if err != nil {
		return nil, fmt.Errorf("load theme %s: %w", filePath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme file %s: ignoring unknown keys %v", filePath, undecoded)
	}

	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	theme := file.build()
	logger.Debugf("Loaded theme '%s' (%d styles) from %s", theme.Name, len(theme.Styles), filePath)
	return theme, nil
}

// build resolves the "Default" entry first, since every other entry is
// layered on top of it.
func (f *themeFile) build() *Theme {
	theme := &Theme{
		Name:   f.Name,
		IsDark: f.IsDark,
		Styles: make(map[string]tcell.Style, len(f.Styles)+1),
	}

	base := tcell.StyleDefault
	if spec, ok := f.Styles[StyleDefault]; ok {
		if style, err := spec.apply(base); err != nil {
			logger.Warnf("Theme '%s': bad Default style, keeping terminal default: %v", f.Name, err)
		} else {
			base = style
		}
	}
	theme.Styles[StyleDefault] = base

	for name, spec := range f.Styles {
		if name == StyleDefault {
			continue
		}
		if !slices.Contains(styleNames, name) {
			// Still kept: a later canvas version may draw it.
			logger.Warnf("Theme '%s': style '%s' is not used by the canvas", f.Name, name)
		}
		style, err := spec.apply(base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", f.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}
	return theme
}

// apply layers the set fields of s over base.
func (s styleSpec) apply(base tcell.Style) (tcell.Style, error) {
	style := base
	for _, c := range []struct {
		value *string
		set   func(tcell.Style, tcell.Color) tcell.Style
		what  string
	}{
		{s.Fg, tcell.Style.Foreground, "fg"},
		{s.Bg, tcell.Style.Background, "bg"},
	} {
		if c.value == nil {
			continue
		}
		color, err := parseColorString(*c.value)
		if err != nil {
			return base, fmt.Errorf("%s: %w", c.what, err)
		}
		style = c.set(style, color)
	}

	for _, a := range []struct {
		value *bool
		set   func(tcell.Style, bool) tcell.Style
	}{
		{s.Bold, tcell.Style.Bold},
		{s.Italic, tcell.Style.Italic},
		{s.Underline, func(st tcell.Style, on bool) tcell.Style { return st.Underline(on) }},
		{s.Reverse, tcell.Style.Reverse},
	} {
		if a.value != nil {
			style = a.set(style, *a.value)
		}
	}
	return style, nil
}

// parseColorString accepts #RRGGBB, a tcell color name, "reset" and
// "default". Case and surrounding blanks are ignored.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return tcell.ColorDefault, fmt.Errorf("color %q: want #RRGGBB", s)
		}
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("color %q: %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}

	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	if color, ok := tcell.ColorNames[s]; ok {
		return color, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}
