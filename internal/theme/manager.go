package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/drift/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// ErrThemeNotFound is returned by SetTheme for an unknown name.
var ErrThemeNotFound = errors.New("theme not found")

// Manager holds loaded themes and manages the active theme.
type Manager struct {
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
	themesDir   string
	mutex       sync.RWMutex
}

// NewManager loads the built-in themes and any *.toml theme in themesDir,
// then activates initial (falling back to Drift Dark). An empty themesDir
// skips the directory scan.
func NewManager(themesDir, initial string) *Manager {
	mgr := &Manager{
		themes:    make(map[string]*Theme),
		themesDir: themesDir,
	}
	mgr.loadBuiltinThemes()

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}

	if err := mgr.SetTheme(initial); err != nil {
		logger.Warnf("Theme '%s' not available, using '%s'", initial, DriftDark.Name)
		mgr.activeTheme = mgr.themes[strings.ToLower(DriftDark.Name)]
	}
	return mgr
}

func (m *Manager) loadBuiltinThemes() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, t := range []*Theme{&DriftDark, &DriftLight} {
		m.themes[strings.ToLower(t.Name)] = t
	}
}

// LoadThemesFromDir scans the themes directory and loads .toml files. A
// missing directory is not an error.
func (m *Manager) LoadThemesFromDir() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.themesDir == "" {
		return errors.New("theme directory path is not set")
	}

	files, err := os.ReadDir(m.themesDir)
	if os.IsNotExist(err) {
		logger.Debugf("Theme directory '%s' does not exist. No custom themes loaded.", m.themesDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	loadedCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		filePath := filepath.Join(m.themesDir, file.Name())
		theme, err := LoadThemeFromFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
			continue
		}

		key := strings.ToLower(theme.Name)
		if existing, ok := m.themes[key]; ok {
			logger.Warnf("Theme '%s' from '%s' overrides existing theme '%s'", theme.Name, filePath, existing.Name)
		}
		m.themes[key] = theme
		loadedCount++
	}
	logger.Infof("Loaded %d custom themes from %s.", loadedCount, m.themesDir)
	return nil
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.activeTheme == nil {
		return &Theme{Name: "Failsafe", Styles: map[string]tcell.Style{StyleDefault: tcell.StyleDefault}}
	}
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s': %w", name, ErrThemeNotFound)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
	}
	return nil
}

// Next activates the theme after the current one in name order and
// returns it.
func (m *Manager) Next() *Theme {
	names := m.ListThemes()
	current := m.Current().Name
	next := names[0]
	for i, name := range names {
		if strings.EqualFold(name, current) {
			next = names[(i+1)%len(names)]
			break
		}
	}
	_ = m.SetTheme(next)
	return m.Current()
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	sort.Strings(names)
	return names
}
