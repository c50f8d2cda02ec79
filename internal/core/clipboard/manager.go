// Package clipboard copies element IDs to an internal register and,
// when enabled, to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/drift/internal/logger"
)

// ErrUnsupported is returned when the system clipboard is enabled but no
// clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard unsupported")

// Manager handles clipboard operations.
type Manager struct {
	system   bool
	register string

	// writeAll is swapped out in tests.
	writeAll    func(text string) error
	unsupported func() bool
}

// NewManager creates a clipboard manager. With system set, Copy also
// writes to the OS clipboard.
func NewManager(system bool) *Manager {
	return &Manager{
		system:      system,
		writeAll:    clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Copy stores text in the register and mirrors it to the system clipboard
// when enabled. The register is updated even if the system write fails.
func (m *Manager) Copy(text string) error {
	m.register = text
	logger.Debugf("ClipboardManager: copied %d bytes", len(text))
	if !m.system {
		return nil
	}
	if m.unsupported() {
		return ErrUnsupported
	}
	if err := m.writeAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// Contents returns the last copied text.
func (m *Manager) Contents() string {
	return m.register
}
