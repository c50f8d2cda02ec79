package event

import (
	"sync"

	"github.com/bethropolis/drift/internal/logger"
)

// Handler is an event subscriber. Returning true stops delivery to the
// handlers subscribed after it.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "handler subscribed to %v", eventType)
}

// Dispatch delivers an event synchronously to the handlers of its type.
// A nil manager is a valid no-op bus.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	if m == nil {
		return
	}
	e := Event{Type: eventType, Data: data}

	m.mu.RLock()
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType]) // handlers may subscribe during dispatch
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	logger.DebugTagf("event", "dispatching %v to %d handler(s)", eventType, len(handlers))
	for _, handler := range handlers {
		if handler(e) {
			break
		}
	}
}
