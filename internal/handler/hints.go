// Package handler holds the reversible command implementations at the core
// of the editor: moving a shape, cascading a move through a subtree and
// running the space tool. Handlers mutate the diagram directly in Execute
// and issue every follow-up change through the Modeling facade so that
// each one is recorded and reversible on its own.
package handler

import "github.com/bethropolis/drift/internal/diagram"

// LayoutMode selects which attached connections a move re-lays-out.
type LayoutMode int

const (
	// LayoutAll re-lays-out every incoming and outgoing connection.
	LayoutAll LayoutMode = iota
	// LayoutNone skips connection layout.
	LayoutNone
	// LayoutOnly restricts layout to Hints.LayoutConnections.
	LayoutOnly
)

// Hints tune the side effects of a move. The zero value still lays out
// every connection but switches the boolean effects off; DefaultHints is
// what an interactive move uses.
type Hints struct {
	// Layout defaults to LayoutAll.
	Layout LayoutMode
	// LayoutConnections is the allow-list used with LayoutOnly.
	LayoutConnections []*diagram.Connection
	// Recurse moves the shape's descendants along. Default true.
	Recurse bool
	// AutoResize lets the new parent grow to fit the shape. Default true.
	AutoResize bool
	// MoveElementsBehavior makes attached labels follow and, with Recurse,
	// the connections among descendants. Default true.
	MoveElementsBehavior bool
}

// DefaultHints returns the hints applied when a caller passes nil.
func DefaultHints() Hints {
	return Hints{
		Layout:               LayoutAll,
		Recurse:              true,
		AutoResize:           true,
		MoveElementsBehavior: true,
	}
}

// ResolveHints returns *h, or DefaultHints for nil.
func ResolveHints(h *Hints) Hints {
	if h == nil {
		return DefaultHints()
	}
	return *h
}

// LaysOut reports whether conn is selected for layout under these hints.
func (h Hints) LaysOut(conn *diagram.Connection) bool {
	switch h.Layout {
	case LayoutNone:
		return false
	case LayoutOnly:
		for _, c := range h.LayoutConnections {
			if c == conn {
				return true
			}
		}
		return false
	}
	return true
}
