// Package diagram is the element arena of the editor: every shape and
// connection is owned here and addressed by ID. The parent/children tree is
// the only owning relation; parent back-references, incoming/outgoing
// connections and labels are lookups kept as indices.
package diagram

import (
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/google/uuid"
)

// ID identifies an element for its whole lifetime.
type ID string

// NewID returns a random ID with a readable prefix, e.g. "shape_3f2a...".
func NewID(prefix string) ID {
	return ID(prefix + "_" + uuid.NewString())
}

// Kind tags the element variant.
type Kind int

const (
	KindShape Kind = iota
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindConnection:
		return "connection"
	}
	return "unknown"
}

// Element is either a *Shape or a *Connection. Code that needs variant
// specific behaviour switches on the concrete type once, at the boundary.
type Element interface {
	ElementID() ID
	Kind() Kind
	ParentID() ID

	setParent(ID)
}

// Shape is a positioned node of the tree. X/Y are absolute.
type Shape struct {
	ID ID
	geometry.Bounds

	// LabelTarget is set when this shape is the label of another element.
	LabelTarget ID

	parent   ID
	children []ID
}

func (s *Shape) ElementID() ID     { return s.ID }
func (s *Shape) Kind() Kind        { return KindShape }
func (s *Shape) ParentID() ID      { return s.parent }
func (s *Shape) setParent(id ID)   { s.parent = id }
func (s *Shape) IsLabel() bool     { return s.LabelTarget != "" }
func (s *Shape) HasChildren() bool { return len(s.children) > 0 }

// ChildIDs returns a copy of the ordered child list.
func (s *Shape) ChildIDs() []ID {
	out := make([]ID, len(s.children))
	copy(out, s.children)
	return out
}

// Connection is an edge between two shapes.
type Connection struct {
	ID        ID
	Source    ID
	Target    ID
	Waypoints []geometry.Point

	parent ID
}

func (c *Connection) ElementID() ID   { return c.ID }
func (c *Connection) Kind() Kind      { return KindConnection }
func (c *Connection) ParentID() ID    { return c.parent }
func (c *Connection) setParent(id ID) { c.parent = id }

// CopyWaypoints returns a detached copy of the waypoints.
func (c *Connection) CopyWaypoints() []geometry.Point {
	out := make([]geometry.Point, len(c.Waypoints))
	copy(out, c.Waypoints)
	return out
}

// Mid returns the middle waypoint, or the midpoint of the middle segment
// when the count is even. ok is false for a connection without waypoints.
func (c *Connection) Mid() (p geometry.Point, ok bool) {
	n := len(c.Waypoints)
	if n == 0 {
		return geometry.Point{}, false
	}
	if n%2 == 1 {
		return c.Waypoints[n/2], true
	}
	a, b := c.Waypoints[n/2-1], c.Waypoints[n/2]
	return geometry.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}, true
}
