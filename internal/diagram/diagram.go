package diagram

import (
	"fmt"

	"github.com/bethropolis/drift/internal/collection"
)

// Diagram owns all elements and the indices over them.
// It is not safe for concurrent use; commands run one at a time.
type Diagram struct {
	root        *Shape
	shapes      map[ID]*Shape
	connections map[ID]*Connection

	incoming map[ID][]ID // shape -> connections ending at it
	outgoing map[ID][]ID // shape -> connections starting at it
	labels   map[ID][]ID // element -> label shapes
}

// New creates a diagram with an empty root (the canvas).
func New(rootID ID) *Diagram {
	if rootID == "" {
		rootID = "__root"
	}
	root := &Shape{ID: rootID}
	return &Diagram{
		root:        root,
		shapes:      map[ID]*Shape{rootID: root},
		connections: make(map[ID]*Connection),
		incoming:    make(map[ID][]ID),
		outgoing:    make(map[ID][]ID),
		labels:      make(map[ID][]ID),
	}
}

// Root returns the canvas root shape.
func (d *Diagram) Root() *Shape { return d.root }

// IsRoot reports whether s is the canvas root.
func (d *Diagram) IsRoot(s *Shape) bool { return s == d.root }

// AddShape registers s as the last child of parent (the root when nil).
// An empty ID is replaced with a generated one.
func (d *Diagram) AddShape(s *Shape, parent *Shape) error {
	if s.ID == "" {
		s.ID = NewID("shape")
	}
	if d.Element(s.ID) != nil {
		return fmt.Errorf("add shape %s: %w", s.ID, ErrDuplicateID)
	}
	parent, err := d.resolveParent(parent)
	if err != nil {
		return fmt.Errorf("add shape %s: %w", s.ID, err)
	}
	if s.LabelTarget != "" && d.Element(s.LabelTarget) == nil {
		return fmt.Errorf("add label %s for %s: %w", s.ID, s.LabelTarget, ErrUnknownElement)
	}

	d.shapes[s.ID] = s
	d.InsertChild(parent, s, collection.End)
	if s.LabelTarget != "" {
		d.labels[s.LabelTarget] = append(d.labels[s.LabelTarget], s.ID)
	}
	return nil
}

// AddConnection registers c under parent (the root when nil) and indexes it
// on its endpoints.
func (d *Diagram) AddConnection(c *Connection, parent *Shape) error {
	if c.ID == "" {
		c.ID = NewID("connection")
	}
	if d.Element(c.ID) != nil {
		return fmt.Errorf("add connection %s: %w", c.ID, ErrDuplicateID)
	}
	if d.Shape(c.Source) == nil || d.Shape(c.Target) == nil {
		return fmt.Errorf("add connection %s (%s -> %s): %w", c.ID, c.Source, c.Target, ErrNotShape)
	}
	parent, err := d.resolveParent(parent)
	if err != nil {
		return fmt.Errorf("add connection %s: %w", c.ID, err)
	}

	d.connections[c.ID] = c
	d.InsertChild(parent, c, collection.End)
	d.outgoing[c.Source] = append(d.outgoing[c.Source], c.ID)
	d.incoming[c.Target] = append(d.incoming[c.Target], c.ID)
	return nil
}

func (d *Diagram) resolveParent(parent *Shape) (*Shape, error) {
	if parent == nil {
		return d.root, nil
	}
	if d.shapes[parent.ID] != parent {
		return nil, fmt.Errorf("parent %s: %w", parent.ID, ErrUnknownElement)
	}
	return parent, nil
}

// Shape returns the shape with the given ID or nil.
func (d *Diagram) Shape(id ID) *Shape { return d.shapes[id] }

// Connection returns the connection with the given ID or nil.
func (d *Diagram) Connection(id ID) *Connection { return d.connections[id] }

// Element returns the shape or connection with the given ID, or nil.
func (d *Diagram) Element(id ID) Element {
	if s, ok := d.shapes[id]; ok {
		return s
	}
	if c, ok := d.connections[id]; ok {
		return c
	}
	return nil
}

// Parent returns the parent shape of el, or nil for the root and for
// detached elements.
func (d *Diagram) Parent(el Element) *Shape {
	if el == nil || el.ParentID() == "" {
		return nil
	}
	return d.shapes[el.ParentID()]
}

// Children returns the children of s in sibling order.
func (d *Diagram) Children(s *Shape) []Element {
	out := make([]Element, 0, len(s.children))
	for _, id := range s.children {
		if el := d.Element(id); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// ChildShapes returns only the shape children of s, in sibling order.
func (d *Diagram) ChildShapes(s *Shape) []*Shape {
	out := make([]*Shape, 0, len(s.children))
	for _, id := range s.children {
		if child, ok := d.shapes[id]; ok {
			out = append(out, child)
		}
	}
	return out
}

// Incoming returns the connections targeting s.
func (d *Diagram) Incoming(s *Shape) []*Connection {
	return d.lookupConnections(d.incoming[s.ID])
}

// Outgoing returns the connections starting at s.
func (d *Diagram) Outgoing(s *Shape) []*Connection {
	return d.lookupConnections(d.outgoing[s.ID])
}

func (d *Diagram) lookupConnections(ids []ID) []*Connection {
	out := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := d.connections[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Labels returns the label shapes attached to the element with the given ID.
func (d *Diagram) Labels(id ID) []*Shape {
	ids := d.labels[id]
	out := make([]*Shape, 0, len(ids))
	for _, lid := range ids {
		if s, ok := d.shapes[lid]; ok {
			out = append(out, s)
		}
	}
	return out
}

// IndexOf returns the sibling index of el inside parent, or -1.
func (d *Diagram) IndexOf(parent *Shape, el Element) int {
	return collection.IndexOf(parent.children, el.ElementID())
}

// RemoveChild takes el out of parent's child list and returns the index it
// had, or -1 when parent does not contain it. The element's parent
// reference is left alone; callers re-attach it right after.
func (d *Diagram) RemoveChild(parent *Shape, el Element) int {
	var index int
	parent.children, index = collection.Remove(parent.children, el.ElementID())
	return index
}

// InsertChild puts el into parent's child list at index (collection.End
// appends) and points el at its new parent.
func (d *Diagram) InsertChild(parent *Shape, el Element, index int) {
	parent.children = collection.InsertAt(parent.children, el.ElementID(), index)
	el.setParent(parent.ID)
}

// Depth returns the number of parent links between el and the root.
func (d *Diagram) Depth(el Element) int {
	depth := 0
	for p := d.Parent(el); p != nil; p = d.Parent(p) {
		depth++
	}
	return depth
}

// IsAncestor reports whether ancestor is a strict ancestor of el.
func (d *Diagram) IsAncestor(ancestor *Shape, el Element) bool {
	for p := d.Parent(el); p != nil; p = d.Parent(p) {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Walk visits every element in tree pre-order starting at the root.
// Returning false from fn skips the element's subtree.
func (d *Diagram) Walk(fn func(el Element) bool) {
	stack := []Element{d.root}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(el) {
			continue
		}
		s, ok := el.(*Shape)
		if !ok {
			continue
		}
		children := d.Children(s)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Len returns the number of registered elements, root included.
func (d *Diagram) Len() int {
	return len(d.shapes) + len(d.connections)
}
