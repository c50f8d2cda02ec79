package core

import (
	"fmt"

	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/logger"
)

// selectable lists every element except the root in tree pre-order.
func (e *Editor) selectable() []diagram.ID {
	d := e.Diagram()
	var ids []diagram.ID
	d.Walk(func(el diagram.Element) bool {
		if s, ok := el.(*diagram.Shape); ok && d.IsRoot(s) {
			return true
		}
		ids = append(ids, el.ElementID())
		return true
	})
	return ids
}

// Selected returns the selected element, or nil.
func (e *Editor) Selected() diagram.Element {
	if e.selected == "" {
		return nil
	}
	return e.Diagram().Element(e.selected)
}

// SelectedID returns the ID of the selection; empty when nothing is
// selected.
func (e *Editor) SelectedID() diagram.ID {
	if e.Selected() == nil {
		return ""
	}
	return e.selected
}

// Select selects the element with the given ID. Unknown IDs clear the
// selection.
func (e *Editor) Select(id diagram.ID) {
	if e.Diagram().Element(id) == nil {
		e.ClearSelection()
		return
	}
	e.selected = id
	logger.DebugTagf("selection", "selected %s", id)
}

// ClearSelection resets the selection.
func (e *Editor) ClearSelection() {
	e.selected = ""
}

// SelectNext moves the selection forward in tree order, wrapping around.
func (e *Editor) SelectNext() { e.cycle(1) }

// SelectPrev moves the selection backward in tree order, wrapping around.
func (e *Editor) SelectPrev() { e.cycle(-1) }

func (e *Editor) cycle(step int) {
	ids := e.selectable()
	if len(ids) == 0 {
		e.ClearSelection()
		return
	}

	current := -1
	for i, id := range ids {
		if id == e.selected {
			current = i
			break
		}
	}
	if current < 0 {
		// Nothing selected: forward starts at the first, backward at the last.
		if step > 0 {
			e.Select(ids[0])
		} else {
			e.Select(ids[len(ids)-1])
		}
		return
	}
	e.Select(ids[(current+step+len(ids))%len(ids)])
}

// DescribeSelection renders the selection for the status bar.
func (e *Editor) DescribeSelection() string {
	switch el := e.Selected().(type) {
	case *diagram.Shape:
		kind := "shape"
		if el.IsLabel() {
			kind = "label"
		}
		return fmt.Sprintf("%s %s %s", kind, el.ID, el.Bounds)
	case *diagram.Connection:
		return fmt.Sprintf("connection %s %s->%s", el.ID, el.Source, el.Target)
	}
	return ""
}
