package handler

import (
	"fmt"

	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
)

// MoveHelper cascades a translation through whole subtrees.
type MoveHelper struct {
	diagram  *diagram.Diagram
	modeling Modeling
}

// NewMoveHelper creates a helper that issues its moves through m.
func NewMoveHelper(d *diagram.Diagram, m Modeling) *MoveHelper {
	return &MoveHelper{diagram: d, modeling: m}
}

// subtreeHints move a single shape and nothing else.
func subtreeHints() *Hints {
	return &Hints{Layout: LayoutNone}
}

// MoveRecursive moves shapes and all their descendant shapes by delta,
// parents before children. Parent links are left unchanged and no
// connection is laid out. A zero delta does nothing.
func (mh *MoveHelper) MoveRecursive(shapes []*diagram.Shape, delta geometry.Delta) error {
	if delta.IsZero() || len(shapes) == 0 {
		return nil
	}

	stack := make([]*diagram.Shape, 0, len(shapes))
	for i := len(shapes) - 1; i >= 0; i-- {
		stack = append(stack, shapes[i])
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := mh.modeling.MoveShape(s, delta, nil, subtreeHints()); err != nil {
			return fmt.Errorf("move descendant %s: %w", s.ID, err)
		}

		children := mh.diagram.ChildShapes(s)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}
