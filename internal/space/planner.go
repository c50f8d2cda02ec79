// Package space plans space-tool gestures: given the shapes that move and
// the shapes that get resized when space is inserted or removed, it orders
// the work so that no step sees a half-updated ancestor.
package space

import (
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/logger"
)

// StepType tells whether a step translates or resizes its elements.
type StepType int

const (
	StepMove StepType = iota
	StepResize
)

func (t StepType) String() string {
	if t == StepResize {
		return "resize"
	}
	return "move"
}

// Step is one unit of the plan. Move steps carry Elements (shapes and
// connections), resize steps carry Shapes.
type Step struct {
	Type     StepType
	Elements []diagram.Element
	Shapes   []*diagram.Shape
	Depth    int
}

// Plan is the executable outcome of a space-tool gesture.
type Plan struct {
	Steps []Step

	// Layouting are connections with exactly one moving endpoint; they are
	// re-laid-out instead of translated.
	Layouting []*diagram.Connection
	// Moving are connections with both endpoints moving; they are
	// translated as a unit and appear in the move steps.
	Moving []*diagram.Connection

	// Adding is false when the gesture removes space, in which case Steps
	// runs deepest first.
	Adding bool
}

// NewPlan partitions connections, drops labels that follow a re-laid-out
// connection, buckets everything by depth and orders the steps for the
// direction of the gesture.
func NewPlan(d *diagram.Diagram, movingShapes, resizingShapes []*diagram.Shape, delta geometry.Delta, direction geometry.Direction) (*Plan, error) {
	adding, err := IsAddingSpace(delta, direction)
	if err != nil {
		return nil, err
	}

	moving, layouting := ClassifyConnections(d, movingShapes)
	movingShapes = FilterLabels(movingShapes, layouting)

	elements := make([]diagram.Element, 0, len(movingShapes)+len(moving))
	for _, s := range movingShapes {
		elements = append(elements, s)
	}
	for _, c := range moving {
		elements = append(elements, c)
	}

	steps := ComputeSteps(d, elements, resizingShapes)
	if !adding {
		reverse(steps)
	}

	logger.DebugTagf("space", "planned %d step(s) for %d moving, %d resizing, direction=%s adding=%t",
		len(steps), len(elements), len(resizingShapes), direction, adding)

	return &Plan{
		Steps:     steps,
		Layouting: layouting,
		Moving:    moving,
		Adding:    adding,
	}, nil
}

// ClassifyConnections splits the connections incident to movingShapes into
// those with both endpoints moving and those with exactly one. Each
// connection is reported once, in discovery order.
func ClassifyConnections(d *diagram.Diagram, movingShapes []*diagram.Shape) (moving, layouting []*diagram.Connection) {
	inSet := make(map[diagram.ID]struct{}, len(movingShapes))
	for _, s := range movingShapes {
		inSet[s.ID] = struct{}{}
	}
	seen := make(map[diagram.ID]struct{})

	for _, s := range movingShapes {
		incident := append(d.Incoming(s), d.Outgoing(s)...)
		for _, c := range incident {
			if _, done := seen[c.ID]; done {
				continue
			}
			_, sourceMoves := inSet[c.Source]
			_, targetMoves := inSet[c.Target]

			switch {
			case sourceMoves && targetMoves:
				moving = append(moving, c)
			case sourceMoves != targetMoves:
				layouting = append(layouting, c)
			default:
				continue
			}
			seen[c.ID] = struct{}{}
		}
	}
	return moving, layouting
}

// FilterLabels drops label shapes whose connection is being re-laid-out;
// the layout moves them.
func FilterLabels(movingShapes []*diagram.Shape, layouting []*diagram.Connection) []*diagram.Shape {
	relaid := make(map[diagram.ID]struct{}, len(layouting))
	for _, c := range layouting {
		relaid[c.ID] = struct{}{}
	}

	out := make([]*diagram.Shape, 0, len(movingShapes))
	for _, s := range movingShapes {
		if s.IsLabel() {
			if _, ok := relaid[s.LabelTarget]; ok {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// ComputeSteps buckets moving elements and resizing shapes by depth and
// emits, from depth 1 down to the deepest bucket, a move step followed by
// a resize step. Moving elements nested in other moving elements share the
// depth of their topmost moving ancestor. The canvas root (depth 0) never
// produces a step.
func ComputeSteps(d *diagram.Diagram, movingElements []diagram.Element, resizingShapes []*diagram.Shape) []Step {
	movingSet := make(map[diagram.ID]struct{}, len(movingElements))
	for _, el := range movingElements {
		movingSet[el.ElementID()] = struct{}{}
	}

	maxDepth := 0
	moveBuckets := make(map[int][]diagram.Element)
	for _, el := range movingElements {
		depth := StepIndex(d, el, movingSet)
		moveBuckets[depth] = append(moveBuckets[depth], el)
		if depth > maxDepth {
			maxDepth = depth
		}
	}

	resizeBuckets := make(map[int][]*diagram.Shape)
	for _, s := range resizingShapes {
		depth := StepIndex(d, s, nil)
		resizeBuckets[depth] = append(resizeBuckets[depth], s)
		if depth > maxDepth {
			maxDepth = depth
		}
	}

	var steps []Step
	for depth := 1; depth <= maxDepth; depth++ {
		if elements, ok := moveBuckets[depth]; ok {
			steps = append(steps, Step{Type: StepMove, Elements: elements, Depth: depth})
		}
		if shapes, ok := resizeBuckets[depth]; ok {
			steps = append(steps, Step{Type: StepResize, Shapes: shapes, Depth: depth})
		}
	}
	return steps
}

// StepIndex returns the depth bucket of el. While el's parent is in
// moving, the walk climbs to that parent first, so a moving subtree is
// handled in a single step at its top.
func StepIndex(d *diagram.Diagram, el diagram.Element, moving map[diagram.ID]struct{}) int {
	current := el
	for {
		parent := d.Parent(current)
		if parent == nil {
			break
		}
		if _, ok := moving[parent.ID]; !ok {
			break
		}
		current = parent
	}
	return d.Depth(current)
}

// IsAddingSpace reports whether the gesture inserts space. For n and w the
// matching delta component must be negative; for s and e it must be
// non-negative.
func IsAddingSpace(delta geometry.Delta, direction geometry.Direction) (bool, error) {
	switch direction {
	case geometry.North:
		return delta.Y < 0, nil
	case geometry.West:
		return delta.X < 0, nil
	case geometry.South:
		return delta.Y >= 0, nil
	case geometry.East:
		return delta.X >= 0, nil
	}
	return false, direction.Validate()
}

func reverse(steps []Step) {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
}
