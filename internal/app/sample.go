package app

import (
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
)

func rect(x, y, w, h float64) geometry.Bounds {
	return geometry.Bounds{X: x, Y: y, Width: w, Height: h}
}

// SampleDiagram builds the diagram shown when none is given: a pool with
// two tasks and a note, a task outside it and two labelled connections.
// Coordinates are terminal cells.
func SampleDiagram() (*diagram.Diagram, error) {
	d := diagram.New("")

	pool := &diagram.Shape{ID: "pool", Bounds: rect(2, 1, 58, 15)}
	review := &diagram.Shape{ID: "review", Bounds: rect(6, 4, 14, 5)}
	approve := &diagram.Shape{ID: "approve", Bounds: rect(36, 4, 14, 5)}
	notes := &diagram.Shape{ID: "notes", Bounds: rect(6, 11, 20, 3)}
	archive := &diagram.Shape{ID: "archive", Bounds: rect(66, 4, 14, 5)}

	for _, step := range []struct {
		shape, parent *diagram.Shape
	}{
		{pool, nil},
		{review, pool},
		{approve, pool},
		{notes, pool},
		{archive, nil},
	} {
		if err := d.AddShape(step.shape, step.parent); err != nil {
			return nil, err
		}
	}

	submit := &diagram.Connection{
		ID: "submit", Source: review.ID, Target: approve.ID,
		Waypoints: []geometry.Point{{X: 20, Y: 6}, {X: 36, Y: 6}},
	}
	if err := d.AddConnection(submit, pool); err != nil {
		return nil, err
	}
	store := &diagram.Connection{
		ID: "store", Source: approve.ID, Target: archive.ID,
		Waypoints: []geometry.Point{{X: 50, Y: 6}, {X: 58, Y: 6}, {X: 58, Y: 7}, {X: 66, Y: 7}},
	}
	if err := d.AddConnection(store, nil); err != nil {
		return nil, err
	}

	ok := &diagram.Shape{ID: "ok", LabelTarget: submit.ID, Bounds: rect(27, 7, 2, 1)}
	if err := d.AddShape(ok, pool); err != nil {
		return nil, err
	}
	done := &diagram.Shape{ID: "done", LabelTarget: store.ID, Bounds: rect(60, 8, 4, 1)}
	if err := d.AddShape(done, nil); err != nil {
		return nil, err
	}
	return d, nil
}
