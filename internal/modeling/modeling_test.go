package modeling

import (
	"testing"

	"github.com/bethropolis/drift/internal/command"
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/event"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/handler"
	"github.com/bethropolis/drift/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(id string, x, y, w, h float64) *diagram.Shape {
	return &diagram.Shape{ID: diagram.ID(id), Bounds: geometry.Bounds{X: x, Y: y, Width: w, Height: h}}
}

func label(id, target string, x, y float64) *diagram.Shape {
	s := box(id, x, y, 20, 5)
	s.LabelTarget = diagram.ID(target)
	return s
}

func add(t *testing.T, d *diagram.Diagram, s, parent *diagram.Shape) *diagram.Shape {
	t.Helper()
	require.NoError(t, d.AddShape(s, parent))
	return s
}

func connect(t *testing.T, d *diagram.Diagram, id string, source, target *diagram.Shape) *diagram.Connection {
	t.Helper()
	c := &diagram.Connection{
		ID:        diagram.ID(id),
		Source:    source.ID,
		Target:    target.ID,
		Waypoints: []geometry.Point{source.Center(), target.Center()},
	}
	require.NoError(t, d.AddConnection(c, nil))
	return c
}

func newModeling(d *diagram.Diagram) (*Modeling, *event.Manager) {
	events := event.NewManager()
	stack := command.NewStack(events, 0)
	return New(d, stack, Options{AutoResizePadding: DefaultAutoResizePadding}), events
}

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

func TestMoveShapeUndoRedo(t *testing.T) {
	d := diagram.New("root")
	container := add(t, d, box("container", 0, 0, 100, 100), nil)
	child := add(t, d, box("child", 10, 10, 20, 20), container)
	other := add(t, d, box("other", 200, 0, 20, 20), nil)
	conn := connect(t, d, "conn", child, other)
	m, events := newModeling(d)

	var changed []diagram.ID
	events.Subscribe(event.TypeElementsChanged, func(e event.Event) bool {
		changed = append(changed, e.Data.(event.ElementsChangedData).Elements...)
		return false
	})

	require.NoError(t, m.MoveShape(child, geometry.Delta{X: 20}, nil, nil))

	assert.Equal(t, 30.0, child.X)
	assert.Same(t, container, d.Parent(child))
	assert.Equal(t, []geometry.Point{pt(40, 20), pt(210, 10)}, conn.Waypoints)
	assert.Equal(t, geometry.Bounds{X: 0, Y: 0, Width: 100, Height: 100}, container.Bounds)
	assert.Equal(t, []diagram.ID{"child", "conn"}, changed)
	assert.Equal(t, 1, m.Stack().Len())

	undone, err := m.Stack().Undo()
	require.NoError(t, err)
	assert.True(t, undone)
	assert.Equal(t, 10.0, child.X)
	assert.Equal(t, []geometry.Point{pt(20, 20), pt(210, 10)}, conn.Waypoints)

	redone, err := m.Stack().Redo()
	require.NoError(t, err)
	assert.True(t, redone)
	assert.Equal(t, 30.0, child.X)
	assert.Equal(t, []geometry.Point{pt(40, 20), pt(210, 10)}, conn.Waypoints)
}

func TestMoveShapeRecursesThroughStack(t *testing.T) {
	d := diagram.New("root")
	outer := add(t, d, box("outer", 0, 0, 200, 200), nil)
	inner := add(t, d, box("inner", 10, 10, 100, 100), outer)
	leaf := add(t, d, box("leaf", 20, 20, 10, 10), inner)
	m, _ := newModeling(d)

	require.NoError(t, m.MoveShape(outer, geometry.Delta{X: 5, Y: 7}, nil, nil))
	assert.Equal(t, geometry.Bounds{X: 15, Y: 17, Width: 100, Height: 100}, inner.Bounds)
	assert.Equal(t, geometry.Bounds{X: 25, Y: 27, Width: 10, Height: 10}, leaf.Bounds)
	assert.Equal(t, 1, m.Stack().Len(), "descendant moves join the transaction")

	_, err := m.Stack().Undo()
	require.NoError(t, err)
	assert.Equal(t, geometry.Bounds{X: 0, Y: 0, Width: 200, Height: 200}, outer.Bounds)
	assert.Equal(t, geometry.Bounds{X: 10, Y: 10, Width: 100, Height: 100}, inner.Bounds)
	assert.Equal(t, geometry.Bounds{X: 20, Y: 20, Width: 10, Height: 10}, leaf.Bounds)
}

func TestMoveShapeCarriesInnerConnections(t *testing.T) {
	d := diagram.New("root")
	container := add(t, d, box("container", 0, 0, 200, 100), nil)
	a := add(t, d, box("a", 10, 10, 20, 20), container)
	b := add(t, d, box("b", 100, 10, 20, 20), container)
	outside := add(t, d, box("outside", 300, 10, 20, 20), nil)
	inner := connect(t, d, "inner", a, b)
	out := connect(t, d, "out", b, outside)
	in := connect(t, d, "in", outside, a)
	il := add(t, d, label("il", "inner", 50, 25), container)
	m, _ := newModeling(d)

	require.NoError(t, m.MoveShape(container, geometry.Delta{X: 5, Y: 5}, nil, nil))
	assert.Equal(t, []geometry.Point{pt(25, 25), pt(115, 25)}, inner.Waypoints)
	assert.Equal(t, []geometry.Point{pt(115, 25), pt(310, 20)}, out.Waypoints)
	assert.Equal(t, []geometry.Point{pt(310, 20), pt(25, 25)}, in.Waypoints)
	assert.Equal(t, pt(55, 30), pt(il.X, il.Y), "label inside the container moves once")
	assert.Equal(t, 1, m.Stack().Len())

	_, err := m.Stack().Undo()
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{pt(20, 20), pt(110, 20)}, inner.Waypoints)
	assert.Equal(t, []geometry.Point{pt(110, 20), pt(310, 20)}, out.Waypoints)
	assert.Equal(t, []geometry.Point{pt(310, 20), pt(20, 20)}, in.Waypoints)
	assert.Equal(t, pt(50, 25), pt(il.X, il.Y))

	t.Run("helper moves leave connections alone", func(t *testing.T) {
		require.NoError(t, m.MoveShape(container, geometry.Delta{X: 5}, nil, &handler.Hints{Layout: handler.LayoutNone, Recurse: true}))
		assert.Equal(t, []geometry.Point{pt(20, 20), pt(110, 20)}, inner.Waypoints)
	})
}

func TestMoveShapeCarriesConnectionsToOwnDescendants(t *testing.T) {
	build := func(t *testing.T) (*Modeling, *diagram.Shape, *diagram.Connection, *diagram.Connection) {
		d := diagram.New("root")
		cont := add(t, d, box("cont", 0, 0, 100, 100), nil)
		child := add(t, d, box("child", 40, 40, 20, 20), cont)
		down := connect(t, d, "down", cont, child)
		up := connect(t, d, "up", child, cont)
		m, _ := newModeling(d)
		return m, cont, down, up
	}
	moved := []geometry.Point{pt(250, 50), pt(250, 50)}

	t.Run("handler lays out the container end", func(t *testing.T) {
		m, cont, down, up := build(t)
		require.NoError(t, m.MoveShape(cont, geometry.Delta{X: 200}, nil, nil))
		assert.Equal(t, moved, down.Waypoints)
		assert.Equal(t, moved, up.Waypoints)

		_, err := m.Stack().Undo()
		require.NoError(t, err)
		assert.Equal(t, []geometry.Point{pt(50, 50), pt(50, 50)}, down.Waypoints)
		assert.Equal(t, []geometry.Point{pt(50, 50), pt(50, 50)}, up.Waypoints)

		_, err = m.Stack().Redo()
		require.NoError(t, err)
		assert.Equal(t, moved, down.Waypoints)
		assert.Equal(t, moved, up.Waypoints)
	})

	t.Run("layout switched off translates them", func(t *testing.T) {
		m, cont, down, up := build(t)
		hints := &handler.Hints{Layout: handler.LayoutNone, Recurse: true, MoveElementsBehavior: true}
		require.NoError(t, m.MoveShape(cont, geometry.Delta{X: 200}, nil, hints))
		assert.Equal(t, moved, down.Waypoints)
		assert.Equal(t, moved, up.Waypoints)
	})
}

func TestMoveShapeTo(t *testing.T) {
	d := diagram.New("root")
	a := add(t, d, box("a", 0, 0, 10, 10), nil)
	add(t, d, box("b", 0, 0, 10, 10), nil)
	add(t, d, box("c", 0, 0, 10, 10), nil)
	m, _ := newModeling(d)

	require.NoError(t, m.MoveShapeTo(a, geometry.Delta{}, nil, 2, nil))
	assert.Equal(t, []diagram.ID{"b", "c", "a"}, d.Root().ChildIDs())

	_, err := m.Stack().Undo()
	require.NoError(t, err)
	assert.Equal(t, []diagram.ID{"a", "b", "c"}, d.Root().ChildIDs())
}

func TestLabelsFollow(t *testing.T) {
	t.Run("shape label", func(t *testing.T) {
		d := diagram.New("root")
		s := add(t, d, box("s", 0, 0, 20, 20), nil)
		sl := add(t, d, label("sl", "s", 0, 25), nil)
		m, _ := newModeling(d)

		require.NoError(t, m.MoveShape(s, geometry.Delta{X: 5, Y: 5}, nil, nil))
		assert.Equal(t, pt(5, 30), pt(sl.X, sl.Y))

		_, err := m.Stack().Undo()
		require.NoError(t, err)
		assert.Equal(t, pt(0, 25), pt(sl.X, sl.Y))
	})

	t.Run("behavior switched off", func(t *testing.T) {
		d := diagram.New("root")
		s := add(t, d, box("s", 0, 0, 20, 20), nil)
		sl := add(t, d, label("sl", "s", 0, 25), nil)
		m, _ := newModeling(d)

		require.NoError(t, m.MoveShape(s, geometry.Delta{X: 5}, nil, &handler.Hints{Recurse: true}))
		assert.Equal(t, 0.0, sl.X)
	})

	t.Run("label inside the moved shape moves once", func(t *testing.T) {
		d := diagram.New("root")
		s := add(t, d, box("s", 0, 0, 50, 50), nil)
		sl := add(t, d, label("sl", "s", 5, 5), s)
		m, _ := newModeling(d)

		require.NoError(t, m.MoveShape(s, geometry.Delta{X: 10}, nil, nil))
		assert.Equal(t, 15.0, sl.X)
	})

	t.Run("connection label", func(t *testing.T) {
		d := diagram.New("root")
		a := add(t, d, box("a", 0, 0, 20, 20), nil)
		b := add(t, d, box("b", 100, 0, 20, 20), nil)
		conn := connect(t, d, "conn", a, b)
		cl := add(t, d, label("cl", "conn", 50, 15), nil)
		m, _ := newModeling(d)

		require.NoError(t, m.MoveConnection(conn, geometry.Delta{Y: 10}, nil, nil))
		assert.Equal(t, []geometry.Point{pt(10, 20), pt(110, 20)}, conn.Waypoints)
		assert.Equal(t, 25.0, cl.Y)

		_, err := m.Stack().Undo()
		require.NoError(t, err)
		assert.Equal(t, []geometry.Point{pt(10, 10), pt(110, 10)}, conn.Waypoints)
		assert.Equal(t, 15.0, cl.Y)
	})
}

func TestAutoResize(t *testing.T) {
	t.Run("parent grows on the exceeded side", func(t *testing.T) {
		d := diagram.New("root")
		container := add(t, d, box("container", 0, 0, 100, 100), nil)
		child := add(t, d, box("child", 10, 10, 20, 20), container)
		m, _ := newModeling(d)

		require.NoError(t, m.MoveShape(child, geometry.Delta{X: 90}, nil, nil))
		assert.Equal(t, geometry.Bounds{X: 0, Y: 0, Width: 130, Height: 100}, container.Bounds)

		_, err := m.Stack().Undo()
		require.NoError(t, err)
		assert.Equal(t, geometry.Bounds{X: 0, Y: 0, Width: 100, Height: 100}, container.Bounds)
		assert.Equal(t, 10.0, child.X)
	})

	t.Run("top-left growth moves the origin", func(t *testing.T) {
		d := diagram.New("root")
		container := add(t, d, box("container", 0, 0, 100, 100), nil)
		child := add(t, d, box("child", 10, 10, 20, 20), container)
		m, _ := newModeling(d)

		require.NoError(t, m.MoveShape(child, geometry.Delta{X: -30, Y: -15}, nil, nil))
		assert.Equal(t, geometry.Bounds{X: -30, Y: -15, Width: 130, Height: 115}, container.Bounds)
	})

	t.Run("root never resizes", func(t *testing.T) {
		d := diagram.New("root")
		s := add(t, d, box("s", 0, 0, 10, 10), nil)
		m, _ := newModeling(d)

		require.NoError(t, m.MoveShape(s, geometry.Delta{X: 5000}, nil, nil))
		assert.Equal(t, geometry.Bounds{}, d.Root().Bounds)
	})

	t.Run("hint off", func(t *testing.T) {
		d := diagram.New("root")
		container := add(t, d, box("container", 0, 0, 100, 100), nil)
		child := add(t, d, box("child", 10, 10, 20, 20), container)
		m, _ := newModeling(d)

		require.NoError(t, m.MoveShape(child, geometry.Delta{X: 90}, nil, &handler.Hints{}))
		assert.Equal(t, 100.0, container.Width)
	})
}

func TestFitBounds(t *testing.T) {
	outer := geometry.Bounds{X: 0, Y: 0, Width: 100, Height: 100}

	got, grown := fitBounds(outer, geometry.Bounds{X: 10, Y: 10, Width: 10, Height: 10}, 10)
	assert.False(t, grown)
	assert.Equal(t, outer, got)

	got, grown = fitBounds(outer, geometry.Bounds{X: 95, Y: 95, Width: 10, Height: 10}, 5)
	assert.True(t, grown)
	assert.Equal(t, geometry.Bounds{X: 0, Y: 0, Width: 110, Height: 110}, got)
}

func TestResizeShape(t *testing.T) {
	t.Run("re-anchors attached connections", func(t *testing.T) {
		d := diagram.New("root")
		s := add(t, d, box("s", 0, 0, 20, 20), nil)
		other := add(t, d, box("other", 200, 0, 20, 20), nil)
		conn := connect(t, d, "conn", s, other)
		m, _ := newModeling(d)

		require.NoError(t, m.ResizeShape(s, geometry.Bounds{X: 100, Y: 100, Width: 10, Height: 10}))
		assert.Equal(t, []geometry.Point{pt(105, 105), pt(210, 10)}, conn.Waypoints)

		_, err := m.Stack().Undo()
		require.NoError(t, err)
		assert.Equal(t, geometry.Bounds{X: 0, Y: 0, Width: 20, Height: 20}, s.Bounds)
		assert.Equal(t, []geometry.Point{pt(10, 10), pt(210, 10)}, conn.Waypoints)
	})

	t.Run("negative extent", func(t *testing.T) {
		d := diagram.New("root")
		s := add(t, d, box("s", 0, 0, 20, 20), nil)
		m, _ := newModeling(d)

		err := m.ResizeShape(s, geometry.Bounds{Width: -1, Height: 5})
		assert.ErrorIs(t, err, ErrInvalidBounds)
		assert.Equal(t, 20.0, s.Width)
		assert.Zero(t, m.Stack().Len())
	})

	t.Run("failure inside a gesture rolls everything back", func(t *testing.T) {
		d := diagram.New("root")
		pool := add(t, d, box("pool", 0, 0, 300, 100), nil)
		a := add(t, d, box("a", 10, 10, 20, 20), pool)
		b := add(t, d, box("b", 100, 10, 20, 20), pool)
		k := connect(t, d, "k", a, b)
		m, events := newModeling(d)

		failed := false
		events.Subscribe(event.TypeCommandFailed, func(event.Event) bool {
			failed = true
			return false
		})

		// Removing more space than the pool has shrinks it below zero
		// after b already moved.
		err := m.CreateSpace([]*diagram.Shape{b}, []*diagram.Shape{pool}, geometry.Delta{X: -400}, geometry.East)
		assert.ErrorIs(t, err, ErrInvalidBounds)
		assert.True(t, failed)
		assert.Equal(t, 100.0, b.X)
		assert.Equal(t, 300.0, pool.Width)
		assert.Equal(t, []geometry.Point{pt(20, 20), pt(110, 20)}, k.Waypoints)
		assert.Zero(t, m.Stack().Len())
	})

	t.Run("cyclic parent", func(t *testing.T) {
		d := diagram.New("root")
		container := add(t, d, box("container", 0, 0, 100, 100), nil)
		m, _ := newModeling(d)

		err := m.MoveShape(container, geometry.Delta{}, container, nil)
		assert.ErrorIs(t, err, handler.ErrCyclicParent)
		assert.Same(t, d.Root(), d.Parent(container))
	})
}

func TestLayoutConnection(t *testing.T) {
	d := diagram.New("root")
	a := add(t, d, box("a", 0, 0, 20, 20), nil)
	b := add(t, d, box("b", 100, 0, 20, 20), nil)
	conn := connect(t, d, "conn", a, b)
	cl := add(t, d, label("cl", "conn", 50, 15), nil)
	m, _ := newModeling(d)

	end := pt(110, 50)
	require.NoError(t, m.LayoutConnection(conn, layout.Hints{End: &end}))
	assert.Equal(t, []geometry.Point{pt(10, 10), pt(110, 50)}, conn.Waypoints)
	// Midpoint went from (60,10) to (60,30).
	assert.Equal(t, pt(50, 35), pt(cl.X, cl.Y))

	_, err := m.Stack().Undo()
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{pt(10, 10), pt(110, 10)}, conn.Waypoints)
	assert.Equal(t, pt(50, 15), pt(cl.X, cl.Y))

	_, err = m.Stack().Redo()
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{pt(10, 10), pt(110, 50)}, conn.Waypoints)
	assert.Equal(t, pt(50, 35), pt(cl.X, cl.Y))
}

func TestMoveConnectionReparent(t *testing.T) {
	d := diagram.New("root")
	a := add(t, d, box("a", 0, 0, 20, 20), nil)
	b := add(t, d, box("b", 100, 0, 20, 20), nil)
	conn := connect(t, d, "conn", a, b)
	add(t, d, box("tail", 0, 0, 1, 1), nil)
	pool := add(t, d, box("pool", 0, 0, 300, 300), nil)
	m, _ := newModeling(d)

	require.NoError(t, m.MoveConnection(conn, geometry.Delta{X: 1}, pool, nil))
	assert.Same(t, pool, d.Parent(conn))
	assert.Equal(t, []diagram.ID{"a", "b", "tail", "pool"}, d.Root().ChildIDs())

	_, err := m.Stack().Undo()
	require.NoError(t, err)
	assert.Same(t, d.Root(), d.Parent(conn))
	assert.Equal(t, []diagram.ID{"a", "b", "conn", "tail", "pool"}, d.Root().ChildIDs())
	assert.Equal(t, []geometry.Point{pt(10, 10), pt(110, 10)}, conn.Waypoints)

	assert.ErrorIs(t, m.MoveConnection(nil, geometry.Delta{}, nil, nil), ErrNoConnection)
}

func TestCreateSpace(t *testing.T) {
	d := diagram.New("root")
	pool := add(t, d, box("pool", 0, 0, 300, 100), nil)
	a := add(t, d, box("a", 10, 10, 20, 20), pool)
	b := add(t, d, box("b", 100, 10, 20, 20), pool)
	k := connect(t, d, "k", a, b)
	kl := add(t, d, label("kl", "k", 60, 30), pool)
	m, events := newModeling(d)

	var stackChanges []event.StackChangedData
	events.Subscribe(event.TypeCommandStackChanged, func(e event.Event) bool {
		stackChanges = append(stackChanges, e.Data.(event.StackChangedData))
		return false
	})

	err := m.CreateSpace([]*diagram.Shape{b, kl}, []*diagram.Shape{pool}, geometry.Delta{X: 50}, geometry.East)
	require.NoError(t, err)

	assert.Equal(t, geometry.Bounds{X: 0, Y: 0, Width: 350, Height: 100}, pool.Bounds)
	assert.Equal(t, 150.0, b.X)
	assert.Equal(t, 10.0, a.X)
	assert.Equal(t, []geometry.Point{pt(20, 20), pt(160, 20)}, k.Waypoints)
	// The label follows the re-laid-out connection, not the gesture.
	assert.Equal(t, 85.0, kl.X)
	assert.Equal(t, 1, m.Stack().Len())
	require.Len(t, stackChanges, 1)
	assert.Equal(t, event.StackChangedData{CanUndo: true, CanRedo: false}, stackChanges[0])

	_, err = m.Stack().Undo()
	require.NoError(t, err)
	assert.Equal(t, geometry.Bounds{X: 0, Y: 0, Width: 300, Height: 100}, pool.Bounds)
	assert.Equal(t, 100.0, b.X)
	assert.Equal(t, []geometry.Point{pt(20, 20), pt(110, 20)}, k.Waypoints)
	assert.Equal(t, 60.0, kl.X)

	_, err = m.Stack().Redo()
	require.NoError(t, err)
	assert.Equal(t, 350.0, pool.Width)
	assert.Equal(t, 150.0, b.X)
	assert.Equal(t, 85.0, kl.X)

	t.Run("invalid direction leaves nothing behind", func(t *testing.T) {
		err := m.CreateSpace([]*diagram.Shape{a}, nil, geometry.Delta{X: 1}, geometry.Direction("up"))
		assert.ErrorIs(t, err, geometry.ErrInvalidDirection)
		assert.Equal(t, 10.0, a.X)
	})
}
