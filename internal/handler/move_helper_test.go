package handler

import (
	"testing"

	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRecursive(t *testing.T) {
	// root -> a -> (a1 -> a11, a2); root -> b
	d := diagram.New("root")
	a := add(t, d, box("a", 0, 0, 100, 100), nil)
	a1 := add(t, d, box("a1", 10, 10, 40, 40), a)
	add(t, d, box("a11", 15, 15, 10, 10), a1)
	add(t, d, box("a2", 60, 10, 20, 20), a)
	b := add(t, d, box("b", 200, 0, 50, 50), nil)

	t.Run("pre-order, each shape once", func(t *testing.T) {
		rec := &recorder{}
		mh := NewMoveHelper(d, rec)

		require.NoError(t, mh.MoveRecursive([]*diagram.Shape{a, b}, geometry.Delta{X: 3}))

		assert.Equal(t, []string{"moveShape a", "moveShape a1", "moveShape a11", "moveShape a2", "moveShape b"}, rec.ops())
		for _, c := range rec.calls {
			assert.Nil(t, c.newParent)
			require.NotNil(t, c.hints)
			assert.Equal(t, Hints{Layout: LayoutNone}, *c.hints)
		}
	})

	t.Run("zero delta does nothing", func(t *testing.T) {
		rec := &recorder{}
		require.NoError(t, NewMoveHelper(d, rec).MoveRecursive([]*diagram.Shape{a}, geometry.Delta{}))
		assert.Empty(t, rec.calls)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		rec := &recorder{err: assert.AnError}
		err := NewMoveHelper(d, rec).MoveRecursive([]*diagram.Shape{a, b}, geometry.Delta{Y: 1})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Len(t, rec.calls, 1)
	})
}

func TestHints(t *testing.T) {
	c1 := &diagram.Connection{ID: "c1"}
	c2 := &diagram.Connection{ID: "c2"}

	t.Run("nil resolves to defaults", func(t *testing.T) {
		h := ResolveHints(nil)
		assert.Equal(t, DefaultHints(), h)
		assert.True(t, h.Recurse)
		assert.True(t, h.AutoResize)
		assert.True(t, h.MoveElementsBehavior)
		assert.True(t, h.LaysOut(c1))
	})

	t.Run("layout modes", func(t *testing.T) {
		assert.False(t, Hints{Layout: LayoutNone}.LaysOut(c1))
		only := Hints{Layout: LayoutOnly, LayoutConnections: []*diagram.Connection{c2}}
		assert.False(t, only.LaysOut(c1))
		assert.True(t, only.LaysOut(c2))
		assert.False(t, Hints{Layout: LayoutOnly}.LaysOut(c1))
	})
}
