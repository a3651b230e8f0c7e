package col

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/arc/obj"
)

func TestGrowableObj(t *testing.T) {
	var (
		x = obj.Register("x")
		y = obj.Register("y")
	)
	f := Field{Name: "a", Type: Object}
	a, err := NewObj(f, []obj.Ref{x, obj.None(), y})
	require.NoError(t, err)

	t.Run("RefCounts", func(t *testing.T) {
		require.Equal(t, 1, obj.RefCount(x))

		g, err := NewGrowable("out", Object, []Array{a}, 3)
		require.NoError(t, err)
		g.Extend(0, 0, 3)

		// One new reference per copied non-null element.
		require.Equal(t, 2, obj.RefCount(x))
		require.Equal(t, 2, obj.RefCount(y))

		out, err := g.Build()
		require.NoError(t, err)
		res := out.(*ColObj)
		require.Equal(t, 3, res.Len())
		require.Equal(t, "x", res.Value(0))
		require.Nil(t, res.Value(1))
		require.False(t, res.Valid(1))

		// Copied rows share object identity with the source.
		require.Equal(t, a.Row(0), res.Row(0))

		res.Release()
		require.Equal(t, 1, obj.RefCount(x))
		require.Equal(t, 1, obj.RefCount(y))
	})
	t.Run("NullsAreSentinel", func(t *testing.T) {
		g, err := NewGrowable("out", Object, []Array{a}, 0)
		require.NoError(t, err)
		g.AddNulls(2)

		out, err := g.Build()
		require.NoError(t, err)
		res := out.(*ColObj)
		require.Equal(t, 2, res.Len())
		require.Equal(t, 2, res.Nulls())
		require.True(t, obj.IsNone(res.Row(0)))
		require.True(t, obj.IsNone(res.Row(1)))
	})
	t.Run("EmptyBuild", func(t *testing.T) {
		g, err := NewGrowable("out", Object, []Array{a}, 0)
		require.NoError(t, err)

		out, err := g.Build()
		require.NoError(t, err)
		require.Equal(t, 0, out.Len())
		require.Equal(t, Object, out.DataType())
	})
	t.Run("Preconditions", func(t *testing.T) {
		g, err := NewGrowable("out", Object, []Array{a}, 0)
		require.NoError(t, err)

		require.Panics(t, func() { g.Extend(1, 0, 1) })
		require.Panics(t, func() { g.Extend(0, 1, 3) })
	})
}
