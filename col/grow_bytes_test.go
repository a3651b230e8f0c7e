package col

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBytes(t *testing.T, name string, dtype DataType, rows []string, valid []bool) *ColBytes {
	t.Helper()
	var (
		buf     []byte
		offsets = []int64{0}
	)
	for i, r := range rows {
		if valid == nil || valid[i] {
			buf = append(buf, r...)
		}
		offsets = append(offsets, int64(len(buf)))
	}
	c, err := BytesFromParts(Field{Name: name, Type: dtype}, buf, offsets, valid)
	require.NoError(t, err)
	return c
}

func TestGrowableBytes(t *testing.T) {
	a := mustBytes(t, "a", String, []string{"foo", "barbaz", ""}, nil)
	b := mustBytes(t, "b", String, []string{"qux", ""}, []bool{true, false})

	t.Run("Take", func(t *testing.T) {
		g, err := NewGrowable("out", String, []Array{a, b}, 4)
		require.NoError(t, err)

		g.Extend(0, 1, 2)
		g.Extend(1, 0, 2)
		g.AddNulls(1)

		out, err := g.Build()
		require.NoError(t, err)
		res := out.(*ColBytes)
		require.Equal(t, 5, res.Len())
		require.Equal(t, "barbaz", res.RowString(0))
		require.Equal(t, "", res.RowString(1))
		require.Equal(t, "qux", res.RowString(2))
		for i, v := range []bool{true, true, true, false, false} {
			require.Equal(t, v, res.Valid(i), "[%d]", i)
		}
		require.Equal(t, 2, res.Nulls())
	})
	t.Run("RepeatedRanges", func(t *testing.T) {
		g, err := NewGrowable("out", String, []Array{a}, 0)
		require.NoError(t, err)

		g.Extend(0, 0, 1)
		g.Extend(0, 0, 1)
		g.Extend(0, 0, 3)

		out, err := g.Build()
		require.NoError(t, err)
		res := out.(*ColBytes)
		require.Equal(t, 5, res.Len())
		require.Equal(t, "foo", res.RowString(0))
		require.Equal(t, "foo", res.RowString(1))
		require.Equal(t, "foo", res.RowString(2))
		require.Equal(t, "barbaz", res.RowString(3))
		require.Equal(t, "", res.RowString(4))
	})
	t.Run("EmptyBuild", func(t *testing.T) {
		g, err := NewGrowable("out", Binary, []Array{}, 0)
		require.NoError(t, err)

		out, err := g.Build()
		require.NoError(t, err)
		require.Equal(t, 0, out.Len())
		require.Equal(t, Binary, out.DataType())
	})
	t.Run("Preconditions", func(t *testing.T) {
		g, err := NewGrowable("out", String, []Array{a}, 0)
		require.NoError(t, err)

		require.Panics(t, func() { g.Extend(1, 0, 1) })
		require.Panics(t, func() { g.Extend(0, 3, 1) })
	})
}

func TestBytesFromParts(t *testing.T) {
	f := Field{Name: "v", Type: Binary}
	t.Run("Ok", func(t *testing.T) {
		c, err := BytesFromParts(f, []byte("abcde"), []int64{0, 2, 2, 5}, []bool{true, false, true})
		require.NoError(t, err)
		require.Equal(t, 3, c.Len())
		require.Equal(t, []byte("ab"), c.Row(0))
		require.False(t, c.Valid(1))
		require.Equal(t, []byte("cde"), c.Row(2))
	})
	t.Run("ZeroRows", func(t *testing.T) {
		c, err := BytesFromParts(f, nil, []int64{0}, nil)
		require.NoError(t, err)
		require.Equal(t, 0, c.Len())
	})
	t.Run("NoOffsets", func(t *testing.T) {
		_, err := BytesFromParts(f, nil, nil, nil)
		require.Error(t, err)
	})
	t.Run("DecreasingOffsets", func(t *testing.T) {
		_, err := BytesFromParts(f, []byte("ab"), []int64{0, 2, 1}, nil)
		require.Error(t, err)
	})
	t.Run("LastOffsetMismatch", func(t *testing.T) {
		_, err := BytesFromParts(f, []byte("ab"), []int64{0, 1}, nil)
		require.Error(t, err)
	})
	t.Run("ValidityLengthMismatch", func(t *testing.T) {
		_, err := BytesFromParts(f, []byte("ab"), []int64{0, 2}, []bool{true, false})
		require.Error(t, err)
	})
	t.Run("NotByteField", func(t *testing.T) {
		_, err := BytesFromParts(Field{Name: "v", Type: Int64}, nil, []int64{0}, nil)
		require.Error(t, err)
	})
}
