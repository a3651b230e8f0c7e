package col

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/require"
)

func TestFromArrow(t *testing.T) {
	mem := memory.NewGoAllocator()

	t.Run("Int64", func(t *testing.T) {
		b := array.NewInt64Builder(mem)
		defer b.Release()
		b.AppendValues([]int64{1, 2, 3}, []bool{true, false, true})
		a := b.NewInt64Array()
		defer a.Release()

		out, err := FromArrow(Field{Name: "v", Type: Int64}, a)
		require.NoError(t, err)
		res := out.(*ColPrim[int64])
		require.Equal(t, "v", res.Name())
		require.Equal(t, 3, res.Len())
		require.Equal(t, int64(1), res.Row(0))
		require.False(t, res.Valid(1))
		require.Equal(t, int64(3), res.Row(2))
		require.Equal(t, 1, res.Nulls())
	})
	t.Run("Bool", func(t *testing.T) {
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		b.AppendValues([]bool{true, false}, nil)
		a := b.NewBooleanArray()
		defer a.Release()

		out, err := FromArrow(Field{Name: "v", Type: Bool}, a)
		require.NoError(t, err)
		res := out.(*ColPrim[bool])
		require.Equal(t, []bool{true, false}, res.Values())
		require.Equal(t, 0, res.Nulls())
	})
	t.Run("String", func(t *testing.T) {
		b := array.NewStringBuilder(mem)
		defer b.Release()
		b.Append("foo")
		b.AppendNull()
		b.Append("barbaz")
		a := b.NewStringArray()
		defer a.Release()

		out, err := FromArrow(Field{Name: "v", Type: String}, a)
		require.NoError(t, err)
		res := out.(*ColBytes)
		require.Equal(t, 3, res.Len())
		require.Equal(t, "foo", res.RowString(0))
		require.False(t, res.Valid(1))
		require.Equal(t, "barbaz", res.RowString(2))
	})
	t.Run("Binary", func(t *testing.T) {
		b := array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)
		defer b.Release()
		b.Append([]byte{0xde, 0xad})
		b.Append(nil)
		a := b.NewBinaryArray()
		defer a.Release()

		out, err := FromArrow(Field{Name: "v", Type: Binary}, a)
		require.NoError(t, err)
		res := out.(*ColBytes)
		require.Equal(t, 2, res.Len())
		require.Equal(t, []byte{0xde, 0xad}, res.Row(0))
	})
	t.Run("List", func(t *testing.T) {
		b := array.NewListBuilder(mem, arrow.PrimitiveTypes.Int64)
		defer b.Release()
		vb := b.ValueBuilder().(*array.Int64Builder)
		b.Append(true)
		vb.AppendValues([]int64{1, 2}, nil)
		b.AppendNull()
		b.Append(true)
		vb.Append(3)
		a := b.NewListArray()
		defer a.Release()

		out, err := FromArrow(Field{Name: "v", Type: List(Int64)}, a)
		require.NoError(t, err)
		res := out.(*ColList)
		require.Equal(t, 3, res.Len())
		require.Equal(t, 2, res.RowLen(0))
		require.False(t, res.Valid(1))
		require.Equal(t, 0, res.RowLen(1))
		require.Equal(t, 1, res.RowLen(2))
		require.Equal(t, []int64{1, 2, 3}, res.Child().(*ColPrim[int64]).Values())
	})
	t.Run("ZeroLength", func(t *testing.T) {
		b := array.NewInt32Builder(mem)
		defer b.Release()
		a := b.NewInt32Array()
		defer a.Release()

		out, err := FromArrow(Field{Name: "v", Type: Int32}, a)
		require.NoError(t, err)
		require.Equal(t, 0, out.Len())
		require.Equal(t, Int32, out.DataType())
	})
	t.Run("Date32", func(t *testing.T) {
		b := array.NewDate32Builder(mem)
		defer b.Release()
		b.Append(18993)
		a := b.NewDate32Array()
		defer a.Release()

		// Physical conversion of a date array lands in int32 storage.
		out, err := FromArrow(Field{Name: "v", Type: Int32}, a)
		require.NoError(t, err)
		require.Equal(t, []int32{18993}, out.(*ColPrim[int32]).Values())
	})
	t.Run("Mismatch", func(t *testing.T) {
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		b.Append(1.5)
		a := b.NewFloat64Array()
		defer a.Release()

		_, err := FromArrow(Field{Name: "v", Type: Int64}, a)
		var me *MismatchError
		require.ErrorAs(t, err, &me)
		require.Equal(t, "v", me.Field.Name)
	})
	t.Run("LogicalRejected", func(t *testing.T) {
		b := array.NewInt32Builder(mem)
		defer b.Release()
		b.Append(1)
		a := b.NewInt32Array()
		defer a.Release()

		_, err := FromArrow(Field{Name: "v", Type: Date}, a)
		require.Error(t, err)
	})
	t.Run("DeclaredNameWins", func(t *testing.T) {
		b := array.NewInt64Builder(mem)
		defer b.Release()
		b.Append(7)
		a := b.NewInt64Array()
		defer a.Release()

		out, err := FromArrow(Field{Name: "renamed", Type: Int64}, a)
		require.NoError(t, err)
		require.Equal(t, "renamed", out.Name())
	})
}
