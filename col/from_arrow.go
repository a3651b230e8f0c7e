package col

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/go-faster/errors"
)

// FromArrow converts an arrow array into the physical column matching f.
//
// The declared field is authoritative: its name wins over any metadata
// embedded in the arrow array, and an arrow layout incompatible with its
// type is a MismatchError. Logical field types are rejected here; they go
// through the physical-first path at the package root.
func FromArrow(f Field, a arrow.Array) (Array, error) {
	if f.Type.IsLogical() {
		return nil, errors.Errorf("field %q: logical type must be converted via its physical counterpart", f)
	}
	switch f.Type.Kind {
	case KindBool:
		return primFrom[bool, *array.Boolean](f, a)
	case KindInt8:
		return primFrom[int8, *array.Int8](f, a)
	case KindInt16:
		return primFrom[int16, *array.Int16](f, a)
	case KindInt32:
		if e, ok := a.(*array.Date32); ok {
			return date32From(f, e)
		}
		return primFrom[int32, *array.Int32](f, a)
	case KindInt64:
		switch e := a.(type) {
		case *array.Timestamp:
			return timestampFrom(f, e)
		case *array.Duration:
			return durationFrom(f, e)
		}
		return primFrom[int64, *array.Int64](f, a)
	case KindUInt8:
		return primFrom[uint8, *array.Uint8](f, a)
	case KindUInt16:
		return primFrom[uint16, *array.Uint16](f, a)
	case KindUInt32:
		return primFrom[uint32, *array.Uint32](f, a)
	case KindUInt64:
		return primFrom[uint64, *array.Uint64](f, a)
	case KindFloat32:
		return primFrom[float32, *array.Float32](f, a)
	case KindFloat64:
		return primFrom[float64, *array.Float64](f, a)
	case KindBinary:
		switch e := a.(type) {
		case *array.Binary:
			return bytesFrom(f, a, e.Value)
		case *array.LargeBinary:
			return bytesFrom(f, a, e.Value)
		}
		return nil, &MismatchError{Field: f, Got: a.DataType().String()}
	case KindString:
		switch e := a.(type) {
		case *array.String:
			return bytesFrom(f, a, func(i int) []byte { return []byte(e.Value(i)) })
		case *array.LargeString:
			return bytesFrom(f, a, func(i int) []byte { return []byte(e.Value(i)) })
		}
		return nil, &MismatchError{Field: f, Got: a.DataType().String()}
	case KindList:
		switch e := a.(type) {
		case *array.List:
			return listFrom(f, e)
		case *array.LargeList:
			return listFrom(f, e)
		}
		return nil, &MismatchError{Field: f, Got: a.DataType().String()}
	case KindObject:
		// Foreign objects never arrive through the arrow boundary.
		return nil, &MismatchError{Field: f, Got: a.DataType().String()}
	default:
		return nil, errors.Errorf("field %q: unsupported kind %s", f, f.Type.Kind)
	}
}

func validityOf(a arrow.Array) *Bitmap {
	if a.NullN() == 0 {
		return nil
	}
	valid := make([]bool, a.Len())
	for i := range valid {
		valid[i] = a.IsValid(i)
	}
	return BitmapFromBools(valid)
}

func primFrom[T Prim, E interface {
	arrow.Array
	Value(int) T
}](f Field, a arrow.Array) (Array, error) {
	e, ok := a.(E)
	if !ok {
		return nil, &MismatchError{Field: f, Got: a.DataType().String()}
	}
	values := make([]T, e.Len())
	for i := range values {
		values[i] = e.Value(i)
	}
	return NewPrim[T](f, values, validityOf(a))
}

func date32From(f Field, e *array.Date32) (Array, error) {
	values := make([]int32, e.Len())
	for i := range values {
		values[i] = int32(e.Value(i))
	}
	return NewPrim[int32](f, values, validityOf(e))
}

func timestampFrom(f Field, e *array.Timestamp) (Array, error) {
	values := make([]int64, e.Len())
	for i := range values {
		values[i] = int64(e.Value(i))
	}
	return NewPrim[int64](f, values, validityOf(e))
}

func durationFrom(f Field, e *array.Duration) (Array, error) {
	values := make([]int64, e.Len())
	for i := range values {
		values[i] = int64(e.Value(i))
	}
	return NewPrim[int64](f, values, validityOf(e))
}

func bytesFrom(f Field, a arrow.Array, row func(int) []byte) (Array, error) {
	var (
		buf     []byte
		offsets = append(make([]int64, 0, a.Len()+1), 0)
	)
	for i := 0; i < a.Len(); i++ {
		if a.IsValid(i) {
			buf = append(buf, row(i)...)
		}
		offsets = append(offsets, int64(len(buf)))
	}
	return newBytes(f, buf, offsets, validityOf(a))
}

type listLike interface {
	arrow.Array
	ListValues() arrow.Array
	ValueOffsets(i int) (start, end int64)
}

func listFrom(f Field, e listLike) (Array, error) {
	childField := Field{Name: "item", Type: f.Type.Elem.Physical()}
	child, err := FromArrow(childField, e.ListValues())
	if err != nil {
		return nil, errors.Wrap(err, "child")
	}

	offsets := append(make([]int64, 0, e.Len()+1), 0)
	var base, last int64
	if e.Len() > 0 {
		base, _ = e.ValueOffsets(0)
		last = base
	}
	for i := 0; i < e.Len(); i++ {
		start, end := e.ValueOffsets(i)
		if start != last {
			return nil, &MismatchError{Field: f, Got: e.DataType().String()}
		}
		offsets = append(offsets, end-base)
		last = end
	}

	// A sliced arrow list views a window of its child; cut the window out
	// so the result owns exactly its elements.
	if base != 0 || int(last) != child.Len() {
		g, err := NewGrowable("item", childField.Type, []Array{child}, int(last-base))
		if err != nil {
			return nil, errors.Wrap(err, "window")
		}
		g.Extend(0, int(base), int(last-base))
		if child, err = g.Build(); err != nil {
			return nil, errors.Wrap(err, "window")
		}
	}

	return NewList(f, offsets, child, validityOf(e))
}
