package col

import "github.com/go-faster/errors"

// Prim is element constraint of primitive-buffer columns.
type Prim interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func primKind[T Prim]() Kind {
	var z T
	switch any(z).(type) {
	case bool:
		return KindBool
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUInt8
	case uint16:
		return KindUInt16
	case uint32:
		return KindUInt32
	case uint64:
		return KindUInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}

// ColPrim is primitive-buffer column of T.
//
// Field type may be logical (e.g. Date over int32 storage); its physical
// counterpart always matches T.
type ColPrim[T Prim] struct {
	field    Field
	values   []T
	validity *Bitmap
}

// Compile-time assertions for ColPrim.
var _ Array = (*ColPrim[int64])(nil)

// NewPrim returns primitive column owning values.
//
// Nil validity means all-valid.
func NewPrim[T Prim](field Field, values []T, validity *Bitmap) (*ColPrim[T], error) {
	if k, want := field.Type.Physical().Kind, primKind[T](); k != want {
		return nil, errors.Errorf("field %q: physical kind %s does not match buffer of %s", field, k, want)
	}
	if err := checkValidity(len(values), validity); err != nil {
		return nil, errors.Wrapf(err, "field %q", field)
	}
	return &ColPrim[T]{field: field, values: values, validity: validity}, nil
}

func (c *ColPrim[T]) Field() Field       { return c.field }
func (c *ColPrim[T]) Name() string       { return c.field.Name }
func (c *ColPrim[T]) DataType() DataType { return c.field.Type }

// Len returns count of rows in column.
func (c *ColPrim[T]) Len() int { return len(c.values) }

// Valid reports whether i-th row is valid.
func (c *ColPrim[T]) Valid(i int) bool { return c.validity.Get(i) }

// Nulls returns count of null rows.
func (c *ColPrim[T]) Nulls() int { return c.validity.Unset() }

// Row returns row with number i. Null rows read as zero value.
func (c *ColPrim[T]) Row(i int) T { return c.values[i] }

// First returns first row of column.
func (c *ColPrim[T]) First() T { return c.Row(0) }

// Values exposes the backing buffer. Callers must not mutate it.
func (c *ColPrim[T]) Values() []T { return c.values }
