package arc

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/go-faster/errors"

	"github.com/go-faster/arc/col"
)

// Series pairs a logical field with the physical column backing it.
//
// The physical column is owned exclusively; its name always matches the
// field's, and its representation is the field type's physical counterpart.
type Series struct {
	field col.Field
	data  col.Array
}

// NewSeries wraps a physical column into a series with the given field.
func NewSeries(field col.Field, data col.Array) (*Series, error) {
	if data.Name() != field.Name {
		return nil, errors.Errorf("column %q does not match field %q", data.Name(), field.Name)
	}
	if got, want := data.DataType().Physical(), field.Type.Physical(); !got.Equal(want) {
		return nil, errors.Errorf("field %q: column representation %s does not match %s", field, got, want)
	}
	return &Series{field: field, data: data}, nil
}

// FromArrow converts an arrow array into a series with the given field.
//
// Conversion is physical-first: the arrow layout is always interpreted
// against the field type's physical counterpart, and logical meaning is
// attached only by wrapping the result. Arrow bytes are never read against
// logical semantics directly.
func FromArrow(f col.Field, a arrow.Array) (*Series, error) {
	data, err := col.FromArrow(f.Physical(), a)
	if err != nil {
		return nil, errors.Wrap(err, "physical")
	}
	return &Series{field: f, data: data}, nil
}

// Field returns the logical field.
func (s *Series) Field() col.Field { return s.field }

// Name returns the column label.
func (s *Series) Name() string { return s.field.Name }

// DataType returns the logical data type.
func (s *Series) DataType() col.DataType { return s.field.Type }

// Data returns the physical column. Callers must treat it as read-only.
func (s *Series) Data() col.Array { return s.data }

// Len returns count of rows.
func (s *Series) Len() int { return s.data.Len() }

// Valid reports whether i-th row is valid.
func (s *Series) Valid(i int) bool { return s.data.Valid(i) }

// Nulls returns count of null rows.
func (s *Series) Nulls() int { return s.data.Nulls() }
