package col

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/arc/obj"
)

// ColObj is foreign-object column: each row is a handle into the host
// runtime. There is no validity bitmap; a null row holds the sentinel
// handle itself.
type ColObj struct {
	field  Field
	values []obj.Ref
}

// Compile-time assertions for ColObj.
var _ Array = (*ColObj)(nil)

// NewObj returns object column taking ownership of the given handles.
//
// The column holds the references it is given; Release drops them.
func NewObj(field Field, values []obj.Ref) (*ColObj, error) {
	if field.Type.Kind != KindObject {
		return nil, errors.Errorf("field %q: not an object field", field)
	}
	return &ColObj{field: field, values: values}, nil
}

func (c *ColObj) Field() Field       { return c.field }
func (c *ColObj) Name() string       { return c.field.Name }
func (c *ColObj) DataType() DataType { return c.field.Type }

// Len returns count of rows in column.
func (c *ColObj) Len() int { return len(c.values) }

// Valid reports whether i-th row is valid, i.e. not the sentinel.
func (c *ColObj) Valid(i int) bool { return !obj.IsNone(c.values[i]) }

// Nulls returns count of sentinel rows.
func (c *ColObj) Nulls() int {
	var n int
	for _, r := range c.values {
		if obj.IsNone(r) {
			n++
		}
	}
	return n
}

// Row returns handle of row i without transferring ownership.
func (c *ColObj) Row(i int) obj.Ref { return c.values[i] }

// Value resolves row i to its host-runtime value, nil for null rows.
func (c *ColObj) Value(i int) any { return obj.Value(c.values[i]) }

// Release drops the column's references. The column must not be used
// afterwards.
func (c *ColObj) Release() {
	for _, r := range c.values {
		obj.Release(r)
	}
	c.values = nil
}
