package col

import "github.com/go-faster/errors"

// ColList is nested list column: row offsets over a child column holding
// the flattened elements.
type ColList struct {
	field    Field
	offsets  []int64
	child    Array
	validity *Bitmap
}

// Compile-time assertions for ColList.
var _ Array = (*ColList)(nil)

// NewList returns list column over child.
//
// Offsets follow the ColBytes convention: one entry per row plus one, first
// 0, last equal to child length.
func NewList(field Field, offsets []int64, child Array, validity *Bitmap) (*ColList, error) {
	if field.Type.Physical().Kind != KindList {
		return nil, errors.Errorf("field %q: not a list", field)
	}
	if err := checkOffsets(offsets, child.Len()); err != nil {
		return nil, errors.Wrapf(err, "field %q", field)
	}
	if elem := field.Type.Elem.Physical(); !child.DataType().Physical().Equal(elem) {
		return nil, errors.Errorf("field %q: child %s does not match element type %s",
			field, child.DataType(), elem)
	}
	if err := checkValidity(len(offsets)-1, validity); err != nil {
		return nil, errors.Wrapf(err, "field %q", field)
	}
	return &ColList{field: field, offsets: offsets, child: child, validity: validity}, nil
}

func (c *ColList) Field() Field       { return c.field }
func (c *ColList) Name() string       { return c.field.Name }
func (c *ColList) DataType() DataType { return c.field.Type }

// Len returns count of rows in column.
func (c *ColList) Len() int { return len(c.offsets) - 1 }

// Valid reports whether i-th row is valid.
func (c *ColList) Valid(i int) bool { return c.validity.Get(i) }

// Nulls returns count of null rows.
func (c *ColList) Nulls() int { return c.validity.Unset() }

// Child returns the flattened element column.
func (c *ColList) Child() Array { return c.child }

// RowRange returns [start, end) of i-th row within Child.
func (c *ColList) RowRange(i int) (start, end int) {
	return int(c.offsets[i]), int(c.offsets[i+1])
}

// RowLen returns element count of i-th row.
func (c *ColList) RowLen(i int) int {
	s, e := c.RowRange(i)
	return e - s
}
