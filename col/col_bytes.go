package col

import "github.com/go-faster/errors"

// ColBytes is variable-length byte column, backing both Binary and String
// fields.
//
// Offsets has one entry per row plus one; row i spans
// Buf[Offsets[i]:Offsets[i+1]].
type ColBytes struct {
	field    Field
	buf      []byte
	offsets  []int64
	validity *Bitmap
}

// Compile-time assertions for ColBytes.
var _ Array = (*ColBytes)(nil)

func checkOffsets(offsets []int64, size int) error {
	if len(offsets) == 0 {
		return errors.New("offsets must have at least one entry")
	}
	if offsets[0] != 0 {
		return errors.Errorf("offsets must start at 0, got %d", offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return errors.Errorf("offset %d decreases: %d < %d", i, offsets[i], offsets[i-1])
		}
	}
	if last := offsets[len(offsets)-1]; last != int64(size) {
		return errors.Errorf("last offset %d does not match data size %d", last, size)
	}
	return nil
}

// BytesFromParts assembles a byte column from a raw buffer, row offsets and
// optional per-row valid flags.
//
// This is the entry point for connectors that gather payloads out of band:
// they concatenate payload bytes, record offsets and validity per input
// position and hand all three over here.
func BytesFromParts(field Field, buf []byte, offsets []int64, valid []bool) (*ColBytes, error) {
	var validity *Bitmap
	if valid != nil {
		validity = BitmapFromBools(valid)
	}
	return newBytes(field, buf, offsets, validity)
}

func newBytes(field Field, buf []byte, offsets []int64, validity *Bitmap) (*ColBytes, error) {
	switch k := field.Type.Physical().Kind; k {
	case KindBinary, KindString:
	default:
		return nil, errors.Errorf("field %q: %s is not a byte layout", field, k)
	}
	if err := checkOffsets(offsets, len(buf)); err != nil {
		return nil, errors.Wrapf(err, "field %q", field)
	}
	if err := checkValidity(len(offsets)-1, validity); err != nil {
		return nil, errors.Wrapf(err, "field %q", field)
	}
	return &ColBytes{field: field, buf: buf, offsets: offsets, validity: validity}, nil
}

func (c *ColBytes) Field() Field       { return c.field }
func (c *ColBytes) Name() string       { return c.field.Name }
func (c *ColBytes) DataType() DataType { return c.field.Type }

// Len returns count of rows in column.
func (c *ColBytes) Len() int { return len(c.offsets) - 1 }

// Valid reports whether i-th row is valid.
func (c *ColBytes) Valid(i int) bool { return c.validity.Get(i) }

// Nulls returns count of null rows.
func (c *ColBytes) Nulls() int { return c.validity.Unset() }

// Row returns row with number i. Null rows read as empty.
func (c *ColBytes) Row(i int) []byte {
	return c.buf[c.offsets[i]:c.offsets[i+1]]
}

// RowString returns row with number i as string.
func (c *ColBytes) RowString(i int) string { return string(c.Row(i)) }

// First returns first row of column.
func (c *ColBytes) First() []byte { return c.Row(0) }

// ForEachBytes calls f on each row as byte slice.
func (c *ColBytes) ForEachBytes(f func(i int, b []byte) error) error {
	for i := 0; i < c.Len(); i++ {
		if err := f(i, c.Row(i)); err != nil {
			return err
		}
	}
	return nil
}
