package col

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Array is an immutable typed column.
//
// Length is fixed at construction. Valid reports per-value validity;
// implementations without a bitmap are all-valid except ColObj, whose nulls
// are sentinel values.
type Array interface {
	Field() Field
	Name() string
	DataType() DataType
	Len() int
	Valid(i int) bool
	Nulls() int
}

// MismatchError reports that an external array's layout is incompatible
// with the declared field.
type MismatchError struct {
	Field Field
	Got   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("layout %q is incompatible with field %q", e.Got, e.Field)
}

func checkValidity(n int, validity *Bitmap) error {
	if validity != nil && validity.Len() != n {
		return errors.Errorf("validity length %d does not match %d values", validity.Len(), n)
	}
	return nil
}
