package col

import (
	"github.com/apache/arrow/go/v17/arrow/bitutil"
)

// Bitmap is a validity mask over column values.
//
// Nil *Bitmap means every value is valid; columns only carry a bitmap when
// at least one value is null.
type Bitmap struct {
	bits []byte
	n    int
	set  int
}

// BitmapFromBools packs valid flags into a bitmap.
func BitmapFromBools(valid []bool) *Bitmap {
	b := &Bitmap{
		bits: make([]byte, bitutil.BytesForBits(int64(len(valid)))),
		n:    len(valid),
	}
	for i, v := range valid {
		if v {
			bitutil.SetBit(b.bits, i)
			b.set++
		}
	}
	return b
}

// Len returns count of flags in bitmap.
func (b *Bitmap) Len() int {
	if b == nil {
		return 0
	}
	return b.n
}

// Get reports whether i-th value is valid. Nil bitmap is all-valid.
func (b *Bitmap) Get(i int) bool {
	if b == nil {
		return true
	}
	return bitutil.BitIsSet(b.bits, i)
}

// Unset returns count of null (cleared) flags.
func (b *Bitmap) Unset() int {
	if b == nil {
		return 0
	}
	return b.n - b.set
}
