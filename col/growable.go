package col

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Growable assembles a new column from slices of existing columns of one
// physical representation.
//
// A growable borrows its sources read-only and must not outlive them. It is
// driven by a single goroutine; independent growables never share state.
// The object representation additionally serializes every element on the
// obj exclusivity lock.
type Growable interface {
	// Extend appends n rows of source src starting at row start,
	// preserving each row's validity. Out-of-range src, start or n is a
	// bug in the caller's slice computation and panics.
	Extend(src, start, n int)
	// AddNulls appends n null rows, independent of any source.
	AddNulls(n int)
	// Build finalizes accumulated rows into a new column owning its
	// storage, bearing the growable's declared name and type. On error the
	// growable must be discarded; on success it is empty and reusable.
	Build() (Array, error)
}

// NewGrowable returns growable producing a column of the given type from
// sources sharing that type's physical representation.
//
// Capacity is a row-count pre-allocation hint; correctness does not depend
// on it.
func NewGrowable(name string, dtype DataType, sources []Array, capacity int) (Growable, error) {
	field := Field{Name: name, Type: dtype}
	phys := dtype.Physical()
	for i, s := range sources {
		if got := s.DataType().Physical(); !got.Equal(phys) {
			return nil, errors.Errorf("source %d: representation %s does not match %s", i, got, phys)
		}
	}
	switch phys.Kind {
	case KindBool:
		return newGrowPrim[bool](field, sources, capacity)
	case KindInt8:
		return newGrowPrim[int8](field, sources, capacity)
	case KindInt16:
		return newGrowPrim[int16](field, sources, capacity)
	case KindInt32:
		return newGrowPrim[int32](field, sources, capacity)
	case KindInt64:
		return newGrowPrim[int64](field, sources, capacity)
	case KindUInt8:
		return newGrowPrim[uint8](field, sources, capacity)
	case KindUInt16:
		return newGrowPrim[uint16](field, sources, capacity)
	case KindUInt32:
		return newGrowPrim[uint32](field, sources, capacity)
	case KindUInt64:
		return newGrowPrim[uint64](field, sources, capacity)
	case KindFloat32:
		return newGrowPrim[float32](field, sources, capacity)
	case KindFloat64:
		return newGrowPrim[float64](field, sources, capacity)
	case KindBinary, KindString:
		return newGrowBytes(field, sources, capacity)
	case KindList:
		return newGrowList(field, sources, capacity)
	case KindObject:
		return newGrowObj(field, sources, capacity)
	default:
		return nil, errors.Errorf("no growable for %s", dtype)
	}
}

func checkSlice(srcLen, start, n int) {
	if start < 0 || n < 0 || start+n > srcLen {
		panic(fmt.Sprintf("col: slice [%d:%d] out of range of source with %d rows", start, start+n, srcLen))
	}
}
