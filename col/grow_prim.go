package col

import (
	"fmt"

	"github.com/go-faster/errors"
)

func sourceAt[S any](sources []S, src int) S {
	if src < 0 || src >= len(sources) {
		panic(fmt.Sprintf("col: source index %d out of range of %d sources", src, len(sources)))
	}
	return sources[src]
}

func appendRepeat(valid []bool, n int, v bool) []bool {
	for i := 0; i < n; i++ {
		valid = append(valid, v)
	}
	return valid
}

// growPrim builds a primitive column by bulk-copying value ranges.
type growPrim[T Prim] struct {
	field    Field
	sources  []*ColPrim[T]
	values   []T
	valid    []bool
	hasNulls bool
}

func newGrowPrim[T Prim](field Field, sources []Array, capacity int) (*growPrim[T], error) {
	arrs := make([]*ColPrim[T], len(sources))
	for i, s := range sources {
		a, ok := s.(*ColPrim[T])
		if !ok {
			return nil, errors.Errorf("source %d: %T is not a %s buffer", i, s, primKind[T]())
		}
		arrs[i] = a
	}
	return &growPrim[T]{
		field:   field,
		sources: arrs,
		values:  make([]T, 0, capacity),
		valid:   make([]bool, 0, capacity),
	}, nil
}

func (g *growPrim[T]) Extend(src, start, n int) {
	a := sourceAt(g.sources, src)
	checkSlice(a.Len(), start, n)
	g.values = append(g.values, a.values[start:start+n]...)
	if a.validity == nil {
		g.valid = appendRepeat(g.valid, n, true)
		return
	}
	for i := start; i < start+n; i++ {
		v := a.validity.Get(i)
		if !v {
			g.hasNulls = true
		}
		g.valid = append(g.valid, v)
	}
}

func (g *growPrim[T]) AddNulls(n int) {
	var zero T
	for i := 0; i < n; i++ {
		g.values = append(g.values, zero)
	}
	g.valid = appendRepeat(g.valid, n, false)
	if n > 0 {
		g.hasNulls = true
	}
}

func (g *growPrim[T]) Build() (Array, error) {
	var validity *Bitmap
	if g.hasNulls {
		validity = BitmapFromBools(g.valid)
	}
	values := g.values
	g.values, g.valid, g.hasNulls = nil, nil, false
	return NewPrim[T](g.field, values, validity)
}
