package col

import "github.com/go-faster/errors"

// growBytes builds a byte column: one bulk copy of the byte range per
// Extend, offsets rebased against the accumulated buffer.
type growBytes struct {
	field    Field
	sources  []*ColBytes
	buf      []byte
	offsets  []int64
	valid    []bool
	hasNulls bool
}

func newGrowBytes(field Field, sources []Array, capacity int) (*growBytes, error) {
	arrs := make([]*ColBytes, len(sources))
	for i, s := range sources {
		a, ok := s.(*ColBytes)
		if !ok {
			return nil, errors.Errorf("source %d: %T is not a byte buffer", i, s)
		}
		arrs[i] = a
	}
	return &growBytes{
		field:   field,
		sources: arrs,
		offsets: append(make([]int64, 0, capacity+1), 0),
		valid:   make([]bool, 0, capacity),
	}, nil
}

func (g *growBytes) Extend(src, start, n int) {
	a := sourceAt(g.sources, src)
	checkSlice(a.Len(), start, n)

	lo, hi := a.offsets[start], a.offsets[start+n]
	delta := int64(len(g.buf)) - lo
	g.buf = append(g.buf, a.buf[lo:hi]...)
	for i := start + 1; i <= start+n; i++ {
		g.offsets = append(g.offsets, a.offsets[i]+delta)
	}

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

func (g *growBytes) AddNulls(n int) {
	last := g.offsets[len(g.offsets)-1]
	for i := 0; i < n; i++ {
		g.offsets = append(g.offsets, last)
	}
	g.valid = appendRepeat(g.valid, n, false)
	if n > 0 {
		g.hasNulls = true
	}
}

func (g *growBytes) Build() (Array, error) {
	var validity *Bitmap
	if g.hasNulls {
		validity = BitmapFromBools(g.valid)
	}
	buf, offsets := g.buf, g.offsets
	g.buf, g.offsets, g.valid, g.hasNulls = nil, append(make([]int64, 0, 1), 0), nil, false
	return newBytes(g.field, buf, offsets, validity)
}
