package col

import "github.com/go-faster/errors"

// growList builds a list column by delegating element ranges to a child
// growable over the sources' flattened children.
type growList struct {
	field    Field
	sources  []*ColList
	child    Growable
	offsets  []int64
	valid    []bool
	hasNulls bool
}

func newGrowList(field Field, sources []Array, capacity int) (*growList, error) {
	arrs := make([]*ColList, len(sources))
	children := make([]Array, len(sources))
	for i, s := range sources {
		a, ok := s.(*ColList)
		if !ok {
			return nil, errors.Errorf("source %d: %T is not a list", i, s)
		}
		arrs[i] = a
		children[i] = a.child
	}
	if field.Type.Elem == nil {
		return nil, errors.Errorf("field %q: list without element type", field)
	}
	child, err := NewGrowable("item", *field.Type.Elem, children, 0)
	if err != nil {
		return nil, errors.Wrap(err, "child")
	}
	return &growList{
		field:   field,
		sources: arrs,
		child:   child,
		offsets: append(make([]int64, 0, capacity+1), 0),
		valid:   make([]bool, 0, capacity),
	}, nil
}

func (g *growList) Extend(src, start, n int) {
	a := sourceAt(g.sources, src)
	checkSlice(a.Len(), start, n)

	lo, hi := a.offsets[start], a.offsets[start+n]
	g.child.Extend(src, int(lo), int(hi-lo))
	delta := g.offsets[len(g.offsets)-1] - lo
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

// AddNulls appends n null rows. Null list rows are empty: offsets repeat,
// nothing reaches the child.
func (g *growList) AddNulls(n int) {
	last := g.offsets[len(g.offsets)-1]
	for i := 0; i < n; i++ {
		g.offsets = append(g.offsets, last)
	}
	g.valid = appendRepeat(g.valid, n, false)
	if n > 0 {
		g.hasNulls = true
	}
}

func (g *growList) Build() (Array, error) {
	child, err := g.child.Build()
	if err != nil {
		return nil, errors.Wrap(err, "child")
	}
	var validity *Bitmap
	if g.hasNulls {
		validity = BitmapFromBools(g.valid)
	}
	offsets := g.offsets
	g.offsets, g.valid, g.hasNulls = append(make([]int64, 0, 1), 0), nil, false
	return NewList(g.field, offsets, child, validity)
}
