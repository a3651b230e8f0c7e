package col

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/arc/obj"
)

// growObj builds a foreign-object column.
//
// Unlike the bulk representations it cannot memory-copy: every appended
// element clones a host-runtime reference (or hands out the sentinel) under
// the obj exclusivity lock, one acquisition per element. Prefer coarse
// Extend slices over element-by-element appends.
type growObj struct {
	field   Field
	sources []*ColObj
	buffer  []obj.Ref
}

func newGrowObj(field Field, sources []Array, capacity int) (*growObj, error) {
	arrs := make([]*ColObj, len(sources))
	for i, s := range sources {
		a, ok := s.(*ColObj)
		if !ok {
			return nil, errors.Errorf("source %d: %T is not an object column", i, s)
		}
		arrs[i] = a
	}
	return &growObj{
		field:   field,
		sources: arrs,
		buffer:  make([]obj.Ref, 0, capacity),
	}, nil
}

func (g *growObj) Extend(src, start, n int) {
	a := sourceAt(g.sources, src)
	checkSlice(a.Len(), start, n)
	for i := start; i < start+n; i++ {
		r := a.values[i]
		if obj.IsNone(r) {
			g.buffer = append(g.buffer, obj.None())
			continue
		}
		g.buffer = append(g.buffer, obj.Clone(r))
	}
}

func (g *growObj) AddNulls(n int) {
	for i := 0; i < n; i++ {
		g.buffer = append(g.buffer, obj.None())
	}
}

// Build drains accumulated references into a new column. The column shares
// object identity with the sources for every non-null row.
func (g *growObj) Build() (Array, error) {
	buffer := g.buffer
	g.buffer = nil
	return NewObj(g.field, buffer)
}
