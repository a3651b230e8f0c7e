package arc

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/arc/col"
)

// Growable assembles a new series from slices of existing series sharing
// one physical representation. It delegates to the col growable of that
// representation and re-attaches the logical field on build.
type Growable struct {
	field col.Field
	inner col.Growable
}

// NewGrowable returns a series growable with the declared name and type.
//
// Capacity is a row-count pre-allocation hint.
func NewGrowable(name string, dtype col.DataType, sources []*Series, capacity int) (*Growable, error) {
	arrs := make([]col.Array, len(sources))
	for i, s := range sources {
		arrs[i] = s.data
	}
	inner, err := col.NewGrowable(name, dtype, arrs, capacity)
	if err != nil {
		return nil, errors.Wrap(err, "growable")
	}
	return &Growable{
		field: col.Field{Name: name, Type: dtype},
		inner: inner,
	}, nil
}

// Extend appends n rows of source src starting at row start.
func (g *Growable) Extend(src, start, n int) { g.inner.Extend(src, start, n) }

// AddNulls appends n null rows.
func (g *Growable) AddNulls(n int) { g.inner.AddNulls(n) }

// Build finalizes accumulated rows into a new series.
func (g *Growable) Build() (*Series, error) {
	data, err := g.inner.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build")
	}
	return &Series{field: g.field, data: data}, nil
}
