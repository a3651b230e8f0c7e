// Package arc implements the columnar array core of a dataframe engine:
// typed physical columns, growable builders assembling new columns from
// slices of existing ones, and import from arrow memory.
//
// Physical storage lives in the col package; this package adds the logical
// layer: Series pairs a logical field with the physical column backing it.
package arc
