// Package col implements typed in-memory columns and growable builders
// over them.
package col

import (
	"fmt"
	"strings"
)

// TimeUnit is resolution of Timestamp and Duration types.
type TimeUnit uint8

const (
	Seconds TimeUnit = iota
	Milliseconds
	Microseconds
	Nanoseconds
)

func (u TimeUnit) String() string {
	switch u {
	case Seconds:
		return "s"
	case Milliseconds:
		return "ms"
	case Microseconds:
		return "us"
	case Nanoseconds:
		return "ns"
	default:
		return fmt.Sprintf("TimeUnit(%d)", uint8(u))
	}
}

// Kind is type kind of column element.
//
// Physical kinds name a concrete storage layout. Logical kinds carry extra
// semantics over a physical counterpart and never have storage of their own.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Physical.
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindFloat32
	KindFloat64
	KindBinary
	KindString
	KindList
	KindObject

	// Logical.
	KindDate
	KindTimestamp
	KindDuration
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindUInt8:
		return "UInt8"
	case KindUInt16:
		return "UInt16"
	case KindUInt32:
		return "UInt32"
	case KindUInt64:
		return "UInt64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindBinary:
		return "Binary"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindObject:
		return "Object"
	case KindDate:
		return "Date"
	case KindTimestamp:
		return "Timestamp"
	case KindDuration:
		return "Duration"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsLogical reports whether kind has no storage of its own.
func (k Kind) IsLogical() bool {
	switch k {
	case KindDate, KindTimestamp, KindDuration:
		return true
	default:
		return false
	}
}

// DataType describes type of column element.
type DataType struct {
	Kind Kind
	Elem *DataType // element type, set for List
	Unit TimeUnit  // set for Timestamp and Duration
	TZ   string    // set for Timestamp, blank means naive
}

// Scalar data types.
var (
	Bool    = DataType{Kind: KindBool}
	Int8    = DataType{Kind: KindInt8}
	Int16   = DataType{Kind: KindInt16}
	Int32   = DataType{Kind: KindInt32}
	Int64   = DataType{Kind: KindInt64}
	UInt8   = DataType{Kind: KindUInt8}
	UInt16  = DataType{Kind: KindUInt16}
	UInt32  = DataType{Kind: KindUInt32}
	UInt64  = DataType{Kind: KindUInt64}
	Float32 = DataType{Kind: KindFloat32}
	Float64 = DataType{Kind: KindFloat64}
	Binary  = DataType{Kind: KindBinary}
	String  = DataType{Kind: KindString}
	Object  = DataType{Kind: KindObject}
	Date    = DataType{Kind: KindDate}
)

// List returns List(elem) data type.
func List(elem DataType) DataType {
	return DataType{Kind: KindList, Elem: &elem}
}

// Timestamp returns Timestamp data type with unit and time zone.
func Timestamp(unit TimeUnit, tz string) DataType {
	return DataType{Kind: KindTimestamp, Unit: unit, TZ: tz}
}

// Duration returns Duration data type with unit.
func Duration(unit TimeUnit) DataType {
	return DataType{Kind: KindDuration, Unit: unit}
}

// IsLogical reports whether data type requires mapping to a physical
// counterpart before it can be stored.
func (d DataType) IsLogical() bool { return d.Kind.IsLogical() }

// Physical returns the physical counterpart of data type.
//
// Physical types map to themselves, except List, whose element type is
// mapped recursively.
func (d DataType) Physical() DataType {
	switch d.Kind {
	case KindDate:
		return Int32
	case KindTimestamp, KindDuration:
		return Int64
	case KindList:
		return List(d.Elem.Physical())
	default:
		return DataType{Kind: d.Kind}
	}
}

// Equal reports whether data types are the same, including parameters.
func (d DataType) Equal(o DataType) bool {
	if d.Kind != o.Kind || d.Unit != o.Unit || d.TZ != o.TZ {
		return false
	}
	if (d.Elem == nil) != (o.Elem == nil) {
		return false
	}
	if d.Elem != nil && !d.Elem.Equal(*o.Elem) {
		return false
	}
	return true
}

func (d DataType) String() string {
	switch d.Kind {
	case KindList:
		var b strings.Builder
		b.WriteString(d.Kind.String())
		b.WriteRune('(')
		b.WriteString(d.Elem.String())
		b.WriteRune(')')
		return b.String()
	case KindTimestamp:
		if d.TZ == "" {
			return fmt.Sprintf("%s(%s)", d.Kind, d.Unit)
		}
		return fmt.Sprintf("%s(%s,%s)", d.Kind, d.Unit, d.TZ)
	case KindDuration:
		return fmt.Sprintf("%s(%s)", d.Kind, d.Unit)
	default:
		return d.Kind.String()
	}
}

// Field is named column type.
type Field struct {
	Name string
	Type DataType
}

func (f Field) String() string {
	return fmt.Sprintf("%s %s", f.Name, f.Type)
}

// Physical returns field with type substituted by its physical counterpart.
func (f Field) Physical() Field {
	return Field{Name: f.Name, Type: f.Type.Physical()}
}
