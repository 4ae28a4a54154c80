// SPDX-License-Identifier: MIT

package numeric

import (
	"reflect"
	"strconv"
)

// Kind tags a built-in arithmetic element type. The set is closed: every
// type satisfying Real maps to exactly one Kind, including named types
// (type Meters float64 is a Float64).
type Kind uint8

const (
	// Invalid is the zero Kind; it never results from KindOf.
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Float32
	Float64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Int:     "int",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uint:    "uint",
	Uintptr: "uintptr",
	Float32: "float32",
	Float64: "float64",
}

// reflectKinds maps reflect kinds onto the closed Kind set.
var reflectKinds = map[reflect.Kind]Kind{
	reflect.Int8:    Int8,
	reflect.Int16:   Int16,
	reflect.Int32:   Int32,
	reflect.Int64:   Int64,
	reflect.Int:     Int,
	reflect.Uint8:   Uint8,
	reflect.Uint16:  Uint16,
	reflect.Uint32:  Uint32,
	reflect.Uint64:  Uint64,
	reflect.Uint:    Uint,
	reflect.Uintptr: Uintptr,
	reflect.Float32: Float32,
	reflect.Float64: Float64,
}

// KindOf returns the Kind of the element type T.
// Complexity: O(1).
func KindOf[T Real]() Kind {
	return reflectKinds[reflect.TypeFor[T]().Kind()]
}

// KindOfValue classifies a dynamic value. It returns Invalid for anything
// that is not a built-in arithmetic scalar (or a named type over one).
func KindOfValue(x any) Kind {
	if x == nil {
		return Invalid
	}
	return reflectKinds[reflect.TypeOf(x).Kind()]
}

// String returns the Go spelling of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the arithmetic kinds.
func (k Kind) Valid() bool { return k > Invalid && k <= Float64 }

// IsFloat reports whether k is float32 or float64.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// IsInteger reports whether k is any integer kind.
func (k Kind) IsInteger() bool { return k.Valid() && !k.IsFloat() }

// IsSigned reports whether values of k can be negative.
func (k Kind) IsSigned() bool { return (k >= Int8 && k <= Int) || k.IsFloat() }

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool { return k >= Uint8 && k <= Uintptr }

// Bits returns the storage width of k in bits; int, uint and uintptr report
// the platform width. Invalid reports 0.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	case Int, Uint, Uintptr:
		return strconv.IntSize
	default:
		return 0
	}
}

// Size returns the storage width of k in bytes.
func (k Kind) Size() int { return k.Bits() / 8 }

// platform reports whether k's width depends on GOARCH.
func (k Kind) platform() bool { return k == Int || k == Uint || k == Uintptr }
