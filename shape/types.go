// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// Kind is the closed set of numeric shapes.
type Kind uint8

const (
	// Invalid is the zero Kind.
	Invalid Kind = iota
	Scalar
	Complex
	Quaternion
	Vector
	Matrix

	kindCount
)

var kindNames = [...]string{
	Invalid:    "invalid",
	Scalar:     "scalar",
	Complex:    "complex",
	Quaternion: "quaternion",
	Vector:     "vector",
	Matrix:     "matrix",
}

// String returns the lower-case shape name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Layout is the storage option of an aggregate.
//
//   - Padded (the zero value) rounds the physical slot count up to a power of
//     two and aligns to the SIMD register width: a padded 3-vector occupies
//     four slots.
//   - Packed stores exactly the logical slots with element alignment.
//
// Layout never participates in equality, hashing, iteration or reductions.
type Layout uint8

const (
	Padded Layout = iota
	Packed
)

// String returns "padded" or "packed".
func (l Layout) String() string {
	if l == Packed {
		return "packed"
	}
	return "padded"
}

// Combine returns the layout of a result built from operands with layouts a
// and b: packed only when both are packed.
func Combine(a, b Layout) Layout {
	if a == Packed && b == Packed {
		return Packed
	}
	return Padded
}

// Descriptor describes the shape of a numeric value.
//
// Len is 1 for scalars, 2 for complex numbers, 4 for quaternions and the
// logical length for vectors; matrices set Rows and Cols and Len = Rows*Cols.
type Descriptor struct {
	Kind   Kind
	Elem   numeric.Kind
	Len    int
	Rows   int
	Cols   int
	Layout Layout
}

// Shaper is implemented by every aggregate type of lvlinalg.
type Shaper interface {
	Shape() Descriptor
}

// ScalarOf describes a scalar of kind elem. Scalars carry the Packed layout
// so that Combine with a scalar operand keeps the other operand's layout.
func ScalarOf(elem numeric.Kind) Descriptor {
	return Descriptor{Kind: Scalar, Elem: elem, Len: 1, Rows: 1, Cols: 1, Layout: Packed}
}

// ComplexOf describes a complex number with elem components.
func ComplexOf(elem numeric.Kind, l Layout) Descriptor {
	return Descriptor{Kind: Complex, Elem: elem, Len: 2, Rows: 2, Cols: 1, Layout: l}
}

// QuaternionOf describes a quaternion with elem components.
func QuaternionOf(elem numeric.Kind, l Layout) Descriptor {
	return Descriptor{Kind: Quaternion, Elem: elem, Len: 4, Rows: 4, Cols: 1, Layout: l}
}

// VectorOf describes an n-vector of elem.
func VectorOf(elem numeric.Kind, n int, l Layout) Descriptor {
	return Descriptor{Kind: Vector, Elem: elem, Len: n, Rows: n, Cols: 1, Layout: l}
}

// MatrixOf describes a rows×cols matrix of elem.
func MatrixOf(elem numeric.Kind, rows, cols int, l Layout) Descriptor {
	return Descriptor{Kind: Matrix, Elem: elem, Len: rows * cols, Rows: rows, Cols: cols, Layout: l}
}

// Validate reports ErrInvalidDescriptor for unknown kinds or empty sizes.
func (d Descriptor) Validate() error {
	if d.Kind == Invalid || d.Kind >= kindCount || !d.Elem.Valid() || d.Len < 1 || d.Rows < 1 || d.Cols < 1 {
		return errors.Wrapf(ErrInvalidDescriptor, "%s", d)
	}
	return nil
}

// String renders d as e.g. "float64", "complex<float32>", "vector<int,3>"
// or "matrix<float64,2x3,packed>".
func (d Descriptor) String() string {
	suffix := ""
	if d.Layout == Packed && d.Kind != Scalar {
		suffix = ",packed"
	}
	switch d.Kind {
	case Scalar:
		return d.Elem.String()
	case Complex, Quaternion:
		return fmt.Sprintf("%s<%s%s>", d.Kind, d.Elem, suffix)
	case Vector:
		return fmt.Sprintf("vector<%s,%d%s>", d.Elem, d.Len, suffix)
	case Matrix:
		return fmt.Sprintf("matrix<%s,%dx%d%s>", d.Elem, d.Rows, d.Cols, suffix)
	default:
		return fmt.Sprintf("%s<%s>", d.Kind, d.Elem)
	}
}
