// SPDX-License-Identifier: MIT

package cplx

import (
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Complex is re + im·i with real part in slot 0 and imaginary part in slot 1.
type Complex[T numeric.Real] struct {
	vector.Vector[T]
}

// New returns re + im·i.
func New[T numeric.Real](re, im T) Complex[T] {
	return Complex[T]{vector.New(re, im)}
}

// FromVector views the 2-vector v as a complex number. Any other length
// panics with shape.ErrIncompatibleShape.
func FromVector[T numeric.Real](v vector.Vector[T]) Complex[T] {
	if v.Len() != 2 {
		panic(shape.Mismatch("cplx.FromVector", shape.ComplexOf(numeric.KindOf[T](), v.Layout()), v.Shape()))
	}
	return Complex[T]{v}
}

// FromComplex128 converts a built-in complex128.
func FromComplex128[T numeric.Real](c complex128) Complex[T] {
	return New(T(real(c)), T(imag(c)))
}

// Complex128 converts c to the built-in complex128.
func (c Complex[T]) Complex128() complex128 {
	return complex(float64(c.Real()), float64(c.Imag()))
}

// Real returns the real part (slot 0, the same slot as X).
func (c Complex[T]) Real() T { return c.X() }

// Imag returns the imaginary part (slot 1, the same slot as Y).
func (c Complex[T]) Imag() T { return c.Y() }

// SetReal writes the real part.
func (c *Complex[T]) SetReal(x T) { c.SetX(x) }

// SetImag writes the imaginary part.
func (c *Complex[T]) SetImag(x T) { c.SetY(x) }

// Shape describes c as a complex value.
func (c Complex[T]) Shape() shape.Descriptor {
	return shape.ComplexOf(numeric.KindOf[T](), c.Layout())
}

// Equal reports whether both parts are equal.
func (c Complex[T]) Equal(d Complex[T]) bool { return c.Vector.Equal(d.Vector) }

// Promote converts a and b to their common element type R; it panics with
// shape.ErrNoCommonType when R is not that type.
func Promote[R, T, U numeric.Real](a Complex[T], b Complex[U]) (Complex[R], Complex[R]) {
	pa, pb := vector.Promote[R](a.Vector, b.Vector)
	return Complex[R]{pa}, Complex[R]{pb}
}
