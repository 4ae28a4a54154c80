// SPDX-License-Identifier: MIT

package cplx

import (
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Add returns a + b.
func Add[T numeric.Real](a, b Complex[T]) Complex[T] {
	return Complex[T]{vector.Add(a.Vector, b.Vector)}
}

// Sub returns a - b.
func Sub[T numeric.Real](a, b Complex[T]) Complex[T] {
	return Complex[T]{vector.Sub(a.Vector, b.Vector)}
}

// Mul returns the complex product (ac - bd) + (ad + bc)i.
func Mul[T numeric.Real](a, b Complex[T]) Complex[T] {
	ar, ai, br, bi := a.Real(), a.Imag(), b.Real(), b.Imag()
	return withLayout(New(ar*br-ai*bi, ar*bi+ai*br), a, b)
}

// Div returns a / b. Dividing by zero follows T: Inf/NaN for floats, a
// runtime panic for integers (whose quotient parts truncate).
func Div[T numeric.Real](a, b Complex[T]) Complex[T] {
	ar, ai, br, bi := a.Real(), a.Imag(), b.Real(), b.Imag()
	den := br*br + bi*bi
	return withLayout(New((ar*br+ai*bi)/den, (ai*br-ar*bi)/den), a, b)
}

// AddScalar returns c + s (s is added to the real part only).
func AddScalar[T numeric.Real](c Complex[T], s T) Complex[T] {
	c.SetReal(c.Real() + s)
	return c
}

// MulScalar returns c · s.
func MulScalar[T numeric.Real](c Complex[T], s T) Complex[T] {
	return Complex[T]{vector.MulScalar(c.Vector, s)}
}

// Neg returns -c.
func Neg[T numeric.Real](c Complex[T]) Complex[T] {
	return Complex[T]{vector.Neg(c.Vector)}
}

// Conj returns the conjugate re - im·i.
func Conj[T numeric.Real](c Complex[T]) Complex[T] {
	c.SetImag(-c.Imag())
	return c
}

// NormSquared returns re² + im².
func NormSquared[T numeric.Real](c Complex[T]) T {
	return vector.NormSquared(c.Vector)
}

// NormSquared returns re² + im². It makes Complex a numeric.NormSquarer.
func (c Complex[T]) NormSquared() T { return NormSquared(c) }

func withLayout[T numeric.Real](c, a, b Complex[T]) Complex[T] {
	return Complex[T]{c.WithLayout(shape.Combine(a.Layout(), b.Layout()))}
}
