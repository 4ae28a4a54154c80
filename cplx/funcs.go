// SPDX-License-Identifier: MIT

package cplx

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvlinalg/internal/check"
	"github.com/katalvlaran/lvlinalg/numeric"
)

// Abs returns |c| with the overflow-safe numeric.Hypot, so
// Abs(New(1e200, 1e200)) is finite.
func Abs[T numeric.Float](c Complex[T]) T {
	return numeric.Hypot(c.Real(), c.Imag())
}

// Arg returns the phase of c in (-π, π].
func Arg[T numeric.Float](c Complex[T]) T {
	return T(math.Atan2(float64(c.Imag()), float64(c.Real())))
}

// Polar returns the magnitude and phase of c.
func Polar[T numeric.Float](c Complex[T]) (r, theta T) {
	return Abs(c), Arg(c)
}

// FromPolar returns r·(cos θ + i·sin θ).
func FromPolar[T numeric.Float](r, theta T) Complex[T] {
	s, co := math.Sincos(float64(theta))
	return New(r*T(co), r*T(s))
}

// Exp returns e^c.
func Exp[T numeric.Float](c Complex[T]) Complex[T] {
	return lift(c, cmplx.Exp)
}

// Log returns the principal natural logarithm of c.
// Preconditions: c != 0 (asserted in debug builds).
func Log[T numeric.Float](c Complex[T]) Complex[T] {
	check.That(c.Real() != 0 || c.Imag() != 0, "log of zero complex number")
	return lift(c, cmplx.Log)
}

// Sqrt returns the principal square root of c.
func Sqrt[T numeric.Float](c Complex[T]) Complex[T] {
	return lift(c, cmplx.Sqrt)
}

// Pow returns the principal value of a^b.
func Pow[T numeric.Float](a, b Complex[T]) Complex[T] {
	return withLayout(FromComplex128[T](cmplx.Pow(a.Complex128(), b.Complex128())), a, b)
}

// lift evaluates f in complex128 and converts back, keeping c's layout.
func lift[T numeric.Float](c Complex[T], f func(complex128) complex128) Complex[T] {
	out := FromComplex128[T](f(c.Complex128()))
	return Complex[T]{out.WithLayout(c.Layout())}
}
