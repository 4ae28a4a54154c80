// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
)

func add[T numeric.Real](x, y T) T { return x + y }

// Dot returns Σ a[i]·b[i], folded left to right.
func Dot[T numeric.Real](a, b Vector[T]) T {
	return Fold(Mul(a, b), add[T])
}

// Cross returns the cross product a × b of two 3-vectors. Any other length
// panics with shape.ErrIncompatibleShape.
func Cross[T numeric.Real](a, b Vector[T]) Vector[T] {
	if a.n != 3 || b.n != 3 {
		mismatch("vector.Cross", a.Shape(), b.Shape())
	}
	return Vector[T]{
		e: [MaxLen]T{
			a.e[1]*b.e[2] - a.e[2]*b.e[1],
			a.e[2]*b.e[0] - a.e[0]*b.e[2],
			a.e[0]*b.e[1] - a.e[1]*b.e[0],
		},
		n:      3,
		layout: shape.Combine(a.layout, b.layout),
	}
}

// NormSquared returns Σ v[i]² (no overflow guard; the result is exact for
// integers that do not overflow T).
func NormSquared[T numeric.Real](v Vector[T]) T {
	return Dot(v, v)
}

// Norm returns the Euclidean length of v.
//
// Implementation: numeric.Hypot. The naive sum of squares is tried first;
// if it overflows to +Inf or underflows below the normal range, the sum is
// recomputed with every component scaled by the largest magnitude, and the
// result is rescaled. The answer is finite whenever the true length is
// representable, and zero only for the zero vector:
//
//	Norm(New(1e200, 1e200))   // 1.414213562373095e+200
//	Norm(New(1e-200, 1e-200)) // 1.414213562373095e-200
func Norm[T numeric.Float](v Vector[T]) T {
	return numeric.Hypot(v.e[:v.n]...)
}

// FastNorm returns sqrt(NormSquared(v)) with no overflow guard.
func FastNorm[T numeric.Float](v Vector[T]) T {
	return numeric.FastHypot(v.e[:v.n]...)
}

// PNorm returns the p-norm (Σ|v[i]|^p)^(1/p) with the same range-safe
// two-path evaluation as Norm. p = +Inf yields the largest magnitude.
// Preconditions: p > 0 (asserted in debug builds).
func PNorm[T numeric.Float](v Vector[T], p T) T {
	return numeric.PHypot(p, v.e[:v.n]...)
}

// FastPNorm is PNorm without the overflow guard.
func FastPNorm[T numeric.Float](v Vector[T], p T) T {
	return numeric.FastPHypot(p, v.e[:v.n]...)
}

// DistanceSquared returns NormSquared(a - b).
func DistanceSquared[T numeric.Real](a, b Vector[T]) T {
	return NormSquared(Sub(a, b))
}

// Distance returns Norm(a - b).
func Distance[T numeric.Float](a, b Vector[T]) T {
	return Norm(Sub(a, b))
}

// FastDistance returns FastNorm(a - b).
func FastDistance[T numeric.Float](a, b Vector[T]) T {
	return FastNorm(Sub(a, b))
}

// Normalize returns v / Norm(v). The zero vector is not special-cased: its
// components become NaN.
func Normalize[T numeric.Float](v Vector[T]) Vector[T] {
	return DivScalar(v, Norm(v))
}

// FastNormalize returns v / FastNorm(v).
func FastNormalize[T numeric.Float](v Vector[T]) Vector[T] {
	return DivScalar(v, FastNorm(v))
}
