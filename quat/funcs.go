// SPDX-License-Identifier: MIT

package quat

import (
	"math"

	"github.com/katalvlaran/lvlinalg/internal/check"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Norm returns |q| with the overflow-safe hypot.
func Norm[T numeric.Float](q Quaternion[T]) T { return vector.Norm(q.v) }

// Normalize returns q / |q|. The zero quaternion yields NaN components.
func Normalize[T numeric.Float](q Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{vector.Normalize(q.v)}
}

// Inverse returns conj(q) / |q|², so Mul(q, Inverse(q)) is the identity.
func Inverse[T numeric.Float](q Quaternion[T]) Quaternion[T] {
	return DivScalar(Conj(q), NormSquared(q))
}

// Exp returns e^q = e^w·(cos|v| + v/|v|·sin|v|) where v is the imaginary
// part. A real quaternion (v = 0) returns e^w.
func Exp[T numeric.Float](q Quaternion[T]) Quaternion[T] {
	im := q.Imag()
	theta := vector.Norm(im)
	ew := T(math.Exp(float64(q.W())))
	if theta == 0 {
		return New(ew, 0, 0, 0).WithLayout(q.Layout())
	}
	s, c := math.Sincos(float64(theta))
	return FromParts(ew*T(c), vector.MulScalar(im, ew*T(s)/theta))
}

// Log returns the principal logarithm ln|q| + v/|v|·acos(w/|q|).
// Preconditions: q != 0 (asserted in debug builds).
//
// A real quaternion with negative w has infinitely many logarithms; the
// i axis is chosen, matching the complex logarithm ln|w| + πi.
func Log[T numeric.Float](q Quaternion[T]) Quaternion[T] {
	n := Norm(q)
	check.That(n != 0, "log of zero quaternion")
	im := q.Imag()
	theta := vector.Norm(im)
	lnN := T(math.Log(float64(n)))
	switch {
	case theta != 0:
		a := T(math.Acos(float64(q.W() / n)))
		return FromParts(lnN, vector.MulScalar(im, a/theta))
	case q.W() < 0:
		return New(lnN, math.Pi, 0, 0).WithLayout(q.Layout())
	default:
		return New(lnN, 0, 0, 0).WithLayout(q.Layout())
	}
}

// Sqrt returns the principal square root of q.
// Preconditions: q is not a negative real (w < 0 with zero imaginary part),
// whose square roots lie on a whole sphere (asserted in debug builds).
func Sqrt[T numeric.Float](q Quaternion[T]) Quaternion[T] {
	im := q.Imag()
	theta := vector.Norm(im)
	check.That(q.W() >= 0 || theta != 0, "sqrt of negative real quaternion %s", q)
	n := Norm(q)
	w := T(math.Sqrt(float64((n + q.W()) / 2)))
	if theta == 0 {
		return New(w, 0, 0, 0).WithLayout(q.Layout())
	}
	// |v'| = sqrt((n - w)/2) along the direction of v.
	s := T(math.Sqrt(float64((n - q.W()) / 2)))
	return FromParts(w, vector.MulScalar(im, s/theta))
}

// FromAxisAngle returns the unit quaternion rotating by angle radians about
// axis (normalized here; a zero axis yields NaN components).
func FromAxisAngle[T numeric.Float](axis vector.Vector[T], angle T) Quaternion[T] {
	s, c := math.Sincos(float64(angle) / 2)
	return FromParts(T(c), vector.MulScalar(vector.Normalize(axis), T(s)))
}

// Rotate returns v rotated by the unit quaternion q, computed as q·v·conj(q).
func Rotate[T numeric.Float](q Quaternion[T], v vector.Vector[T]) vector.Vector[T] {
	p := Mul(Mul(q, FromParts(0, v)), Conj(q))
	return p.Imag().WithLayout(v.Layout())
}

// RotationMatrix returns the 3×3 rotation matrix of the unit quaternion q.
func RotationMatrix[T numeric.Float](q Quaternion[T]) matrix.Matrix[T] {
	w, x, y, z := q.W(), q.X(), q.Y(), q.Z()
	return matrix.New(3, 3,
		1-2*(y*y+z*z), 2*(x*y-w*z), 2*(x*z+w*y),
		2*(x*y+w*z), 1-2*(x*x+z*z), 2*(y*z-w*x),
		2*(x*z-w*y), 2*(y*z+w*x), 1-2*(x*x+y*y),
	)
}

// Slerp interpolates along the shortest great arc between unit quaternions
// p and q; t = 0 yields p and t = 1 yields q. Nearly parallel inputs fall
// back to a normalized linear interpolation.
func Slerp[T numeric.Float](p, q Quaternion[T], t T) Quaternion[T] {
	const threshold = 0.9995
	d := Dot(p, q)
	if d < 0 {
		q, d = Neg(q), -d
	}
	if d > threshold {
		return Normalize(Quaternion[T]{vector.Lerp(p.v, q.v, t)})
	}
	theta0 := math.Acos(float64(min(d, 1)))
	theta := theta0 * float64(t)
	ortho := Normalize(Sub(q, MulScalar(p, d)))
	s, c := math.Sincos(theta)
	return Add(MulScalar(p, T(c)), MulScalar(ortho, T(s)))
}
