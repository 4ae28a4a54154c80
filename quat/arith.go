// SPDX-License-Identifier: MIT

package quat

import (
	"github.com/katalvlaran/lvlinalg/cplx"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Add returns p + q.
func Add[T numeric.Real](p, q Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{vector.Add(p.v, q.v)}
}

// Sub returns p - q.
func Sub[T numeric.Real](p, q Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{vector.Sub(p.v, q.v)}
}

// Mul returns the Hamilton product p·q. It is not commutative:
// i·j = k but j·i = -k.
func Mul[T numeric.Real](p, q Quaternion[T]) Quaternion[T] {
	pw, px, py, pz := p.W(), p.X(), p.Y(), p.Z()
	qw, qx, qy, qz := q.W(), q.X(), q.Y(), q.Z()
	out := New(
		pw*qw-px*qx-py*qy-pz*qz,
		pw*qx+px*qw+py*qz-pz*qy,
		pw*qy-px*qz+py*qw+pz*qx,
		pw*qz+px*qy-py*qx+pz*qw,
	)
	return out.WithLayout(shape.Combine(p.Layout(), q.Layout()))
}

// MulComplex returns q·c, with c embedded as a quaternion.
func MulComplex[T numeric.Real](q Quaternion[T], c cplx.Complex[T]) Quaternion[T] {
	return Mul(q, FromComplex(c))
}

// AddScalar returns q + s (s is added to the real part).
func AddScalar[T numeric.Real](q Quaternion[T], s T) Quaternion[T] {
	q.SetReal(q.W() + s)
	return q
}

// MulScalar returns q · s.
func MulScalar[T numeric.Real](q Quaternion[T], s T) Quaternion[T] {
	return Quaternion[T]{vector.MulScalar(q.v, s)}
}

// DivScalar returns q / s.
func DivScalar[T numeric.Real](q Quaternion[T], s T) Quaternion[T] {
	return Quaternion[T]{vector.DivScalar(q.v, s)}
}

// Neg returns -q.
func Neg[T numeric.Real](q Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{vector.Neg(q.v)}
}

// Conj returns w - xi - yj - zk.
func Conj[T numeric.Real](q Quaternion[T]) Quaternion[T] {
	return FromParts(q.W(), vector.Neg(q.Imag()))
}

// Dot returns the 4-dimensional dot product of p and q.
func Dot[T numeric.Real](p, q Quaternion[T]) T { return vector.Dot(p.v, q.v) }

// NormSquared returns w² + x² + y² + z² (equal to the real part of q·conj(q)).
func NormSquared[T numeric.Real](q Quaternion[T]) T { return vector.NormSquared(q.v) }

// NormSquared is the method form of NormSquared; it makes Quaternion a
// numeric.NormSquarer.
func (q Quaternion[T]) NormSquared() T { return NormSquared(q) }
