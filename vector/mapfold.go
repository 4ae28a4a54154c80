// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
)

// Map returns the vector whose i-th slot is f(v[i]). The result keeps v's
// length and layout; its element type is f's result type.
func Map[T, R numeric.Real](v Vector[T], f func(T) R) Vector[R] {
	out := empty[R](v.Len(), v.layout)
	for i := 0; i < v.Len(); i++ {
		out.e[i] = f(v.e[i])
	}
	return out
}

// Map2 returns the vector whose i-th slot is f(a[i], b[i]).
//
// Behavior highlights:
//   - a and b must have equal length; otherwise Map2 panics with
//     shape.ErrIncompatibleShape before f is ever called.
//   - The result is packed only when both operands are packed.
//   - f is called once per slot, in index order.
func Map2[A, B, R numeric.Real](a Vector[A], b Vector[B], f func(A, B) R) Vector[R] {
	if a.n != b.n {
		mismatch("vector.Map2", a.Shape(), b.Shape())
	}
	out := empty[R](a.Len(), shape.Combine(a.layout, b.layout))
	for i := 0; i < a.Len(); i++ {
		out.e[i] = f(a.e[i], b.e[i])
	}
	return out
}

// Map3 is the three-operand Map2.
func Map3[A, B, C, R numeric.Real](a Vector[A], b Vector[B], c Vector[C], f func(A, B, C) R) Vector[R] {
	sameLen("vector.Map3", a, b.Shape(), c.Shape())
	l := shape.Combine(shape.Combine(a.layout, b.layout), c.layout)
	out := empty[R](a.Len(), l)
	for i := 0; i < a.Len(); i++ {
		out.e[i] = f(a.e[i], b.e[i], c.e[i])
	}
	return out
}

// Map4 is the four-operand Map2.
func Map4[A, B, C, D, R numeric.Real](a Vector[A], b Vector[B], c Vector[C], d Vector[D], f func(A, B, C, D) R) Vector[R] {
	sameLen("vector.Map4", a, b.Shape(), c.Shape(), d.Shape())
	l := shape.Combine(shape.Combine(a.layout, b.layout), shape.Combine(c.layout, d.layout))
	out := empty[R](a.Len(), l)
	for i := 0; i < a.Len(); i++ {
		out.e[i] = f(a.e[i], b.e[i], c.e[i], d.e[i])
	}
	return out
}

// Map5 is the five-operand Map2.
func Map5[A, B, C, D, E, R numeric.Real](a Vector[A], b Vector[B], c Vector[C], d Vector[D], e Vector[E], f func(A, B, C, D, E) R) Vector[R] {
	sameLen("vector.Map5", a, b.Shape(), c.Shape(), d.Shape(), e.Shape())
	l := shape.Combine(shape.Combine(a.layout, b.layout), shape.Combine(c.layout, d.layout))
	l = shape.Combine(l, e.layout)
	out := empty[R](a.Len(), l)
	for i := 0; i < a.Len(); i++ {
		out.e[i] = f(a.e[i], b.e[i], c.e[i], d.e[i], e.e[i])
	}
	return out
}

// Map6 is the six-operand Map2.
func Map6[A, B, C, D, E, F, R numeric.Real](a Vector[A], b Vector[B], c Vector[C], d Vector[D], e Vector[E], g Vector[F], f func(A, B, C, D, E, F) R) Vector[R] {
	sameLen("vector.Map6", a, b.Shape(), c.Shape(), d.Shape(), e.Shape(), g.Shape())
	l := shape.Combine(shape.Combine(a.layout, b.layout), shape.Combine(c.layout, d.layout))
	l = shape.Combine(l, shape.Combine(e.layout, g.layout))
	out := empty[R](a.Len(), l)
	for i := 0; i < a.Len(); i++ {
		out.e[i] = f(a.e[i], b.e[i], c.e[i], d.e[i], e.e[i], g.e[i])
	}
	return out
}

// MapN applies f across any number of same-typed operands: the i-th slot of
// the result is f([vs[0][i], vs[1][i], …]). The argument slice is reused
// between calls; f must not retain it.
func MapN[T, R numeric.Real](f func(xs []T) R, vs ...Vector[T]) Vector[R] {
	if len(vs) == 0 {
		panic(vectorErrorf("vector.MapN", shape.ErrIncompatibleShape))
	}
	l := vs[0].layout
	for _, v := range vs[1:] {
		if v.n != vs[0].n {
			mismatch("vector.MapN", vs[0].Shape(), v.Shape())
		}
		l = shape.Combine(l, v.layout)
	}
	out := empty[R](vs[0].Len(), l)
	args := make([]T, len(vs))
	for i := 0; i < out.Len(); i++ {
		for k := range vs {
			args[k] = vs[k].e[i]
		}
		out.e[i] = f(args)
	}
	return out
}

// sameLen panics unless every descriptor in rest has a's length.
func sameLen[T numeric.Real](op string, a Vector[T], rest ...shape.Descriptor) {
	for _, d := range rest {
		if d.Len != a.Len() {
			mismatch(op, a.Shape(), d)
		}
	}
}

// Fold is LeftFold.
func Fold[T numeric.Real](v Vector[T], f func(T, T) T) T { return LeftFold(v, f) }

// LeftFold reduces v left to right: f(f(f(v0, v1), v2), v3).
// A 1-vector returns v0 without calling f.
func LeftFold[T numeric.Real](v Vector[T], f func(T, T) T) T {
	return numeric.LeftFold(v.e[:v.n], f)
}

// RightFold reduces v right to left: f(v0, f(v1, f(v2, v3))).
// A 1-vector returns v0 without calling f.
func RightFold[T numeric.Real](v Vector[T], f func(T, T) T) T {
	return numeric.RightFold(v.e[:v.n], f)
}

// AllOf reports whether pred holds for every slot, stopping at the first
// failure.
func AllOf[T numeric.Real](v Vector[T], pred func(T) bool) bool {
	for i := 0; i < v.Len(); i++ {
		if !pred(v.e[i]) {
			return false
		}
	}
	return true
}

// AnyOf reports whether pred holds for some slot, stopping at the first
// success.
func AnyOf[T numeric.Real](v Vector[T], pred func(T) bool) bool {
	for i := 0; i < v.Len(); i++ {
		if pred(v.e[i]) {
			return true
		}
	}
	return false
}
