// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
)

// TypeCast converts every element to U with Go conversion rules (floats
// truncate toward zero when U is an integer). Length and layout are kept.
func TypeCast[U, T numeric.Real](v Vector[T]) Vector[U] {
	return Map(v, numeric.Cast[U, T])
}

// DimensionCast returns v resized to n slots: truncated when shrinking,
// zero-filled when growing.
func DimensionCast[T numeric.Real](v Vector[T], n int) Vector[T] {
	mustLen("vector.DimensionCast", n)
	out := empty[T](n, v.layout)
	copy(out.e[:n], v.e[:min(n, v.Len())])
	return out
}

// Promote converts a and b to their common element type R and returns them
// ready for a same-typed operation:
//
//	sum := Add(Promote[float64](ints, floats))
//
// It panics with shape.ErrNoCommonType when R is not the promotion of T and
// U (it never coerces to an arbitrary type), and with
// shape.ErrIncompatibleShape when the lengths differ.
func Promote[R, T, U numeric.Real](a Vector[T], b Vector[U]) (Vector[R], Vector[R]) {
	d := shape.Must(shape.Promote(a.Shape(), b.Shape()))
	mustElem[R]("vector.Promote", d.Elem)
	return TypeCast[R](a), TypeCast[R](b)
}

// PromoteScalar is Promote for a vector and a scalar operand:
//
//	v := AddScalar(PromoteScalar[float64](ints, 0.5))
func PromoteScalar[R, T, U numeric.Real](v Vector[T], s U) (Vector[R], R) {
	d := shape.Must(shape.Promote(v.Shape(), shape.ScalarOf(numeric.KindOf[U]())))
	mustElem[R]("vector.PromoteScalar", d.Elem)
	return TypeCast[R](v), R(s)
}

// mustElem panics unless R is the element kind want.
func mustElem[R numeric.Real](op string, want numeric.Kind) {
	if got := numeric.KindOf[R](); got != want {
		panic(vectorErrorf(op, errors.Wrapf(shape.ErrNoCommonType,
			"requested %s, operands promote to %s", got, want)))
	}
}
