// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
)

// TypeCast converts every cell to U with Go conversion rules.
func TypeCast[U, T numeric.Real](m Matrix[T]) Matrix[U] {
	return Map(m, numeric.Cast[U, T])
}

// DimensionCast returns m resized to rows×cols, keeping the overlapping
// top-left block and zero-filling the rest.
func DimensionCast[T numeric.Real](m Matrix[T], rows, cols int) Matrix[T] {
	mustDims("matrix.DimensionCast", rows, cols)
	out := empty[T](rows, cols, m.layout)
	for i := 0; i < min(rows, m.Rows()); i++ {
		for j := 0; j < min(cols, m.Cols()); j++ {
			out.e[i*cols+j] = m.e[i*m.Cols()+j]
		}
	}

	return out
}

// Promote converts a and b to their common element type R:
//
//	sum := matrix.Add(matrix.Promote[float64](ints, floats))
//
// It panics with shape.ErrNoCommonType when R is not the promotion of T and
// U, and with shape.ErrIncompatibleShape when the dimensions differ.
func Promote[R, T, U numeric.Real](a Matrix[T], b Matrix[U]) (Matrix[R], Matrix[R]) {
	d := shape.Must(shape.Promote(a.Shape(), b.Shape()))
	if got := numeric.KindOf[R](); got != d.Elem {
		panic(matrixErrorf(opPromote, errors.Wrapf(shape.ErrNoCommonType,
			"requested %s, operands promote to %s", got, d.Elem)))
	}

	return TypeCast[R](a), TypeCast[R](b)
}
