// SPDX-License-Identifier: MIT

// Package matrix: statistical transforms over the rows of a float matrix,
// each row being one observation and each column one variable.
//
// Exposed API:
//   - ColumnMeans(X)   -> means           // per-column mean as a vector
//   - CenterColumns(X) -> (Xc, means)     // subtract per-column mean
//   - NormalizeRows(X) -> (Y, norms)      // L2 row normalization (zero rows unchanged)
//   - Covariance(X)    -> (Cov, error)    // sample covariance of columns: (Xcᵀ Xc)/(r-1)
package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/vector"
)

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
func ColumnMeans[T numeric.Float](x Matrix[T]) vector.Vector[T] {
	r := T(x.Rows())
	return vector.GenerateIndexed(x.Cols(), func(j int) T {
		return vector.Sum(x.Col(j)) / r
	})
}

// CenterColumns subtracts the per-column mean from every cell and returns
// the centered copy along with the means.
func CenterColumns[T numeric.Float](x Matrix[T]) (Matrix[T], vector.Vector[T]) {
	means := ColumnMeans(x)
	out := x
	for i := 0; i < x.Rows(); i++ {
		for j := 0; j < x.Cols(); j++ {
			out.e[i*x.Cols()+j] -= means.At(j)
		}
	}

	return out, means
}

// NormalizeRows scales every row to unit Euclidean norm and returns the
// original norms. Rows of norm zero are left unchanged.
func NormalizeRows[T numeric.Float](x Matrix[T]) (Matrix[T], vector.Vector[T]) {
	norms := vector.GenerateIndexed(x.Rows(), func(i int) T {
		return vector.Norm(x.Row(i))
	})
	out := x
	for i := 0; i < x.Rows(); i++ {
		if n := norms.At(i); n > 0 {
			out.SetRow(i, vector.DivScalar(x.Row(i), n))
		}
	}

	return out, norms
}

// Covariance returns the c×c sample covariance of the columns of an r×c
// matrix: Cov = (Xcᵀ·Xc)/(r-1) with Xc the column-centered input. The
// result is symmetric and its diagonal holds the column variances.
//
// Errors:
//   - ErrDimensionMismatch when r < 2 (the sample denominator vanishes).
func Covariance[T numeric.Float](x Matrix[T]) (Matrix[T], error) {
	if x.Rows() < 2 {
		return Matrix[T]{}, matrixErrorf(opCovariance,
			errors.Wrapf(ErrDimensionMismatch, "need at least 2 rows, got %d", x.Rows()))
	}

	xc, _ := CenterColumns(x)
	cov := Mul(Transpose(xc), xc)

	return DivScalar(cov, T(x.Rows()-1)), nil
}
