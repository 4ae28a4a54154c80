// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." and callers match with
// errors.Is. Dimension errors additionally match the shape package
// sentinels, so one check covers vectors and matrices alike.

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/shape"
)

var (
	// ErrBadShape reports a requested shape outside [1, MaxDim]×[1, MaxDim],
	// or a value list whose length is not rows*cols. Constructors panic with
	// it.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch reports operands whose dimensions do not conform.
	// Errors carrying it also match shape.ErrIncompatibleShape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare reports a square-only operation applied to a non-square
	// matrix. Errors carrying it also match shape.ErrIncompatibleShape.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when every candidate pivot of some
	// column is at or below the configured epsilon.
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrNaNInf is returned by Inverse when the input holds NaN or ±Inf and
	// finite-value validation is enabled (the default).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation tags for error wrapping.
const (
	opNew         = "matrix.New"
	opFromRows    = "matrix.FromRows"
	opFromCols    = "matrix.FromCols"
	opSetRow      = "matrix.SetRow"
	opSetCol      = "matrix.SetCol"
	opEqual       = "matrix.Equal"
	opMul         = "matrix.Mul"
	opMulVec      = "matrix.MulVec"
	opVecMul      = "matrix.VecMul"
	opTrace       = "matrix.Trace"
	opDeterminant = "matrix.Determinant"
	opInverse     = "matrix.Inverse"
	opPromote     = "matrix.Promote"
	opSubmatrix   = "matrix.Submatrix"
	opLU          = "matrix.LU"
	opCovariance  = "matrix.Covariance"
)

// matrixErrorf wraps err with an operation tag; errors.Is still matches the
// underlying sentinels.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// dimensionError builds the error for non-conforming operands a and b.
func dimensionError(op string, a, b shape.Descriptor) error {
	return errors.Mark(shape.Mismatch(op, a, b), ErrDimensionMismatch)
}

// nonSquareError builds the error for a non-square operand m.
func nonSquareError(op string, m shape.Descriptor) error {
	err := errors.Wrapf(ErrNonSquare, "%s: %s", op, m)
	return errors.Mark(err, shape.ErrIncompatibleShape)
}

// badShape panics with ErrBadShape.
func badShape(op string, rows, cols int) {
	panic(matrixErrorf(op, errors.Wrapf(ErrBadShape, "%dx%d", rows, cols)))
}

// mustDims panics unless 1 <= rows, cols <= MaxDim.
func mustDims(op string, rows, cols int) {
	if rows < 1 || rows > MaxDim || cols < 1 || cols > MaxDim {
		badShape(op, rows, cols)
	}
}
