// SPDX-License-Identifier: MIT

// Package matrix: validators.
// Each validator returns nil or the exact error the matching operation
// would panic with, so callers holding run-time shapes can check first.
package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/shape"
)

// ValidateSameShape checks that a and b are matrices of equal dimensions
// (the precondition of every elementwise operation).
//
// Errors:
//   - nil on success.
//   - ErrDimensionMismatch (also matching shape.ErrIncompatibleShape) when
//     either operand is not a matrix or the dimensions differ.
func ValidateSameShape(a, b shape.Shaper) error {
	da, db := a.Shape(), b.Shape()
	if da.Kind != shape.Matrix || db.Kind != shape.Matrix ||
		da.Rows != db.Rows || da.Cols != db.Cols {
		return dimensionError("matrix.ValidateSameShape", da, db)
	}

	return nil
}

// ValidateMulCompatible checks that a·b is defined: a is R×K and b is K×C,
// or one side is a vector whose length matches the inner dimension.
func ValidateMulCompatible(a, b shape.Shaper) error {
	da, db := a.Shape(), b.Shape()
	if _, err := shape.Product(da, db); err != nil {
		return errors.Mark(err, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is a square matrix.
//
// Errors:
//   - ErrNonSquare (also matching shape.ErrIncompatibleShape).
func ValidateSquare(m shape.Shaper) error {
	d := m.Shape()
	if d.Kind != shape.Matrix || d.Rows != d.Cols {
		return nonSquareError("matrix.ValidateSquare", d)
	}

	return nil
}

// ValidateVecLen checks that v is a vector of length n.
func ValidateVecLen(v shape.Shaper, n int) error {
	d := v.Shape()
	if d.Kind != shape.Vector || d.Len != n {
		return errors.Mark(errors.Wrapf(shape.ErrIncompatibleShape,
			"matrix.ValidateVecLen: %s, want length %d", d, n), ErrDimensionMismatch)
	}

	return nil
}

// must panics with err when it is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
