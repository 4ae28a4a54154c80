// SPDX-License-Identifier: MIT

// Package matrix: linear-algebra kernels.
//
// Purpose:
//   - Products (Mul, MulVec, VecMul), Transpose and the square-only
//     reductions Trace, Determinant and Inverse.
//
// Notes:
//   - Loop orders are fixed (i→k→j for products) so float results are
//     reproducible bit for bit across runs and platforms.
//   - Shape errors panic before any arithmetic; Inverse alone reports
//     data-dependent failures through its error return.
package matrix

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Mul returns the matrix product a·b of an R×K and a K×C matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); panic on mismatch.
//   - Stage 2: triple loop i→k→j accumulating aik·bkj into out[i,j].
//
// Behavior highlights:
//   - The result layout is packed only when both operands are packed.
//   - Integer types wrap on overflow like the built-in operators.
//
// Panics:
//   - ErrDimensionMismatch (also shape.ErrIncompatibleShape) when a.Cols != b.Rows.
//
// Complexity:
//   - Time O(R·K·C), no heap allocation.
func Mul[T numeric.Real](a, b Matrix[T]) Matrix[T] {
	// Validate inner dimension
	if a.cols != b.rows {
		panic(dimensionError(opMul, a.Shape(), b.Shape()))
	}

	r, k, c := a.Rows(), a.Cols(), b.Cols()
	out := empty[T](r, c, shape.Combine(a.layout, b.layout))
	for i := 0; i < r; i++ {
		for p := 0; p < k; p++ {
			aik := a.e[i*k+p]
			for j := 0; j < c; j++ {
				out.e[i*c+j] += aik * b.e[p*c+j]
			}
		}
	}

	return out
}

// MulVec returns the column product m·v (len(v) == Cols, result length Rows).
func MulVec[T numeric.Real](m Matrix[T], v vector.Vector[T]) vector.Vector[T] {
	if v.Len() != m.Cols() {
		panic(dimensionError(opMulVec, m.Shape(), v.Shape()))
	}

	c := m.Cols()
	out := vector.GenerateIndexed(m.Rows(), func(i int) T {
		var sum T
		for j := 0; j < c; j++ {
			sum += m.e[i*c+j] * v.At(j)
		}
		return sum
	})

	return out.WithLayout(shape.Combine(m.layout, v.Layout()))
}

// VecMul returns the row product v·m (len(v) == Rows, result length Cols).
func VecMul[T numeric.Real](v vector.Vector[T], m Matrix[T]) vector.Vector[T] {
	if v.Len() != m.Rows() {
		panic(dimensionError(opVecMul, v.Shape(), m.Shape()))
	}

	c := m.Cols()
	out := vector.GenerateIndexed(c, func(j int) T {
		var sum T
		for i := 0; i < m.Rows(); i++ {
			sum += v.At(i) * m.e[i*c+j]
		}
		return sum
	})

	return out.WithLayout(shape.Combine(v.Layout(), m.layout))
}

// Transpose returns the C×R matrix with out[j,i] = m[i,j].
func Transpose[T numeric.Real](m Matrix[T]) Matrix[T] {
	r, c := m.Rows(), m.Cols()
	out := empty[T](c, r, m.layout)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.e[j*r+i] = m.e[i*c+j]
		}
	}

	return out
}

// Trace returns the sum of the main diagonal of a square matrix.
func Trace[T numeric.Real](m Matrix[T]) T {
	if !m.IsSquare() {
		panic(nonSquareError(opTrace, m.Shape()))
	}

	var sum T
	for i := 0; i < m.Rows(); i++ {
		sum += m.e[i*m.Cols()+i]
	}

	return sum
}

// Determinant returns det(m) of a square matrix by Laplace expansion along
// the first row.
//
// Behavior highlights:
//   - Uses only +, - and ·, so integer determinants are exact (modulo
//     wrap-around on overflow).
//   - 1×1, 2×2 and 3×3 are closed forms; larger matrices expand along the
//     first row, skipping zero entries.
//
// Complexity:
//   - O(1) up to 3×3, O(n!) above. For 7×7 and 8×8 float matrices prefer
//     the product of LU's diagonal.
//
// Panics:
//   - ErrNonSquare (also shape.ErrIncompatibleShape).
func Determinant[T numeric.Real](m Matrix[T]) T {
	if !m.IsSquare() {
		panic(nonSquareError(opDeterminant, m.Shape()))
	}

	return det(m)
}

func det[T numeric.Real](m Matrix[T]) T {
	e := &m.e
	switch m.Rows() {
	case 1:
		return e[0]
	case 2:
		return e[0]*e[3] - e[1]*e[2]
	case 3:
		return e[0]*(e[4]*e[8]-e[5]*e[7]) -
			e[1]*(e[3]*e[8]-e[5]*e[6]) +
			e[2]*(e[3]*e[7]-e[4]*e[6])
	}

	var sum T
	for j := 0; j < m.Cols(); j++ {
		if e[j] == 0 {
			continue
		}
		minor := det(m.Submatrix(0, j))
		if j%2 == 0 {
			sum += e[j] * minor
		} else {
			sum -= e[j] * minor
		}
	}

	return sum
}

// Inverse returns m⁻¹ for a square float matrix.
//
// Implementation:
//   - Stage 1: validate squareness (panic) and, unless disabled, that every
//     cell is finite.
//   - Stage 2: Gauss-Jordan on the augmented [m | I]. For each column the
//     row with the largest |pivot| at or below the diagonal is swapped up
//     (partial pivoting), the pivot row is normalized and the column is
//     eliminated from every other row.
//
// Behavior highlights:
//   - Pivoting keeps well-conditioned matrices with a zero leading entry,
//     such as ((0, 1), (1, 0)), invertible.
//
// Inputs:
//   - m: square matrix.
//   - opts: WithEpsilon (default DefaultEpsilon), WithNoValidateNaNInf.
//
// Returns:
//   - the inverse, or the zero value with an error.
//
// Errors:
//   - ErrSingular when the best pivot of some column has |pivot| <= eps.
//   - ErrNaNInf when validation is enabled and m holds NaN or ±Inf.
//
// Panics:
//   - ErrNonSquare (also shape.ErrIncompatibleShape).
//
// Complexity:
//   - Time O(n³), no heap allocation.
func Inverse[T numeric.Float](m Matrix[T], opts ...Option) (Matrix[T], error) {
	if !m.IsSquare() {
		panic(nonSquareError(opInverse, m.Shape()))
	}
	o := gatherOptions(opts...)

	// Reject non-finite input before touching the data
	if o.validateNaNInf {
		for k := 0; k < m.n(); k++ {
			if isNonFinite(float64(m.e[k])) {
				i, j := k/m.Cols(), k%m.Cols()
				return Matrix[T]{}, matrixErrorf(opInverse,
					errors.Wrapf(ErrNaNInf, "cell (%d, %d) = %v", i, j, m.e[k]))
			}
		}
	}

	n := m.Rows()
	a := m
	inv := Identity[T](n).WithLayout(m.layout)
	for col := 0; col < n; col++ {
		// Choose pivot row
		p := col
		best := math.Abs(float64(a.e[col*n+col]))
		for r := col + 1; r < n; r++ {
			if v := math.Abs(float64(a.e[r*n+col])); v > best {
				p, best = r, v
			}
		}
		if best <= o.eps {
			return Matrix[T]{}, matrixErrorf(opInverse,
				errors.Wrapf(ErrSingular, "column %d: |pivot| = %g <= %g", col, best, o.eps))
		}
		if p != col {
			swapRows(&a, p, col)
			swapRows(&inv, p, col)
		}

		// Normalize pivot row
		piv := a.e[col*n+col]
		for j := 0; j < n; j++ {
			a.e[col*n+j] /= piv
			inv.e[col*n+j] /= piv
		}

		// Eliminate column from the other rows
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := a.e[r*n+col]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a.e[r*n+j] -= f * a.e[col*n+j]
				inv.e[r*n+j] -= f * inv.e[col*n+j]
			}
		}
	}

	return inv, nil
}

func swapRows[T numeric.Real](m *Matrix[T], r1, r2 int) {
	c := m.Cols()
	for j := 0; j < c; j++ {
		m.e[r1*c+j], m.e[r2*c+j] = m.e[r2*c+j], m.e[r1*c+j]
	}
}

// LU factors a square float matrix as m = L·U with Doolittle's scheme: L is
// unit lower triangular, U upper triangular. No pivoting is performed, so a
// zero leading minor fails even when m is invertible; use Inverse for
// solving.
//
// Errors:
//   - ErrSingular when some |U[i,i]| <= eps (WithEpsilon) and a later row
//     still needs to divide by it.
//
// Panics:
//   - ErrNonSquare (also shape.ErrIncompatibleShape).
func LU[T numeric.Float](m Matrix[T], opts ...Option) (Matrix[T], Matrix[T], error) {
	if !m.IsSquare() {
		panic(nonSquareError(opLU, m.Shape()))
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	l := Identity[T](n).WithLayout(m.layout)
	u := Zeros[T](n, n).WithLayout(m.layout)
	for i := 0; i < n; i++ {
		// Row i of U
		for j := i; j < n; j++ {
			var sum T
			for k := 0; k < i; k++ {
				sum += l.e[i*n+k] * u.e[k*n+j]
			}
			u.e[i*n+j] = m.e[i*n+j] - sum
		}
		if i == n-1 {
			break
		}

		// Column i of L
		piv := u.e[i*n+i]
		if math.Abs(float64(piv)) <= o.eps {
			return Matrix[T]{}, Matrix[T]{}, matrixErrorf(opLU,
				errors.Wrapf(ErrSingular, "zero pivot at %d", i))
		}
		for j := i + 1; j < n; j++ {
			var sum T
			for k := 0; k < i; k++ {
				sum += l.e[j*n+k] * u.e[k*n+i]
			}
			l.e[j*n+i] = (m.e[j*n+i] - sum) / piv
		}
	}

	return l, u, nil
}
