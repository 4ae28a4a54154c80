// SPDX-License-Identifier: MIT

// Package matrix: construction and element access.
package matrix

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/internal/check"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

// New returns the padded rows×cols matrix holding xs in row-major order.
//
// Inputs:
//   - rows, cols in [1, MaxDim].
//   - xs: exactly rows*cols values, or none for the zero matrix.
//
// Panics:
//   - ErrBadShape on dimensions out of range or a value count mismatch.
//
// Example:
//
//	m := matrix.New(2, 2, 1, 2, 3, 4) // ((1, 2), (3, 4))
func New[T numeric.Real](rows, cols int, xs ...T) Matrix[T] {
	return build(opNew, rows, cols, xs, shape.Padded)
}

// NewPacked is New with the packed layout.
func NewPacked[T numeric.Real](rows, cols int, xs ...T) Matrix[T] {
	return build(opNew, rows, cols, xs, shape.Packed)
}

func build[T numeric.Real](op string, rows, cols int, xs []T, l shape.Layout) Matrix[T] {
	mustDims(op, rows, cols)
	if len(xs) != 0 && len(xs) != rows*cols {
		panic(matrixErrorf(op, errors.Wrapf(ErrBadShape,
			"%dx%d needs %d values, got %d", rows, cols, rows*cols, len(xs))))
	}
	m := empty[T](rows, cols, l)
	copy(m.e[:], xs)

	return m
}

// Zeros returns the rows×cols zero matrix.
func Zeros[T numeric.Real](rows, cols int) Matrix[T] {
	return New[T](rows, cols)
}

// Identity returns the n×n identity matrix.
func Identity[T numeric.Real](n int) Matrix[T] {
	m := New[T](n, n)
	for i := 0; i < n; i++ {
		m.e[i*n+i] = 1
	}

	return m
}

// Broadcast returns the rows×cols matrix with x in every cell.
func Broadcast[T numeric.Real](rows, cols int, x T) Matrix[T] {
	return Generate(rows, cols, func(int, int) T { return x })
}

// Generate returns the matrix whose (i, j) cell is f(i, j). f is called once
// per cell in row-major order.
func Generate[T numeric.Real](rows, cols int, f func(i, j int) T) Matrix[T] {
	m := New[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.e[i*cols+j] = f(i, j)
		}
	}

	return m
}

// FromRows stacks equally long row vectors into a len(rows)×n matrix.
func FromRows[T numeric.Real](rows ...vector.Vector[T]) Matrix[T] {
	if len(rows) == 0 {
		badShape(opFromRows, 0, 0)
	}
	cols := rows[0].Len()
	m := New[T](len(rows), cols)
	for i, r := range rows {
		if r.Len() != cols {
			panic(dimensionError(opFromRows, rows[0].Shape(), r.Shape()))
		}
		copy(m.e[i*cols:], r.Elems())
	}

	return m
}

// FromCols places equally long column vectors side by side into an
// n×len(cols) matrix.
func FromCols[T numeric.Real](cols ...vector.Vector[T]) Matrix[T] {
	if len(cols) == 0 {
		badShape(opFromCols, 0, 0)
	}
	rows := cols[0].Len()
	m := New[T](rows, len(cols))
	for j, c := range cols {
		if c.Len() != rows {
			panic(dimensionError(opFromCols, cols[0].Shape(), c.Shape()))
		}
		for i := 0; i < rows; i++ {
			m.e[i*len(cols)+j] = c.At(i)
		}
	}

	return m
}

// At returns the (i, j) cell. Bounds are asserted in debug builds.
func (m Matrix[T]) At(i, j int) T {
	check.Index(i, m.Rows())
	check.Index(j, m.Cols())
	return m.e[i*m.Cols()+j]
}

// Set stores x at (i, j). Bounds are asserted in debug builds.
func (m *Matrix[T]) Set(i, j int, x T) {
	check.Index(i, m.Rows())
	check.Index(j, m.Cols())
	m.e[i*m.Cols()+j] = x
}

// Row returns row i as a vector with m's layout.
func (m Matrix[T]) Row(i int) vector.Vector[T] {
	check.Index(i, m.Rows())
	c := m.Cols()
	return vector.New(m.e[i*c : i*c+c]...).WithLayout(m.layout)
}

// Col returns column j as a vector with m's layout.
func (m Matrix[T]) Col(j int) vector.Vector[T] {
	check.Index(j, m.Cols())
	return vector.GenerateIndexed(m.Rows(), func(i int) T {
		return m.e[i*m.Cols()+j]
	}).WithLayout(m.layout)
}

// SetRow overwrites row i with v. len(v) must equal Cols.
func (m *Matrix[T]) SetRow(i int, v vector.Vector[T]) {
	check.Index(i, m.Rows())
	if v.Len() != m.Cols() {
		panic(dimensionError(opSetRow, m.Shape(), v.Shape()))
	}
	copy(m.e[i*m.Cols():], v.Elems())
}

// SetCol overwrites column j with v. len(v) must equal Rows.
func (m *Matrix[T]) SetCol(j int, v vector.Vector[T]) {
	check.Index(j, m.Cols())
	if v.Len() != m.Rows() {
		panic(dimensionError(opSetCol, m.Shape(), v.Shape()))
	}
	for i := 0; i < m.Rows(); i++ {
		m.e[i*m.Cols()+j] = v.At(i)
	}
}

// Elems returns a row-major copy of the cells.
func (m Matrix[T]) Elems() []T {
	out := make([]T, m.n())
	copy(out, m.e[:m.n()])
	return out
}

// All yields ((i, j), value) pairs in row-major order.
func (m Matrix[T]) All() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				if !yield([2]int{i, j}, m.e[i*m.Cols()+j]) {
					return
				}
			}
		}
	}
}

// Submatrix returns m without row r and column c. m must be at least 2×2.
func (m Matrix[T]) Submatrix(r, c int) Matrix[T] {
	check.Index(r, m.Rows())
	check.Index(c, m.Cols())
	if m.rows < 2 || m.cols < 2 {
		badShape(opSubmatrix, m.Rows()-1, m.Cols()-1)
	}
	out := empty[T](m.Rows()-1, m.Cols()-1, m.layout)
	k := 0
	for i := 0; i < m.Rows(); i++ {
		if i == r {
			continue
		}
		for j := 0; j < m.Cols(); j++ {
			if j == c {
				continue
			}
			out.e[k] = m.e[i*m.Cols()+j]
			k++
		}
	}

	return out
}
