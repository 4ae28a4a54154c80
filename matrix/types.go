// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlinalg/internal/align"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
)

// MaxDim is the largest supported row or column count. Equal to
// vector.MaxLen so every row and column fits in a Vector.
const MaxDim = 8

// Matrix is a rows×cols grid of T stored row-major: element (i, j) lives in
// slot i*cols + j. Slots past rows*cols are always zero.
//
// The zero Matrix has no rows and is not a valid operand.
type Matrix[T numeric.Real] struct {
	e          [MaxDim * MaxDim]T
	rows, cols uint8
	layout     shape.Layout
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return int(m.rows) }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return int(m.cols) }

// Dims returns (rows, cols).
func (m Matrix[T]) Dims() (int, int) { return m.Rows(), m.Cols() }

// IsSquare reports whether rows == cols.
func (m Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// Layout returns the storage layout.
func (m Matrix[T]) Layout() shape.Layout { return m.layout }

// IsPacked reports whether m uses the packed layout.
func (m Matrix[T]) IsPacked() bool { return m.layout == shape.Packed }

// WithLayout returns a copy of m with layout l.
func (m Matrix[T]) WithLayout(l shape.Layout) Matrix[T] {
	m.layout = l
	return m
}

// Shape describes m for the promotion rules.
func (m Matrix[T]) Shape() shape.Descriptor {
	return shape.MatrixOf(numeric.KindOf[T](), m.Rows(), m.Cols(), m.layout)
}

// Footprint returns the storage size in bytes. Padded matrices round each
// row up to a power of two (a padded 3×3 occupies 3×4 slots).
func (m Matrix[T]) Footprint() int {
	stride := m.Cols()
	if m.layout == shape.Padded {
		stride = align.NextPow2(stride)
	}
	return m.Rows() * stride * numeric.KindOf[T]().Size()
}

// Alignment returns the storage alignment in bytes.
func (m Matrix[T]) Alignment() int {
	size := numeric.KindOf[T]().Size()
	if m.layout == shape.Packed {
		return size
	}
	return align.For(align.NextPow2(m.Cols()) * size)
}

// n returns rows*cols.
func (m Matrix[T]) n() int { return int(m.rows) * int(m.cols) }

// empty returns a zero rows×cols matrix with layout l.
func empty[T numeric.Real](rows, cols int, l shape.Layout) Matrix[T] {
	return Matrix[T]{rows: uint8(rows), cols: uint8(cols), layout: l}
}
