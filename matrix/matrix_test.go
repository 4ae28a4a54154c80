// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/internal/testutil"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

func TestNew_RowMajor(t *testing.T) {
	t.Parallel()
	m := matrix.New(2, 3, 1, 2, 3, 4, 5, 6)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.At(1, 2))
	assert.Equal(t, 4, m.At(1, 0))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Elems())
	assert.False(t, m.IsSquare())
	assert.Equal(t, "matrix<int,2x3>", m.Shape().String())
}

func TestNew_InvalidShape(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		rows, cols int
		xs         []float64
	}{
		{"zero rows", 0, 2, nil},
		{"too many cols", 2, 9, nil},
		{"short values", 2, 2, []float64{1, 2, 3}},
		{"long values", 1, 2, []float64{1, 2, 3}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			testutil.RequirePanicsIs(t, matrix.ErrBadShape, func() {
				_ = matrix.New(tc.rows, tc.cols, tc.xs...)
			})
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()
	assert.True(t, matrix.Zeros[float64](3, 2).EqualScalar(0))
	assert.True(t, matrix.Broadcast(2, 4, int8(7)).EqualScalar(7))
	assert.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}, matrix.Identity[int](3).Elems())

	g := matrix.Generate(2, 2, func(i, j int) int { return 10*i + j })
	assert.Equal(t, []int{0, 1, 10, 11}, g.Elems())

	rows := matrix.FromRows(vector.New(1, 2, 3), vector.New(4, 5, 6))
	cols := matrix.FromCols(vector.New(1, 4), vector.New(2, 5), vector.New(3, 6))
	assert.True(t, rows.Equal(cols))

	testutil.RequirePanicsIs(t, shape.ErrIncompatibleShape, func() {
		_ = matrix.FromRows(vector.New(1, 2), vector.New(1, 2, 3))
	})
	testutil.RequirePanicsIs(t, matrix.ErrBadShape, func() {
		_ = matrix.FromCols[int]()
	})
}

func TestRowColAccess(t *testing.T) {
	t.Parallel()
	m := matrix.New(3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, []int{4, 5, 6}, m.Row(1).Elems())
	assert.Equal(t, []int{3, 6, 9}, m.Col(2).Elems())

	m.SetRow(0, vector.New(-1, -2, -3))
	m.SetCol(1, vector.New(0, 0, 0))
	m.Set(2, 2, 42)
	assert.Equal(t, []int{-1, 0, -3, 4, 0, 6, 7, 0, 42}, m.Elems())

	testutil.RequirePanicsIs(t, matrix.ErrDimensionMismatch, func() {
		m.SetRow(0, vector.New(1, 2))
	})
	testutil.RequireAssertion(t, func() { _ = m.At(3, 0) })
	testutil.RequireAssertion(t, func() { m.Set(0, -1, 1) })
}

func TestAllAndSubmatrix(t *testing.T) {
	t.Parallel()
	m := matrix.New(2, 2, 1, 2, 3, 4)
	var got []int
	for ij, x := range m.All() {
		got = append(got, ij[0], ij[1], x)
	}
	assert.Equal(t, []int{0, 0, 1, 0, 1, 2, 1, 0, 3, 1, 1, 4}, got)

	n := matrix.New(3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, []int{1, 3, 7, 9}, n.Submatrix(1, 1).Elems())
	testutil.RequirePanicsIs(t, matrix.ErrBadShape, func() {
		_ = matrix.New(1, 3, 1, 2, 3).Submatrix(0, 0)
	})
}

func TestLayoutFootprint(t *testing.T) {
	t.Parallel()
	padded := matrix.New[float32](3, 3)
	assert.False(t, padded.IsPacked())
	assert.Equal(t, 48, padded.Footprint())
	assert.LessOrEqual(t, padded.Alignment(), 16)

	packed := matrix.NewPacked[float32](3, 3)
	assert.True(t, packed.IsPacked())
	assert.Equal(t, 36, packed.Footprint())
	assert.Equal(t, 4, packed.Alignment())
	assert.Equal(t, shape.Packed, packed.Shape().Layout)
	assert.Equal(t, numeric.Float32, packed.Shape().Elem)
	assert.True(t, padded.Equal(packed))
}
