// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlinalg/internal/testutil"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

type LinearAlgebraSuite struct {
	suite.Suite
	a, b matrix.Matrix[float64]
}

func TestLinearAlgebra(t *testing.T) {
	suite.Run(t, new(LinearAlgebraSuite))
}

func (s *LinearAlgebraSuite) SetupTest() {
	s.a = matrix.New(2, 2, 1.0, 2, 3, 4)
	s.b = matrix.New(2, 2, 5.0, 6, 7, 8)
}

func (s *LinearAlgebraSuite) TestMul() {
	s.Equal([]float64{19, 22, 43, 50}, matrix.Mul(s.a, s.b).Elems())

	r := matrix.Mul(matrix.New(2, 3, 1, 2, 3, 4, 5, 6), matrix.New(3, 2, 7, 8, 9, 10, 11, 12))
	s.Equal(2, r.Rows())
	s.Equal(2, r.Cols())
	s.Equal([]int{58, 64, 139, 154}, r.Elems())

	s.True(matrix.Mul(s.a, matrix.Identity[float64](2)).Equal(s.a))
}

func (s *LinearAlgebraSuite) TestMul_InnerMismatch() {
	testutil.RequirePanicsIs(s.T(), shape.ErrIncompatibleShape, func() {
		_ = matrix.Mul(matrix.New[int](2, 3), matrix.New[int](2, 3))
	})
}

func (s *LinearAlgebraSuite) TestMulVec() {
	v := vector.New(1.0, 1)
	s.Equal([]float64{3, 7}, matrix.MulVec(s.a, v).Elems())
	s.Equal([]float64{4, 6}, matrix.VecMul(v, s.a).Elems())

	m := matrix.New(2, 3, 1, 0, 2, 0, 1, 0)
	s.Equal([]int{7, 2}, matrix.MulVec(m, vector.New(1, 2, 3)).Elems())
	s.Equal([]int{1, 2, 2}, matrix.VecMul(vector.New(1, 2), m).Elems())

	testutil.RequirePanicsIs(s.T(), matrix.ErrDimensionMismatch, func() {
		_ = matrix.MulVec(m, vector.New(1, 2))
	})
	testutil.RequirePanicsIs(s.T(), matrix.ErrDimensionMismatch, func() {
		_ = matrix.VecMul(vector.New(1, 2, 3), m)
	})
}

func (s *LinearAlgebraSuite) TestTransposeTrace() {
	m := matrix.New(2, 3, 1, 2, 3, 4, 5, 6)
	mt := matrix.Transpose(m)
	s.Equal(3, mt.Rows())
	s.Equal([]int{1, 4, 2, 5, 3, 6}, mt.Elems())
	s.True(matrix.Transpose(mt).Equal(m))

	s.Equal(5.0, matrix.Trace(s.a))
	testutil.RequirePanicsIs(s.T(), matrix.ErrNonSquare, func() { _ = matrix.Trace(m) })
}

func (s *LinearAlgebraSuite) TestDeterminant() {
	tests := []struct {
		name string
		m    matrix.Matrix[int]
		want int
	}{
		{"1x1", matrix.New(1, 1, -7), -7},
		{"2x2", matrix.New(2, 2, 1, 2, 3, 4), -2},
		{"3x3", matrix.New(3, 3, 6, 1, 1, 4, -2, 5, 2, 8, 7), -306},
		{"4x4", matrix.New(4, 4, 1, 0, 2, -1, 3, 0, 0, 5, 2, 1, 4, -3, 1, 0, 5, 0), 30},
		{"identity", matrix.Identity[int](4), 1},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, matrix.Determinant(tc.m))
		})
	}

	testutil.RequirePanicsIs(s.T(), shape.ErrIncompatibleShape, func() {
		_ = matrix.Determinant(matrix.New[int](2, 3))
	})
}

func (s *LinearAlgebraSuite) TestInverse() {
	inv, err := matrix.Inverse(matrix.New(2, 2, 4.0, 7, 2, 6))
	s.Require().NoError(err)
	s.InDeltaSlice([]float64{0.6, -0.7, -0.2, 0.4}, inv.Elems(), 1e-15)

	m := matrix.New(3, 3, 2.0, 1, 0, 1, 3, 1, 0, 1, 4)
	inv, err = matrix.Inverse(m)
	s.Require().NoError(err)
	s.InDeltaSlice(matrix.Identity[float64](3).Elems(), matrix.Mul(m, inv).Elems(), 1e-14)
}

func (s *LinearAlgebraSuite) TestInverse_Pivoting() {
	swap := matrix.New(2, 2, 0.0, 1, 1, 0)
	inv, err := matrix.Inverse(swap)
	s.Require().NoError(err)
	s.True(inv.Equal(swap))
}

func (s *LinearAlgebraSuite) TestInverse_Errors() {
	_, err := matrix.Inverse(matrix.New(2, 2, 1.0, 2, 2, 4))
	s.True(errors.Is(err, matrix.ErrSingular), "got %v", err)

	// A tiny but non-zero pivot only passes with a looser threshold.
	tiny := matrix.New(2, 2, 1e-13, 0, 0, 1e-13)
	_, err = matrix.Inverse(tiny)
	s.True(errors.Is(err, matrix.ErrSingular))
	inv, err := matrix.Inverse(tiny, matrix.WithEpsilon(0))
	s.Require().NoError(err)
	s.InDelta(1e13, inv.At(0, 0), 1e-2)

	nan := matrix.New(2, 2, 1, math.NaN(), 0, 1)
	_, err = matrix.Inverse(nan)
	s.True(errors.Is(err, matrix.ErrNaNInf))
	_, err = matrix.Inverse(nan, matrix.WithNoValidateNaNInf())
	s.False(errors.Is(err, matrix.ErrNaNInf))

	testutil.RequirePanicsIs(s.T(), matrix.ErrNonSquare, func() {
		_, _ = matrix.Inverse(matrix.New[float64](3, 2))
	})
}

func (s *LinearAlgebraSuite) TestLU() {
	m := matrix.New(3, 3, 4.0, 3, 2, 6, 3, 1, 2, 1, 5)
	l, u, err := matrix.LU(m)
	s.Require().NoError(err)
	for i := 0; i < 3; i++ {
		s.Equal(1.0, l.At(i, i))
		for j := i + 1; j < 3; j++ {
			s.Zero(l.At(i, j))
			s.Zero(u.At(j, i))
		}
	}
	s.InDeltaSlice(m.Elems(), matrix.Mul(l, u).Elems(), 1e-14)

	_, _, err = matrix.LU(matrix.New(2, 2, 0.0, 1, 1, 0))
	s.True(errors.Is(err, matrix.ErrSingular))
}

// onesPlusIdentity returns I + J (J all ones): det = n+1 and
// (I + J)⁻¹ = I - J/(n+1).
func onesPlusIdentity[T float64 | int](n int) matrix.Matrix[T] {
	return matrix.Generate(n, n, func(i, j int) T {
		if i == j {
			return 2
		}
		return 1
	})
}

func (s *LinearAlgebraSuite) TestLargeDimensions() {
	s.Require().Equal(8, matrix.MaxDim)

	s.Run("determinant", func() {
		s.Equal(6, matrix.Determinant(onesPlusIdentity[int](5)))
		s.Equal(7, matrix.Determinant(onesPlusIdentity[int](6)))
		s.Equal(9, matrix.Determinant(onesPlusIdentity[int](8)))
		s.Equal(256, matrix.Determinant(matrix.MulScalar(matrix.Identity[int](8), 2)))

		p := matrix.Identity[int](8)
		p.SetRow(0, vector.Unit[int](8, 7))
		p.SetRow(7, vector.Unit[int](8, 0))
		s.Equal(-1, matrix.Determinant(p))
	})

	s.Run("products", func() {
		m := onesPlusIdentity[float64](8)
		s.True(matrix.Mul(matrix.Identity[float64](8), m).Equal(m))
		s.True(matrix.MulVec(m, vector.Broadcast(8, 1.0)).EqualScalar(9))
		s.True(matrix.VecMul(vector.Broadcast(8, 1.0), m).EqualScalar(9))
		s.Equal(16.0, matrix.Trace(m))

		r := matrix.Generate(5, 7, func(i, j int) int { return 10*i + j })
		rt := matrix.Transpose(r)
		s.Equal(7, rt.Rows())
		s.Equal(5, rt.Cols())
		s.Equal(46, rt.At(6, 4))
		s.Equal([]int{40, 41, 42, 43, 44, 45, 46}, r.Row(4).Elems())
	})

	s.Run("inverse", func() {
		m := onesPlusIdentity[float64](6)
		inv, err := matrix.Inverse(m)
		s.Require().NoError(err)
		want := matrix.Sub(matrix.Identity[float64](6), matrix.Broadcast(6, 6, 1.0/7))
		s.InDeltaSlice(want.Elems(), inv.Elems(), 1e-14)
		s.InDeltaSlice(matrix.Identity[float64](6).Elems(), matrix.Mul(m, inv).Elems(), 1e-14)
	})

	s.Run("lu", func() {
		m := onesPlusIdentity[float64](8)
		l, u, err := matrix.LU(m)
		s.Require().NoError(err)
		s.InDeltaSlice(m.Elems(), matrix.Mul(l, u).Elems(), 1e-13)
		prod := 1.0
		for i := 0; i < 8; i++ {
			prod *= u.At(i, i)
		}
		s.InDelta(9.0, prod, 1e-12)
	})

	testutil.RequirePanicsIs(s.T(), matrix.ErrBadShape, func() {
		_ = matrix.Zeros[float64](matrix.MaxDim+1, 1)
	})
}
