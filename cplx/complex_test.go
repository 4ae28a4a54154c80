// SPDX-License-Identifier: MIT

package cplx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/cplx"
	"github.com/katalvlaran/lvlinalg/internal/testutil"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

func TestMul_ByIRotates(t *testing.T) {
	t.Parallel()
	got := cplx.Mul(cplx.New(3, 4), cplx.New(0, 1))
	assert.True(t, got.Equal(cplx.New(-4, 3)))
	assert.Equal(t, "(-4, 3)", got.String())
}

func TestAliasing(t *testing.T) {
	t.Parallel()
	c := cplx.New(1.5, -2.0)
	assert.Equal(t, c.X(), c.Real())
	assert.Equal(t, c.Y(), c.Imag())

	c.SetImag(7)
	assert.Equal(t, 7.0, c.Y())
	c.SetX(3)
	assert.Equal(t, 3.0, c.Real())
	assert.Equal(t, []float64{3, 7}, c.Elems())
}

func TestShape(t *testing.T) {
	t.Parallel()
	c := cplx.New[float32](1, 2)
	assert.Equal(t, shape.ComplexOf(numeric.Float32, shape.Padded), c.Shape())
	assert.True(t, shape.IsComplex(c))

	d, err := shape.PromoteValues(c, 2.0)
	require.NoError(t, err)
	assert.Equal(t, shape.ComplexOf(numeric.Float64, shape.Padded), d)

	require.ErrorIs(t, vector.Compatible(c, vector.New(1.0, 2.0)), shape.ErrNoCommonType)
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a, b := cplx.New(1, 2), cplx.New(3, -1)
	tests := []struct {
		name string
		got  cplx.Complex[int]
		want cplx.Complex[int]
	}{
		{"add", cplx.Add(a, b), cplx.New(4, 1)},
		{"sub", cplx.Sub(a, b), cplx.New(-2, 3)},
		{"mul", cplx.Mul(a, b), cplx.New(5, 5)},
		{"div exact", cplx.Div(cplx.New(5, 5), b), a},
		{"add scalar", cplx.AddScalar(a, 10), cplx.New(11, 2)},
		{"mul scalar", cplx.MulScalar(a, 3), cplx.New(3, 6)},
		{"neg", cplx.Neg(a), cplx.New(-1, -2)},
		{"conj", cplx.Conj(a), cplx.New(1, -2)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Truef(t, tc.got.Equal(tc.want), "got %s, want %s", tc.got, tc.want)
		})
	}
	assert.Equal(t, 5, cplx.NormSquared(a))
	assert.Equal(t, 5, a.NormSquared())
}

func TestPromote(t *testing.T) {
	t.Parallel()
	a, b := cplx.Promote[float64](cplx.New(1, 2), cplx.New(0.5, 0.5))
	assert.True(t, cplx.Add(a, b).Equal(cplx.New(1.5, 2.5)))
	testutil.RequirePanicsIs(t, shape.ErrNoCommonType, func() {
		cplx.Promote[int](cplx.New(1, 2), cplx.New(0.5, 0.5))
	})
}

func TestFromVector(t *testing.T) {
	t.Parallel()
	c := cplx.FromVector(vector.NewPacked(1, 2))
	assert.Equal(t, shape.Packed, c.Layout())
	testutil.RequirePanicsIs(t, shape.ErrIncompatibleShape, func() { cplx.FromVector(vector.New(1, 2, 3)) })
}

func TestTranscendental(t *testing.T) {
	t.Parallel()
	c := cplx.New(3.0, 4.0)
	assert.Equal(t, 5.0, cplx.Abs(c))
	assert.InDelta(t, math.Atan2(4, 3), cplx.Arg(c), 1e-15)

	r, theta := cplx.Polar(c)
	back := cplx.FromPolar(r, theta)
	assert.InDelta(t, 3.0, back.Real(), 1e-12)
	assert.InDelta(t, 4.0, back.Imag(), 1e-12)

	e := cplx.Exp(cplx.New(0, math.Pi))
	assert.InDelta(t, -1.0, e.Real(), 1e-15)
	assert.InDelta(t, 0.0, e.Imag(), 1e-15)

	l := cplx.Log(cplx.New(-1.0, 0))
	assert.InDelta(t, 0.0, l.Real(), 1e-15)
	assert.InDelta(t, math.Pi, l.Imag(), 1e-15)

	s := cplx.Sqrt(cplx.New(-4.0, 0))
	assert.True(t, s.Equal(cplx.New(0.0, 2.0)))

	p := cplx.Pow(cplx.New(0.0, 1.0), cplx.New(2.0, 0.0))
	assert.InDelta(t, -1.0, p.Real(), 1e-15)
	assert.InDelta(t, 0.0, p.Imag(), 1e-15)

	assert.InEpsilon(t, 1e200*math.Sqrt2, cplx.Abs(cplx.New(1e200, 1e200)), 1e-15)
	testutil.RequireAssertion(t, func() { cplx.Log(cplx.New(0.0, 0.0)) })
}

func TestBuiltinBridge(t *testing.T) {
	t.Parallel()
	c := cplx.FromComplex128[float32](complex(1.5, -2))
	assert.Equal(t, complex(1.5, -2), c.Complex128())
}
