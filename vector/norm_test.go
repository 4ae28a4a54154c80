// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlinalg/internal/testutil"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

func TestDotCross(t *testing.T) {
	t.Parallel()
	a, b := vector.New(1, 2, 3), vector.New(4, 5, 6)
	assert.Equal(t, 32, vector.Dot(a, b))
	assert.Equal(t, vector.Dot(a, b), vector.Dot(b, a))

	c := vector.Cross(a, b)
	assert.Equal(t, []int{-3, 6, -3}, c.Elems())
	assert.True(t, c.Equal(vector.Neg(vector.Cross(b, a))))
	assert.Zero(t, vector.Dot(a, c))
	assert.Zero(t, vector.Dot(b, c))

	x, y := vector.Unit[float64](3, 0), vector.Unit[float64](3, 1)
	assert.True(t, vector.Cross(x, y).Equal(vector.Unit[float64](3, 2)))

	testutil.RequirePanicsIs(t, shape.ErrIncompatibleShape, func() {
		vector.Cross(vector.New(1, 2), vector.New(3, 4))
	})
}

func TestNorms(t *testing.T) {
	t.Parallel()
	v := vector.New(3.0, 4.0)
	assert.Equal(t, 25.0, vector.NormSquared(v))
	assert.Equal(t, 5.0, vector.Norm(v))
	assert.Equal(t, 5.0, vector.FastNorm(v))
	assert.Equal(t, 7.0, vector.PNorm(v, 1))
	assert.Equal(t, 4.0, vector.PNorm(v, math.Inf(1)))
	assert.InDelta(t, 5.0, vector.FastPNorm(v, 2), 1e-12)

	assert.Equal(t, 5.0, vector.Distance(vector.New(1.0, 1.0), vector.New(4.0, 5.0)))
	assert.Equal(t, 5.0, vector.FastDistance(vector.New(1.0, 1.0), vector.New(4.0, 5.0)))
	assert.Equal(t, 25, vector.DistanceSquared(vector.New(1, 1), vector.New(4, 5)))

	n := vector.Normalize(v)
	assert.Equal(t, []float64{0.6, 0.8}, n.Elems())
	assert.Equal(t, n.Elems(), vector.FastNormalize(v).Elems())

	testutil.RequireAssertion(t, func() { vector.PNorm(v, 0) })
}

func TestNorm_SafePathAvoidsOverflow(t *testing.T) {
	t.Parallel()
	v := vector.New(1e200, 1e200)
	assert.True(t, math.IsInf(vector.NormSquared(v), 1), "the naive sum overflows")
	assert.True(t, math.IsInf(vector.FastNorm(v), 1), "the fast path has no guard")
	assert.InEpsilon(t, 1e200*math.Sqrt2, vector.Norm(v), 1e-15)
	assert.InEpsilon(t, 1e200*math.Sqrt2, vector.PNorm(v, 2), 1e-15)
	assert.InEpsilon(t, 1e200*math.Sqrt2, vector.Distance(v, vector.Neg(vector.New(0.0, 0.0))), 1e-15)

	f := vector.New[float32](3e30, 4e30)
	assert.InEpsilon(t, float32(5e30), vector.Norm(f), 1e-6)
}

func TestNorm_SafePathAvoidsUnderflow(t *testing.T) {
	t.Parallel()
	v := vector.New(1e-200, 1e-200)
	assert.Zero(t, vector.NormSquared(v), "the naive sum underflows")
	assert.False(t, v.EqualScalar(0))
	assert.InEpsilon(t, 1e-200*math.Sqrt2, vector.Norm(v), 1e-15)
	assert.InEpsilon(t, 1e-200*math.Sqrt2, vector.PNorm(v, 2), 1e-15)
	assert.InEpsilon(t, 1e-200*math.Sqrt2, vector.Distance(v, vector.New(0.0, 0.0)), 1e-15)

	n := vector.Normalize(v)
	assert.InDelta(t, math.Sqrt2/2, n.X(), 1e-15)
	assert.InDelta(t, math.Sqrt2/2, n.Y(), 1e-15)

	f := vector.New[float32](1e-30, 1e-30)
	assert.NotZero(t, vector.Norm(f))
	assert.InEpsilon(t, float32(1e-30*math.Sqrt2), vector.Norm(f), 1e-6)
	assert.InDelta(t, float32(1), vector.Norm(vector.Normalize(f)), 1e-6)
}

func TestNormalize_ZeroVector(t *testing.T) {
	t.Parallel()
	z := vector.Normalize(vector.New(0.0, 0.0, 0.0))
	assert.True(t, vector.AllOf(z, math.IsNaN))
}

func TestElementwise(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{1, 2, 0}, vector.Abs(vector.New(-1, 2, 0)).Elems())
	assert.Equal(t, []float64{2, 3}, vector.Sqrt(vector.New(4.0, 9.0)).Elems())
	assert.Equal(t, []float64{1, -2}, vector.Floor(vector.New(1.5, -1.5)).Elems())
	assert.Equal(t, []float64{2, -1}, vector.Ceil(vector.New(1.5, -1.5)).Elems())
	assert.Equal(t, []float64{0.25, 0.75}, vector.Fract(vector.New(1.25, -1.25)).Elems())
	assert.Equal(t, []int{4, -3, -3, 4},
		vector.CeilDivide(vector.New(7, -7, 7, -7), vector.New(2, 2, -2, -2)).Elems())
	assert.Equal(t, []int{3, 1, 0}, vector.CeilDivideScalar(vector.New(9, 1, 0), 4).Elems())
	assert.Equal(t, []int{3, 2, 1}, vector.Reverse(vector.New(1, 2, 3)).Elems())
	assert.Equal(t, []int{4, 3, 2, 1}, vector.Reverse(vector.New(1, 2, 3, 4)).Elems())

	a, b := vector.New(1, 5, 3), vector.New(2, 4, 3)
	assert.Equal(t, []int{1, 4, 3}, vector.Min(a, b).Elems())
	assert.Equal(t, []int{2, 5, 3}, vector.Max(a, b).Elems())
	assert.Equal(t, []int{2, 4, 3}, vector.Clamp(vector.New(0, 9, 3), vector.Broadcast(3, 2), vector.Broadcast(3, 4)).Elems())
	assert.Equal(t, []float64{0.5, 1}, vector.Lerp(vector.New(0.0, 0.0), vector.New(1.0, 2.0), 0.5).Elems())
	assert.Equal(t, 9, vector.Sum(a))
	assert.Equal(t, 1, vector.MinElem(a))
	assert.Equal(t, 5, vector.MaxElem(a))
}
