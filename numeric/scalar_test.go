// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlinalg/numeric"
)

func TestAbs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, numeric.Abs(-3))
	assert.Equal(t, uint8(7), numeric.Abs(uint8(7)))
	assert.Equal(t, 2.5, numeric.Abs(-2.5))
}

func TestCeilDivide_AllSigns(t *testing.T) {
	t.Parallel()
	cases := []struct{ a, b, want int }{
		{7, 2, 4},
		{6, 2, 3},
		{-7, 2, -3},
		{7, -2, -3},
		{-7, -2, 4},
		{0, 5, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeric.CeilDivide(tc.a, tc.b), "ceil(%d/%d)", tc.a, tc.b)
	}
	assert.Equal(t, uint(3), numeric.CeilDivide[uint](5, 2))
}

func TestFractFloorCeil(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 0.25, numeric.Fract(2.25), 1e-15)
	assert.InDelta(t, 0.75, numeric.Fract(-2.25), 1e-15)
	assert.Equal(t, -3.0, numeric.Floor(-2.25))
	assert.Equal(t, -2.0, numeric.Ceil(-2.25))
	assert.Equal(t, float32(3), numeric.Sqrt[float32](9))
}

func TestLimits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, math.MaxFloat64, numeric.MaxValue[float64]())
	assert.Equal(t, float32(math.MaxFloat32), numeric.MaxValue[float32]())
	assert.Equal(t, 0x1p-1022, numeric.MinNormal[float64]())
	assert.Equal(t, float32(0x1p-126), numeric.MinNormal[float32]())
	assert.Equal(t, 2, numeric.Cast[int](2.9))
}

func TestFolds_PreserveOrder(t *testing.T) {
	t.Parallel()
	sub := func(a, b int) int { return a - b }
	xs := []int{10, 4, 3}
	assert.Equal(t, (10-4)-3, numeric.LeftFold(xs, sub))
	assert.Equal(t, 10-(4-3), numeric.RightFold(xs, sub))

	calls := 0
	one := numeric.LeftFold([]int{42}, func(a, b int) int { calls++; return a + b })
	assert.Equal(t, 42, one)
	assert.Zero(t, calls, "a single element must not invoke the reducer")

	var order []string
	numeric.RightFold([]string{"a", "b", "c"}, func(x, y string) string {
		order = append(order, x+y)
		return x + y
	})
	assert.Equal(t, []string{"bc", "abc"}, order)

	assert.Panics(t, func() { numeric.LeftFold([]int{}, sub) })
}
