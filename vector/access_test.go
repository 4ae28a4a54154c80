// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlinalg/internal/testutil"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

func TestNamedViewsShareSlots(t *testing.T) {
	t.Parallel()
	v := vector.New(1, 2, 3, 4)
	assert.Equal(t, v.X(), v.R())
	assert.Equal(t, v.W(), v.A())

	v.SetR(9)
	assert.Equal(t, 9, v.X())
	v.SetZ(7)
	assert.Equal(t, 7, v.B())

	v.SetXY(vector.New(5, 6))
	assert.Equal(t, []int{5, 6}, v.RG().Elems())
	v.SetRGB(vector.New(-1, -2, -3))
	assert.Equal(t, []int{-1, -2, -3, 4}, v.Elems())
	assert.Equal(t, v.XYZ().Elems(), v.RGB().Elems())

	testutil.RequirePanicsIs(t, shape.ErrIncompatibleShape, func() { v.SetXY(vector.New(1, 2, 3)) })
}

func TestAtBounds(t *testing.T) {
	t.Parallel()
	v := vector.New(1.0, 2.0)
	assert.Equal(t, 2.0, v.At(1))
	testutil.RequireAssertion(t, func() { v.At(2) })
	testutil.RequireAssertion(t, func() { v.At(-1) })
	testutil.RequireAssertion(t, func() { v.Z() })
	testutil.RequireAssertion(t, func() { v.XYZ() })
}

func TestIteration(t *testing.T) {
	t.Parallel()
	v := vector.New(10, 20, 30)
	var idx, vals []int
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []int{10, 20, 30}, vals)

	var sum int
	for x := range v.Values() {
		if x == 30 {
			break
		}
		sum += x
	}
	assert.Equal(t, 30, sum)
}

func TestSwizzle(t *testing.T) {
	t.Parallel()
	v := vector.New(10, 20, 30, 40)
	assert.Equal(t, "(40, 10)", v.Swizzle(3, 0).String())
	assert.Equal(t, []int{30, 20, 10}, v.XYZ().Swizzle(2, 1, 0).Elems())
	assert.Equal(t, []int{20, 20, 20, 20}, v.Swizzle(1, 1, 1, 1).Elems())
	assert.True(t, vector.NewPacked(1, 2).Swizzle(0).IsPacked())

	testutil.RequireAssertion(t, func() { v.XY().Swizzle(2) })
	testutil.RequirePanicsIs(t, vector.ErrInvalidLength, func() { v.Swizzle(0, 1, 2, 3, 0, 1, 2, 3, 0) })
	assert.Equal(t, []int{40, 30, 20, 10, 10, 20, 30, 40}, v.Swizzle(3, 2, 1, 0, 0, 1, 2, 3).Elems())
}
