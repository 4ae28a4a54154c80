// SPDX-License-Identifier: MIT

package quat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/internal/testutil"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/quat"
	"github.com/katalvlaran/lvlinalg/vector"
)

func assertQuatInDelta(t *testing.T, want, got quat.Quaternion[float64], delta float64) {
	t.Helper()
	for n := 0; n < 4; n++ {
		require.InDeltaf(t, want.At(n), got.At(n), delta, "component %d: want %s, got %s", n, want, got)
	}
}

func TestNormInverse(t *testing.T) {
	t.Parallel()
	q := quat.New(1.0, 2.0, 2.0, 4.0)
	assert.Equal(t, 5.0, quat.Norm(q))
	assertQuatInDelta(t, quat.New(0.2, 0.4, 0.4, 0.8), quat.Normalize(q), 1e-15)
	assertQuatInDelta(t, quat.Identity[float64](), quat.Mul(q, quat.Inverse(q)), 1e-15)
	assertQuatInDelta(t, quat.Identity[float64](), quat.Mul(quat.Inverse(q), q), 1e-15)
}

func TestExpLog(t *testing.T) {
	t.Parallel()
	q := quat.New(0.5, 0.1, -0.3, 0.2)
	assertQuatInDelta(t, q, quat.Log(quat.Exp(q)), 1e-12)
	assertQuatInDelta(t, q, quat.Exp(quat.Log(q)), 1e-12)

	// e^(πi/2·k) = k, like the complex exponential on each axis.
	assertQuatInDelta(t, quat.New(0.0, 0, 0, 1), quat.Exp(quat.New(0, 0, 0, math.Pi/2)), 1e-15)
	assertQuatInDelta(t, quat.New(math.E, 0, 0, 0), quat.Exp(quat.New(1.0, 0, 0, 0)), 1e-15)
	assertQuatInDelta(t, quat.New(0.0, math.Pi, 0, 0), quat.Log(quat.New(-1.0, 0, 0, 0)), 1e-15)

	testutil.RequireAssertion(t, func() { quat.Log(quat.New(0.0, 0, 0, 0)) })
}

func TestSqrt(t *testing.T) {
	t.Parallel()
	qs := []quat.Quaternion[float64]{
		quat.New(4.0, 0, 0, 0),
		quat.New(1.0, 2, 3, 4),
		quat.New(-1.0, 0.5, 0, 0),
		quat.New(0.0, 0, 1, 0),
	}
	for _, q := range qs {
		r := quat.Sqrt(q)
		assertQuatInDelta(t, q, quat.Mul(r, r), 1e-12)
		assert.GreaterOrEqual(t, r.W(), 0.0)
	}
	testutil.RequireAssertion(t, func() { quat.Sqrt(quat.New(-4.0, 0, 0, 0)) })
}

func TestRotation(t *testing.T) {
	t.Parallel()
	q := quat.FromAxisAngle(vector.New(0.0, 0.0, 2.0), math.Pi/2)
	assert.InDelta(t, 1.0, quat.Norm(q), 1e-15)

	v := quat.Rotate(q, vector.New(1.0, 0.0, 0.0))
	assert.InDelta(t, 0.0, v.X(), 1e-15)
	assert.InDelta(t, 1.0, v.Y(), 1e-15)
	assert.InDelta(t, 0.0, v.Z(), 1e-15)

	m := quat.RotationMatrix(q)
	assert.Equal(t, 3, m.Rows())
	mv := matrix.MulVec(m, vector.New(1.0, 0.0, 0.0))
	assert.InDelta(t, v.X(), mv.X(), 1e-15)
	assert.InDelta(t, v.Y(), mv.Y(), 1e-15)
	assert.InDelta(t, v.Z(), mv.Z(), 1e-15)
}

func TestSlerp(t *testing.T) {
	t.Parallel()
	p := quat.Identity[float64]()
	q := quat.FromAxisAngle(vector.New(1.0, 0.0, 0.0), math.Pi/2)
	assertQuatInDelta(t, p, quat.Slerp(p, q, 0), 1e-15)
	assertQuatInDelta(t, q, quat.Slerp(p, q, 1), 1e-15)

	half := quat.Slerp(p, q, 0.5)
	assertQuatInDelta(t, quat.FromAxisAngle(vector.New(1.0, 0.0, 0.0), math.Pi/4), half, 1e-15)

	near := quat.Slerp(p, p, 0.3)
	assertQuatInDelta(t, p, near, 1e-15)
}
