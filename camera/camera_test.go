// SPDX-License-Identifier: MIT

package camera_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/camera"
	"github.com/katalvlaran/lvlinalg/internal/testutil"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vector"
)

const delta = 1e-12

func v3(x, y, z float64) vector.Vector[float64] { return vector.New(x, y, z) }

func TestOrtho(t *testing.T) {
	t.Parallel()
	m := camera.Ortho(-1.0, 1, -1, 1, -1, 1)
	assert.True(t, m.Equal(matrix.New(4, 4,
		1.0, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	)))

	screen := camera.Ortho(0.0, 800, 0, 600, 0.1, 100)
	lo := camera.Project(screen, v3(0, 0, -0.1))
	hi := camera.Project(screen, v3(800, 600, -100))
	assert.InDeltaSlice(t, []float64{-1, -1, -1}, lo.Elems(), delta)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, hi.Elems(), delta)
}

func TestPerspective(t *testing.T) {
	t.Parallel()
	p := camera.Perspective(math.Pi/2, 1.0, 1, 10)
	require.Equal(t, 4, p.Rows())

	near := camera.Project(p, v3(0, 0, -1))
	far := camera.Project(p, v3(0, 0, -10))
	assert.InDelta(t, -1, near.Z(), delta)
	assert.InDelta(t, 1, far.Z(), delta)

	// The 90° frustum edge at the near plane lands on the clip boundary.
	edge := camera.Project(p, v3(1, 1, -1))
	assert.InDeltaSlice(t, []float64{1, 1, -1}, edge.Elems(), delta)
}

func TestFrustum_Asymmetric(t *testing.T) {
	t.Parallel()
	f := camera.Frustum(0.0, 2, 0, 1, 1, 3)
	assert.InDeltaSlice(t, []float64{-1, -1, -1}, camera.Project(f, v3(0, 0, -1)).Elems(), delta)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, camera.Project(f, v3(6, 3, -3)).Elems(), delta)
}

func TestInfinitePerspective(t *testing.T) {
	t.Parallel()
	inf := camera.InfinitePerspective(math.Pi/3, 16.0/9, 0.5)
	assert.Equal(t, -1.0, camera.Project(inf, v3(0, 0, -0.5)).Z())
	assert.InDelta(t, 1, camera.Project(inf, v3(0, 0, -1e12)).Z(), 1e-9)

	finite := camera.Perspective(math.Pi/3, 16.0/9, 0.5, 1e15)
	assert.InDeltaSlice(t, finite.Elems(), inf.Elems(), 1e-9)
}

func TestLookAt(t *testing.T) {
	t.Parallel()
	eye, center, up := v3(0, 0, 5), v3(0, 0, 0), v3(0, 1, 0)
	view := camera.LookAt(eye, center, up)
	assert.True(t, view.Equal(camera.Translate(0.0, 0, -5)))

	eye = v3(3, 4, 5)
	view = camera.LookAt(eye, v3(1, 1, 1), up)
	origin := matrix.MulVec(view, vector.Compose[float64](eye, vector.S(1.0)))
	assert.InDeltaSlice(t, []float64{0, 0, 0, 1}, origin.Elems(), delta)

	// The target lies straight ahead on -Z.
	ahead := camera.Project(view, v3(1, 1, 1))
	assert.InDelta(t, 0, ahead.X(), delta)
	assert.InDelta(t, 0, ahead.Y(), delta)
	assert.InDelta(t, -vector.Distance(eye, v3(1, 1, 1)), ahead.Z(), delta)

	// The basis stays orthonormal: the upper 3×3 block is a rotation.
	r := matrix.DimensionCast(view, 3, 3)
	assert.InDeltaSlice(t, matrix.Identity[float64](3).Elems(),
		matrix.Mul(r, matrix.Transpose(r)).Elems(), delta)
	assert.InDelta(t, 1, matrix.Determinant(r), delta)

	testutil.RequireAssertion(t, func() {
		_ = camera.LookAt(v3(0, 0, 0), v3(0, 5, 0), up)
	})
}

func TestAffine(t *testing.T) {
	t.Parallel()
	m := matrix.Mul(camera.Translate(1.0, 2, 3), camera.Scale(2.0, 2, 2))
	assert.Equal(t, []float64{3, 4, 5}, camera.Project(m, v3(1, 1, 1)).Elems())

	vp := camera.Viewport(10.0, 20, 640, 480)
	lo := matrix.MulVec(vp, vector.New(-1.0, -1, -1, 1))
	hi := matrix.MulVec(vp, vector.New(1.0, 1, 1, 1))
	assert.Equal(t, []float64{10, 20, 0, 1}, lo.Elems())
	assert.Equal(t, []float64{650, 500, 1, 1}, hi.Elems())
}
