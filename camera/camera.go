// SPDX-License-Identifier: MIT

package camera

import (
	"math"

	"github.com/katalvlaran/lvlinalg/internal/check"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Ortho returns the orthographic projection of the box [l, r]×[b, t]×[-n, -f]
// onto the clip cube.
func Ortho[T numeric.Float](l, r, b, t, n, f T) matrix.Matrix[T] {
	check.That(l != r && b != t && n != f, "camera.Ortho: empty volume")

	sx, sy, sz := 2/(r-l), 2/(t-b), -2/(f-n)
	tx, ty, tz := -(r+l)/(r-l), -(t+b)/(t-b), -(f+n)/(f-n)

	return matrix.New(4, 4,
		sx, 0, 0, tx,
		0, sy, 0, ty,
		0, 0, sz, tz,
		0, 0, 0, 1,
	)
}

// Frustum returns the perspective projection of the frustum whose near
// plane spans [l, r]×[b, t] at distance n, with the far plane at f.
func Frustum[T numeric.Float](l, r, b, t, n, f T) matrix.Matrix[T] {
	check.That(l != r && b != t && n != f, "camera.Frustum: empty volume")

	a := (r + l) / (r - l)
	bb := (t + b) / (t - b)
	c := -(f + n) / (f - n)
	d := -2 * f * n / (f - n)

	return matrix.New(4, 4,
		2*n/(r-l), 0, a, 0,
		0, 2*n/(t-b), bb, 0,
		0, 0, c, d,
		0, 0, -1, 0,
	)
}

// Perspective returns the symmetric perspective projection with vertical
// field of view fovy (radians), width/height ratio aspect and clip
// distances 0 < near < far.
func Perspective[T numeric.Float](fovy, aspect, near, far T) matrix.Matrix[T] {
	check.That(aspect != 0 && near > 0, "camera.Perspective: aspect %v, near %v", aspect, near)

	ymax := near * T(math.Tan(float64(fovy)/2))
	xmax := ymax * aspect

	return Frustum(-xmax, xmax, -ymax, ymax, near, far)
}

// InfinitePerspective is Perspective with the far plane at infinity: the
// limit of Perspective as far grows without bound. The near plane still
// maps to depth -1; depth approaches 1 at infinity.
func InfinitePerspective[T numeric.Float](fovy, aspect, near T) matrix.Matrix[T] {
	check.That(aspect != 0 && near > 0, "camera.InfinitePerspective: aspect %v, near %v", aspect, near)

	f := 1 / T(math.Tan(float64(fovy)/2))

	return matrix.New(4, 4,
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -1, -2*near,
		0, 0, -1, 0,
	)
}

// LookAt returns the view matrix of a camera at eye looking at center, with
// up giving the vertical direction. All three are 3-vectors.
//
// The rows are the camera basis (side s, true up u, backward -f) followed
// by the translation that moves eye to the origin.
func LookAt[T numeric.Float](eye, center, up vector.Vector[T]) matrix.Matrix[T] {
	f := vector.Normalize(vector.Sub(center, eye))
	side := vector.Cross(f, up)
	check.That(vector.NormSquared(side) != 0, "camera.LookAt: up is parallel to the view direction")
	s := vector.Normalize(side)
	u := vector.Cross(s, f)

	return matrix.New(4, 4,
		s.X(), s.Y(), s.Z(), -vector.Dot(s, eye),
		u.X(), u.Y(), u.Z(), -vector.Dot(u, eye),
		-f.X(), -f.Y(), -f.Z(), vector.Dot(f, eye),
		0, 0, 0, 1,
	)
}

// Translate returns the affine translation by (x, y, z).
func Translate[T numeric.Float](x, y, z T) matrix.Matrix[T] {
	m := matrix.Identity[T](4)
	m.SetCol(3, vector.New(x, y, z, 1))
	return m
}

// Scale returns the affine scaling by (x, y, z).
func Scale[T numeric.Float](x, y, z T) matrix.Matrix[T] {
	return matrix.New(4, 4,
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// Viewport maps normalized device x, y in [-1, 1] to the window rectangle
// at (x, y) of size w×h and depth [-1, 1] to [0, 1].
func Viewport[T numeric.Float](x, y, w, h T) matrix.Matrix[T] {
	return matrix.New(4, 4,
		w/2, 0, 0, x+w/2,
		0, h/2, 0, y+h/2,
		0, 0, 0.5, 0.5,
		0, 0, 0, 1,
	)
}

// Project applies m to the point p (a 3-vector, w = 1) and performs the
// perspective divide.
func Project[T numeric.Float](m matrix.Matrix[T], p vector.Vector[T]) vector.Vector[T] {
	c := matrix.MulVec(m, vector.Compose[T](p, vector.S[T](1)))
	return vector.DivScalar(c.XYZ(), c.W())
}
