// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

// AABB is an axis-aligned box with Min <= Max componentwise.
type AABB[T numeric.Float] struct {
	Min, Max vector.Vector[T]
}

// NewAABB returns the box spanned by two opposite corners in any order.
func NewAABB[T numeric.Float](a, b vector.Vector[T]) AABB[T] {
	return AABB[T]{Min: vector.Min(a, b), Max: vector.Max(a, b)}
}

// Dim returns the dimension of the box.
func (b AABB[T]) Dim() int { return b.Min.Len() }

// Contains reports whether p lies inside or on the boundary.
func (b AABB[T]) Contains(p vector.Vector[T]) bool {
	mustDim("geom.AABB.Contains", b.Min, p)
	for i := 0; i < p.Len(); i++ {
		if p.At(i) < b.Min.At(i) || p.At(i) > b.Max.At(i) {
			return false
		}
	}
	return true
}

// Intersects reports whether b and o overlap on every axis.
func (b AABB[T]) Intersects(o AABB[T]) bool {
	mustDim("geom.AABB.Intersects", b.Min, o.Min)
	for i := 0; i < b.Dim(); i++ {
		if b.Max.At(i) < o.Min.At(i) || o.Max.At(i) < b.Min.At(i) {
			return false
		}
	}
	return true
}

// Union returns the smallest box containing b and o.
func (b AABB[T]) Union(o AABB[T]) AABB[T] {
	return AABB[T]{Min: vector.Min(b.Min, o.Min), Max: vector.Max(b.Max, o.Max)}
}

// Expand returns the smallest box containing b and p.
func (b AABB[T]) Expand(p vector.Vector[T]) AABB[T] {
	return AABB[T]{Min: vector.Min(b.Min, p), Max: vector.Max(b.Max, p)}
}

// Center returns the midpoint of the box.
func (b AABB[T]) Center() vector.Vector[T] {
	return vector.Lerp(b.Min, b.Max, 0.5)
}

// Extents returns the edge lengths Max - Min.
func (b AABB[T]) Extents() vector.Vector[T] {
	return vector.Sub(b.Max, b.Min)
}

// ClosestPoint returns the point of the box nearest to p.
func (b AABB[T]) ClosestPoint(p vector.Vector[T]) vector.Vector[T] {
	return vector.Clamp(p, b.Min, b.Max)
}

// Sphere is the closed ball of the given radius around Center.
type Sphere[T numeric.Float] struct {
	Center vector.Vector[T]
	Radius T
}

// Contains reports whether p lies inside or on the sphere.
func (s Sphere[T]) Contains(p vector.Vector[T]) bool {
	return vector.DistanceSquared(s.Center, p) <= s.Radius*s.Radius
}

// IntersectsSphere reports whether the two balls overlap.
func (s Sphere[T]) IntersectsSphere(o Sphere[T]) bool {
	r := s.Radius + o.Radius
	return vector.DistanceSquared(s.Center, o.Center) <= r*r
}

// IntersectsAABB reports whether the ball overlaps the box, by testing the
// box point closest to the center.
func (s Sphere[T]) IntersectsAABB(b AABB[T]) bool {
	return s.Contains(b.ClosestPoint(s.Center))
}

// Bounds returns the tightest box around the sphere.
func (s Sphere[T]) Bounds() AABB[T] {
	return AABB[T]{Min: vector.SubScalar(s.Center, s.Radius), Max: vector.AddScalar(s.Center, s.Radius)}
}

// Segment is the line segment from A to B.
type Segment[T numeric.Float] struct {
	A, B vector.Vector[T]
}

// Direction returns B - A.
func (s Segment[T]) Direction() vector.Vector[T] { return vector.Sub(s.B, s.A) }

// At returns the point A + t·(B - A).
func (s Segment[T]) At(t T) vector.Vector[T] { return vector.Lerp(s.A, s.B, t) }

// ClosestParam returns t in [0, 1] of the point of s nearest to p. A
// degenerate segment (A == B) yields 0.
func (s Segment[T]) ClosestParam(p vector.Vector[T]) T {
	d := s.Direction()
	dd := vector.Dot(d, d)
	if dd == 0 {
		return 0
	}
	t := vector.Dot(vector.Sub(p, s.A), d) / dd
	return min(max(t, 0), 1)
}

// ClosestPoint returns the point of s nearest to p.
func (s Segment[T]) ClosestPoint(p vector.Vector[T]) vector.Vector[T] {
	return s.At(s.ClosestParam(p))
}

// Distance returns the distance from p to the nearest point of s.
func (s Segment[T]) Distance(p vector.Vector[T]) T {
	return vector.Distance(p, s.ClosestPoint(p))
}

// IntersectsSphere reports whether s passes through the ball.
func (s Segment[T]) IntersectsSphere(sp Sphere[T]) bool {
	return sp.Contains(s.ClosestPoint(sp.Center))
}

// IntersectsAABB reports whether s crosses the box, by the slab method.
//
// Implementation:
//   - Keep the parameter window [tmin, tmax] = [0, 1].
//   - Per axis, intersect it with the interval where the segment lies
//     between the two slab planes; an axis-parallel segment outside the
//     slab rejects at once.
//   - The segment hits the box iff the window stays non-empty.
func (s Segment[T]) IntersectsAABB(b AABB[T]) bool {
	mustDim("geom.Segment.IntersectsAABB", s.A, b.Min)
	d := s.Direction()
	tmin, tmax := T(0), T(1)
	for i := 0; i < d.Len(); i++ {
		a, lo, hi := s.A.At(i), b.Min.At(i), b.Max.At(i)
		if d.At(i) == 0 {
			if a < lo || a > hi {
				return false
			}
			continue
		}
		inv := 1 / d.At(i)
		t1, t2 := (lo-a)*inv, (hi-a)*inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin, tmax = max(tmin, t1), min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}

// ToR3 converts a 3-vector to r3.Vector.
func ToR3[T numeric.Float](v vector.Vector[T]) r3.Vector {
	if v.Len() != 3 {
		panic(shape.Mismatch("geom.ToR3", v.Shape(), shape.VectorOf(numeric.Float64, 3, shape.Padded)))
	}
	return r3.Vector{X: float64(v.X()), Y: float64(v.Y()), Z: float64(v.Z())}
}

// FromR3 converts an r3.Vector to a 3-vector of T.
func FromR3[T numeric.Float](p r3.Vector) vector.Vector[T] {
	return vector.New(T(p.X), T(p.Y), T(p.Z))
}

func mustDim[T numeric.Float](op string, a, b vector.Vector[T]) {
	if a.Len() != b.Len() {
		panic(shape.Mismatch(op, a.Shape(), b.Shape()))
	}
}
