// SPDX-License-Identifier: MIT

package approx

import (
	"math"

	"github.com/cockroachdb/redact"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Equal reports whether a and b are equal within the relative tolerance
// eps. It is the kernel behind Approx and VecApprox.
func Equal[T numeric.Float](a, b T, eps float64) bool {
	if a == b {
		return true
	}
	x, y := float64(a), float64(b)
	diff := math.Abs(x - y)
	sum := math.Abs(x) + math.Abs(y)
	tiny := float64(numeric.MinNormal[T]())
	if x == 0 || y == 0 || sum < tiny {
		return diff < eps*tiny
	}

	return diff/math.Min(sum, float64(numeric.MaxValue[T]())) < eps
}

// Approx wraps a float value for tolerant comparison.
type Approx[T numeric.Float] struct {
	v   T
	eps float64
}

// Of returns the comparator for v.
func Of[T numeric.Float](v T, opts ...Option) Approx[T] {
	return Approx[T]{v: v, eps: gatherOptions(opts...).eps}
}

// Value returns the wrapped value.
func (a Approx[T]) Value() T { return a.v }

// Epsilon returns the tolerance in use.
func (a Approx[T]) Epsilon() float64 { return a.eps }

// Equal reports whether x is approximately the wrapped value.
func (a Approx[T]) Equal(x T) bool { return Equal(a.v, x, a.eps) }

// SafeFormat implements redact.SafeFormatter.
func (a Approx[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString("approx(")
	w.SafeString(redact.SafeString(numeric.Format(a.v)))
	w.SafeRune(')')
}

// String renders the comparator as "approx(v)".
func (a Approx[T]) String() string { return redact.StringWithoutMarkers(a) }

// VecApprox wraps a float vector for elementwise tolerant comparison.
type VecApprox[T numeric.Float] struct {
	v   vector.Vector[T]
	eps float64
}

// Vec returns the comparator for v.
func Vec[T numeric.Float](v vector.Vector[T], opts ...Option) VecApprox[T] {
	return VecApprox[T]{v: v, eps: gatherOptions(opts...).eps}
}

// Equal reports whether every component of w is approximately the
// matching component of the wrapped vector. Lengths must match; otherwise
// it panics with shape.ErrIncompatibleShape.
func (a VecApprox[T]) Equal(w vector.Vector[T]) bool {
	if a.v.Len() != w.Len() {
		panic(shape.Mismatch("approx.Vec", a.v.Shape(), w.Shape()))
	}
	for i := 0; i < w.Len(); i++ {
		if !Equal(a.v.At(i), w.At(i), a.eps) {
			return false
		}
	}

	return true
}

// SafeFormat implements redact.SafeFormatter.
func (a VecApprox[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString("approx")
	w.Print(a.v)
}

// String renders the comparator as "approx(v0, v1, ...)".
func (a VecApprox[T]) String() string { return redact.StringWithoutMarkers(a) }
