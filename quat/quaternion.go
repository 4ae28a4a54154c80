// SPDX-License-Identifier: MIT

package quat

import (
	"github.com/cockroachdb/redact"

	"github.com/katalvlaran/lvlinalg/cplx"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Quaternion is w + xi + yj + zk.
type Quaternion[T numeric.Real] struct {
	v vector.Vector[T]
}

// New returns w + xi + yj + zk.
func New[T numeric.Real](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{vector.New(w, x, y, z)}
}

// FromParts builds a quaternion from its real part and imaginary 3-vector.
func FromParts[T numeric.Real](re T, im vector.Vector[T]) Quaternion[T] {
	if im.Len() != 3 {
		panic(shape.Mismatch("quat.FromParts", shape.VectorOf(numeric.KindOf[T](), 3, im.Layout()), im.Shape()))
	}
	return Quaternion[T]{vector.Compose[T](vector.S(re), im)}
}

// FromVector views the 4-vector v as (w, x, y, z).
func FromVector[T numeric.Real](v vector.Vector[T]) Quaternion[T] {
	if v.Len() != 4 {
		panic(shape.Mismatch("quat.FromVector", shape.QuaternionOf(numeric.KindOf[T](), v.Layout()), v.Shape()))
	}
	return Quaternion[T]{v}
}

// FromComplex embeds re + im·i as re + im·i + 0j + 0k.
func FromComplex[T numeric.Real](c cplx.Complex[T]) Quaternion[T] {
	q := New(c.Real(), c.Imag(), 0, 0)
	q.v = q.v.WithLayout(c.Layout())
	return q
}

// Identity returns 1 + 0i + 0j + 0k.
func Identity[T numeric.Real]() Quaternion[T] { return New[T](1, 0, 0, 0) }

// Vector returns the backing 4-vector (w, x, y, z).
func (q Quaternion[T]) Vector() vector.Vector[T] { return q.v }

// Len returns 4.
func (q Quaternion[T]) Len() int { return q.v.Len() }

// At returns slot i (0 is w).
func (q Quaternion[T]) At(i int) T { return q.v.At(i) }

// Set writes slot i.
func (q *Quaternion[T]) Set(i int, x T) { q.v.Set(i, x) }

// Component names: W is the real part, X Y Z the imaginary ones.

func (q Quaternion[T]) W() T { return q.v.At(0) }
func (q Quaternion[T]) X() T { return q.v.At(1) }
func (q Quaternion[T]) Y() T { return q.v.At(2) }
func (q Quaternion[T]) Z() T { return q.v.At(3) }

// Real returns w.
func (q Quaternion[T]) Real() T { return q.W() }

// Imag returns the imaginary 3-vector (x, y, z), keeping q's layout.
func (q Quaternion[T]) Imag() vector.Vector[T] { return q.v.Swizzle(1, 2, 3) }

// SetReal writes w.
func (q *Quaternion[T]) SetReal(w T) { q.v.Set(0, w) }

// SetImag overwrites (x, y, z) with the 3-vector im.
func (q *Quaternion[T]) SetImag(im vector.Vector[T]) {
	*q = FromParts(q.W(), im).WithLayout(q.Layout())
}

// Layout returns the storage layout.
func (q Quaternion[T]) Layout() shape.Layout { return q.v.Layout() }

// WithLayout returns a copy of q with layout l.
func (q Quaternion[T]) WithLayout(l shape.Layout) Quaternion[T] {
	return Quaternion[T]{q.v.WithLayout(l)}
}

// Shape describes q as a quaternion.
func (q Quaternion[T]) Shape() shape.Descriptor {
	return shape.QuaternionOf(numeric.KindOf[T](), q.Layout())
}

// Equal reports whether all four components are equal.
func (q Quaternion[T]) Equal(p Quaternion[T]) bool { return q.v.Equal(p.v) }

// Hash is the hash of the backing vector.
func (q Quaternion[T]) Hash() uint64 { return q.v.Hash() }

// SafeFormat implements redact.SafeFormatter.
func (q Quaternion[T]) SafeFormat(w redact.SafePrinter, r rune) { q.v.SafeFormat(w, r) }

// String renders q as "(w, x, y, z)".
func (q Quaternion[T]) String() string { return q.v.String() }

// Promote converts a and b to their common element type R; it panics with
// shape.ErrNoCommonType when R is not that type.
func Promote[R, T, U numeric.Real](a Quaternion[T], b Quaternion[U]) (Quaternion[R], Quaternion[R]) {
	pa, pb := vector.Promote[R](a.v, b.v)
	return Quaternion[R]{pa}, Quaternion[R]{pb}
}
