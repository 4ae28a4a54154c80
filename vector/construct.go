// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlinalg/internal/check"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
)

// New returns the padded vector (xs[0], …, xs[len(xs)-1]).
// It panics with ErrInvalidLength unless 1 <= len(xs) <= MaxLen.
func New[T numeric.Real](xs ...T) Vector[T] {
	return build(xs, shape.Padded)
}

// NewPacked is New with the packed layout.
func NewPacked[T numeric.Real](xs ...T) Vector[T] {
	return build(xs, shape.Packed)
}

func build[T numeric.Real](xs []T, l shape.Layout) Vector[T] {
	mustLen("vector.New", len(xs))
	v := empty[T](len(xs), l)
	copy(v.e[:], xs)
	return v
}

// Broadcast returns the n-vector with x in every slot.
func Broadcast[T numeric.Real](n int, x T) Vector[T] {
	mustLen("vector.Broadcast", n)
	v := empty[T](n, shape.Padded)
	for i := 0; i < n; i++ {
		v.e[i] = x
	}
	return v
}

// Generate calls f exactly once and broadcasts the produced value.
func Generate[T numeric.Real](n int, f func() T) Vector[T] {
	mustLen("vector.Generate", n)
	return Broadcast(n, f())
}

// GenerateIndexed returns the n-vector whose i-th slot is f(i). f is called
// once per slot in index order.
func GenerateIndexed[T numeric.Real](n int, f func(i int) T) Vector[T] {
	mustLen("vector.GenerateIndexed", n)
	v := empty[T](n, shape.Padded)
	for i := 0; i < n; i++ {
		v.e[i] = f(i)
	}
	return v
}

// Iota returns (start, start+1, …, start+n-1).
func Iota[T numeric.Real](n int, start T) Vector[T] {
	return IotaStep(n, start, 1)
}

// IotaStep returns (start, start+step, …, start+(n-1)·step). Each slot is
// computed from start directly, so float error does not accumulate.
func IotaStep[T numeric.Real](n int, start, step T) Vector[T] {
	return GenerateIndexed(n, func(i int) T { return start + T(i)*step })
}

// Unit returns the n-vector with 1 at index axis and 0 elsewhere.
func Unit[T numeric.Real](n, axis int) Vector[T] {
	mustLen("vector.Unit", n)
	check.Index(axis, n)
	v := empty[T](n, shape.Padded)
	v.e[axis] = 1
	return v
}

// Part is one operand of Compose: a Vector or a scalar wrapped with S.
type Part[T numeric.Real] interface {
	appendTo(dst *Vector[T], layout *shape.Layout, sawVector *bool)
}

type scalarPart[T numeric.Real] struct{ x T }

func (p scalarPart[T]) appendTo(dst *Vector[T], _ *shape.Layout, _ *bool) {
	dst.push(p.x)
}

// S wraps a scalar as a Compose part.
func S[T numeric.Real](x T) Part[T] { return scalarPart[T]{x} }

func (v Vector[T]) appendTo(dst *Vector[T], layout *shape.Layout, sawVector *bool) {
	for i := 0; i < v.Len(); i++ {
		dst.push(v.e[i])
	}
	*layout = shape.Combine(*layout, v.layout)
	*sawVector = true
}

// push appends x, panicking once the total arity passes MaxLen.
func (v *Vector[T]) push(x T) {
	mustLen("vector.Compose", int(v.n)+1)
	v.e[v.n] = x
	v.n++
}

// Compose concatenates vectors and scalars in argument order:
//
//	Compose(New(1, 2), S(3))       // (1, 2, 3)
//	Compose(S(0), New(1, 2), S(3)) // (0, 1, 2, 3)
//
// The total arity must be within [1, MaxLen]. The result is packed only when
// every vector part is packed; scalar-only compositions are padded.
func Compose[T numeric.Real](parts ...Part[T]) Vector[T] {
	var (
		v         Vector[T]
		layout    = shape.Packed
		sawVector bool
	)
	for _, p := range parts {
		p.appendTo(&v, &layout, &sawVector)
	}
	mustLen("vector.Compose", v.Len())
	if !sawVector {
		layout = shape.Padded
	}
	v.layout = layout
	return v
}

// Compatible reports whether a and b can be combined elementwise. It returns
// nil, or the shape.ErrIncompatibleShape / shape.ErrNoCommonType error the
// operation would panic with.
func Compatible(a, b shape.Shaper) error {
	_, err := shape.Promote(a.Shape(), b.Shape())
	return err
}
