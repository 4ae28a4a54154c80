// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlinalg/internal/align"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
)

// MaxLen is the largest supported vector length. It bounds the backing
// array, so every Vector occupies MaxLen slots in memory regardless of Len.
const MaxLen = 8

// Vector is a fixed-length tuple of T.
//
// The zero Vector has length 0 and is not a valid operand; build vectors
// with New, Broadcast, Compose and friends.
type Vector[T numeric.Real] struct {
	e      [MaxLen]T
	n      uint8
	layout shape.Layout
}

// Len returns the logical length.
func (v Vector[T]) Len() int { return int(v.n) }

// Layout returns the storage layout.
func (v Vector[T]) Layout() shape.Layout { return v.layout }

// IsPacked reports whether v uses the packed layout.
func (v Vector[T]) IsPacked() bool { return v.layout == shape.Packed }

// WithLayout returns a copy of v with layout l. Values are unchanged.
func (v Vector[T]) WithLayout(l shape.Layout) Vector[T] {
	v.layout = l
	return v
}

// Shape describes v for the promotion rules.
func (v Vector[T]) Shape() shape.Descriptor {
	return shape.VectorOf(numeric.KindOf[T](), v.Len(), v.layout)
}

// Slots returns the physical slot count: Len for packed vectors, Len rounded
// up to a power of two for padded ones (a padded 3-vector has 4 slots).
func (v Vector[T]) Slots() int {
	if v.layout == shape.Packed {
		return v.Len()
	}
	return align.NextPow2(v.Len())
}

// Footprint returns the storage size in bytes: Slots × element size.
func (v Vector[T]) Footprint() int {
	return v.Slots() * numeric.KindOf[T]().Size()
}

// Alignment returns the storage alignment in bytes: the element size when
// packed, otherwise the footprint capped at the SIMD register width.
func (v Vector[T]) Alignment() int {
	if v.layout == shape.Packed {
		return numeric.KindOf[T]().Size()
	}
	return align.For(v.Footprint())
}

// empty returns a zeroed vector of length n with layout l.
func empty[T numeric.Real](n int, l shape.Layout) Vector[T] {
	return Vector[T]{n: uint8(n), layout: l}
}
