// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlinalg/internal/hashx"
	"github.com/katalvlaran/lvlinalg/numeric"
)

// Equal reports whether v and w hold the same values: the elementwise ==
// reduced with logical and. Layout does not participate, so a packed and a
// padded vector with equal components are equal. Different lengths panic
// with shape.ErrIncompatibleShape.
//
// Comparisons follow IEEE-754: NaN is never equal, -0 equals +0.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if v.n != w.n {
		mismatch("vector.Equal", v.Shape(), w.Shape())
	}
	for i := 0; i < v.Len(); i++ {
		if v.e[i] != w.e[i] {
			return false
		}
	}
	return true
}

// EqualScalar reports whether every slot equals s (s is broadcast).
func (v Vector[T]) EqualScalar(s T) bool {
	return AllOf(v, func(x T) bool { return x == s })
}

// Hash returns an order-sensitive hash of the logical elements. Vectors for
// which Equal holds hash equal, whatever their layouts.
//
// Implementation: start from a fixed seed and fold in the xxhash of each
// element's canonical 8-byte form (-0 hashes as +0).
func (v Vector[T]) Hash() uint64 {
	h := hashx.Seed
	for i := 0; i < v.Len(); i++ {
		h = hashx.Combine(h, hashx.Elem(v.e[i]))
	}
	return h
}

// EqualMixed compares vectors of different element types after promoting
// both to their common type R.
func EqualMixed[R, T, U numeric.Real](a Vector[T], b Vector[U]) bool {
	pa, pb := Promote[R](a, b)
	return pa.Equal(pb)
}
