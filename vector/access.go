// SPDX-License-Identifier: MIT

package vector

import (
	"iter"

	"github.com/katalvlaran/lvlinalg/internal/check"
)

// At returns slot i. Preconditions: 0 <= i < Len (asserted in debug builds).
func (v Vector[T]) At(i int) T {
	check.Index(i, v.Len())
	return v.e[i]
}

// Set writes x to slot i.
func (v *Vector[T]) Set(i int, x T) {
	check.Index(i, v.Len())
	v.e[i] = x
}

// Elems returns a copy of the logical elements.
func (v Vector[T]) Elems() []T {
	out := make([]T, v.Len())
	copy(out, v.e[:v.n])
	return out
}

// All iterates (index, value) pairs in slot order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.e[i]) {
				return
			}
		}
	}
}

// Values iterates the elements in slot order.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.e[i]) {
				return
			}
		}
	}
}

// Positional and color names for slots 0..3. R G B A are the same slots as
// X Y Z W.

func (v Vector[T]) X() T { return v.At(0) }
func (v Vector[T]) Y() T { return v.At(1) }
func (v Vector[T]) Z() T { return v.At(2) }
func (v Vector[T]) W() T { return v.At(3) }

func (v Vector[T]) R() T { return v.At(0) }
func (v Vector[T]) G() T { return v.At(1) }
func (v Vector[T]) B() T { return v.At(2) }
func (v Vector[T]) A() T { return v.At(3) }

func (v *Vector[T]) SetX(x T) { v.Set(0, x) }
func (v *Vector[T]) SetY(x T) { v.Set(1, x) }
func (v *Vector[T]) SetZ(x T) { v.Set(2, x) }
func (v *Vector[T]) SetW(x T) { v.Set(3, x) }

func (v *Vector[T]) SetR(x T) { v.Set(0, x) }
func (v *Vector[T]) SetG(x T) { v.Set(1, x) }
func (v *Vector[T]) SetB(x T) { v.Set(2, x) }
func (v *Vector[T]) SetA(x T) { v.Set(3, x) }

// XY returns slots 0..1 as a 2-vector with v's layout.
func (v Vector[T]) XY() Vector[T] { return v.head(2) }

// XYZ returns slots 0..2 as a 3-vector with v's layout.
func (v Vector[T]) XYZ() Vector[T] { return v.head(3) }

// RG is XY.
func (v Vector[T]) RG() Vector[T] { return v.head(2) }

// RGB is XYZ.
func (v Vector[T]) RGB() Vector[T] { return v.head(3) }

// SetXY overwrites slots 0..1 with w (which must be a 2-vector).
func (v *Vector[T]) SetXY(w Vector[T]) { v.setHead(2, w) }

// SetXYZ overwrites slots 0..2 with w (which must be a 3-vector).
func (v *Vector[T]) SetXYZ(w Vector[T]) { v.setHead(3, w) }

// SetRG is SetXY.
func (v *Vector[T]) SetRG(w Vector[T]) { v.setHead(2, w) }

// SetRGB is SetXYZ.
func (v *Vector[T]) SetRGB(w Vector[T]) { v.setHead(3, w) }

func (v Vector[T]) head(k int) Vector[T] {
	check.Index(k-1, v.Len())
	out := empty[T](k, v.layout)
	copy(out.e[:k], v.e[:k])
	return out
}

func (v *Vector[T]) setHead(k int, w Vector[T]) {
	check.Index(k-1, v.Len())
	if w.Len() != k {
		mismatch("vector.SetHead", v.head(k).Shape(), w.Shape())
	}
	copy(v.e[:k], w.e[:k])
}
