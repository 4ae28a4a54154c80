// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvlinalg/numeric"

// Abs returns |v[i]| per slot.
func Abs[T numeric.Real](v Vector[T]) Vector[T] { return Map(v, numeric.Abs[T]) }

// Sqrt returns the elementwise square root.
func Sqrt[T numeric.Float](v Vector[T]) Vector[T] { return Map(v, numeric.Sqrt[T]) }

// Floor rounds every slot toward -Inf.
func Floor[T numeric.Float](v Vector[T]) Vector[T] { return Map(v, numeric.Floor[T]) }

// Ceil rounds every slot toward +Inf.
func Ceil[T numeric.Float](v Vector[T]) Vector[T] { return Map(v, numeric.Ceil[T]) }

// Fract returns v[i] - Floor(v[i]) per slot.
func Fract[T numeric.Float](v Vector[T]) Vector[T] { return Map(v, numeric.Fract[T]) }

// CeilDivide returns ⌈a[i]/b[i]⌉ per slot.
func CeilDivide[T numeric.Integer](a, b Vector[T]) Vector[T] {
	return Map2(a, b, numeric.CeilDivide[T])
}

// CeilDivideScalar returns ⌈v[i]/s⌉ per slot.
func CeilDivideScalar[T numeric.Integer](v Vector[T], s T) Vector[T] {
	return Map(v, func(x T) T { return numeric.CeilDivide(x, s) })
}

// Reverse returns (v[n-1], …, v[0]).
func Reverse[T numeric.Real](v Vector[T]) Vector[T] {
	out := v
	for i, j := 0, v.Len()-1; i < v.Len(); i, j = i+1, j-1 {
		out.e[i] = v.e[j]
	}
	return out
}

// Min returns the elementwise minimum of a and b.
func Min[T numeric.Real](a, b Vector[T]) Vector[T] {
	return Map2(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the elementwise maximum of a and b.
func Max[T numeric.Real](a, b Vector[T]) Vector[T] {
	return Map2(a, b, func(x, y T) T { return max(x, y) })
}

// Clamp limits every slot of v to [lo[i], hi[i]].
func Clamp[T numeric.Real](v, lo, hi Vector[T]) Vector[T] {
	return Map3(v, lo, hi, func(x, l, h T) T { return min(max(x, l), h) })
}

// Lerp returns a + (b-a)·t per slot.
func Lerp[T numeric.Float](a, b Vector[T], t T) Vector[T] {
	return Map2(a, b, func(x, y T) T { return x + (y-x)*t })
}

// Sum returns Σ v[i].
func Sum[T numeric.Real](v Vector[T]) T { return Fold(v, add[T]) }

// MinElem returns the smallest slot.
func MinElem[T numeric.Real](v Vector[T]) T { return Fold(v, func(x, y T) T { return min(x, y) }) }

// MaxElem returns the largest slot.
func MaxElem[T numeric.Real](v Vector[T]) T { return Fold(v, func(x, y T) T { return max(x, y) }) }
