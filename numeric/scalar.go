// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"github.com/katalvlaran/lvlinalg/internal/check"
)

// Abs returns |x|. For unsigned kinds it is the identity; for the most
// negative signed integer it wraps like the built-in negation.
func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root computed in float64 and rounded to T.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Floor returns the greatest integer value <= x.
func Floor[T Float](x T) T { return T(math.Floor(float64(x))) }

// Ceil returns the least integer value >= x.
func Ceil[T Float](x T) T { return T(math.Ceil(float64(x))) }

// Fract returns x - Floor(x), always in [0, 1) for finite x.
func Fract[T Float](x T) T { return x - Floor(x) }

// CeilDivide returns ⌈a/b⌉ for integers, rounding toward +Inf for every sign
// combination. Preconditions: b != 0 (asserted in debug builds).
func CeilDivide[T Integer](a, b T) T {
	check.That(b != 0, "ceil divide by zero")
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// Cast converts x to U with Go conversion semantics (floats truncate
// toward zero when converted to integers).
func Cast[U, T Real](x T) U { return U(x) }

// MinNormal returns the smallest positive normal value of T.
func MinNormal[T Float]() T {
	v := 0x1p-1022
	if KindOf[T]() == Float32 {
		v = 0x1p-126
	}
	return T(v)
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Float]() T {
	v := math.MaxFloat64
	if KindOf[T]() == Float32 {
		v = math.MaxFloat32
	}
	return T(v)
}
