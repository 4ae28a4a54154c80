// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvlinalg/numeric"

// Elementwise operators are Map2 over the scalar operator, so they share its
// length check and layout rule. Operands must already have the same element
// type; see Promote and PromoteScalar for mixed arithmetic.

// Add returns a + b.
func Add[T numeric.Real](a, b Vector[T]) Vector[T] {
	return Map2(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b.
func Sub[T numeric.Real](a, b Vector[T]) Vector[T] {
	return Map2(a, b, func(x, y T) T { return x - y })
}

// Mul returns the elementwise product a * b.
func Mul[T numeric.Real](a, b Vector[T]) Vector[T] {
	return Map2(a, b, func(x, y T) T { return x * y })
}

// Div returns the elementwise quotient a / b. Division by zero follows T:
// IEEE-754 Inf/NaN for floats, a runtime panic for integers.
func Div[T numeric.Real](a, b Vector[T]) Vector[T] {
	return Map2(a, b, func(x, y T) T { return x / y })
}

// Mod returns the elementwise remainder a % b (integers only).
func Mod[T numeric.Integer](a, b Vector[T]) Vector[T] {
	return Map2(a, b, func(x, y T) T { return x % y })
}

// AddScalar returns v + s (s broadcast to every slot).
func AddScalar[T numeric.Real](v Vector[T], s T) Vector[T] {
	return Map(v, func(x T) T { return x + s })
}

// SubScalar returns v - s.
func SubScalar[T numeric.Real](v Vector[T], s T) Vector[T] {
	return Map(v, func(x T) T { return x - s })
}

// MulScalar returns v * s.
func MulScalar[T numeric.Real](v Vector[T], s T) Vector[T] {
	return Map(v, func(x T) T { return x * s })
}

// DivScalar returns v / s.
func DivScalar[T numeric.Real](v Vector[T], s T) Vector[T] {
	return Map(v, func(x T) T { return x / s })
}

// ModScalar returns v % s.
func ModScalar[T numeric.Integer](v Vector[T], s T) Vector[T] {
	return Map(v, func(x T) T { return x % s })
}

// ScalarSub returns s - v.
func ScalarSub[T numeric.Real](s T, v Vector[T]) Vector[T] {
	return Map(v, func(x T) T { return s - x })
}

// ScalarDiv returns s / v.
func ScalarDiv[T numeric.Real](s T, v Vector[T]) Vector[T] {
	return Map(v, func(x T) T { return s / x })
}

// ScalarMod returns s % v.
func ScalarMod[T numeric.Integer](s T, v Vector[T]) Vector[T] {
	return Map(v, func(x T) T { return s % x })
}

// Neg returns -v. Unsigned elements wrap.
func Neg[T numeric.Real](v Vector[T]) Vector[T] {
	return Map(v, func(x T) T { return -x })
}

// Pos returns v unchanged (unary plus).
func Pos[T numeric.Real](v Vector[T]) Vector[T] { return v }

// Compound assignment: each method computes the pure result and stores it
// in the receiver.

func (v *Vector[T]) AddAssign(w Vector[T]) { *v = Add(*v, w) }
func (v *Vector[T]) SubAssign(w Vector[T]) { *v = Sub(*v, w) }
func (v *Vector[T]) MulAssign(w Vector[T]) { *v = Mul(*v, w) }
func (v *Vector[T]) DivAssign(w Vector[T]) { *v = Div(*v, w) }

func (v *Vector[T]) AddScalarAssign(s T) { *v = AddScalar(*v, s) }
func (v *Vector[T]) SubScalarAssign(s T) { *v = SubScalar(*v, s) }
func (v *Vector[T]) MulScalarAssign(s T) { *v = MulScalar(*v, s) }
func (v *Vector[T]) DivScalarAssign(s T) { *v = DivScalar(*v, s) }

// ModAssign stores *v % w in v. Methods cannot narrow T to integers, so the
// remainder assignments are functions.
func ModAssign[T numeric.Integer](v *Vector[T], w Vector[T]) { *v = Mod(*v, w) }

// ModScalarAssign stores *v % s in v.
func ModScalarAssign[T numeric.Integer](v *Vector[T], s T) { *v = ModScalar(*v, s) }
