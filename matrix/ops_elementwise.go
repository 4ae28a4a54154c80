// SPDX-License-Identifier: MIT

// Package matrix: elementwise operations.
// Every binary form requires identical dimensions and panics with
// ErrDimensionMismatch (matching shape.ErrIncompatibleShape) otherwise.
// The result layout is packed only when both operands are packed.
package matrix

import (
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
)

// Map returns the matrix of f applied to every cell, keeping m's layout.
func Map[T, R numeric.Real](m Matrix[T], f func(T) R) Matrix[R] {
	out := empty[R](m.Rows(), m.Cols(), m.layout)
	for k := 0; k < m.n(); k++ {
		out.e[k] = f(m.e[k])
	}

	return out
}

// Map2 returns f(a[i,j], b[i,j]) for every cell.
func Map2[A, B, R numeric.Real](a Matrix[A], b Matrix[B], f func(A, B) R) Matrix[R] {
	must(ValidateSameShape(a, b))
	out := empty[R](a.Rows(), a.Cols(), shape.Combine(a.layout, b.layout))
	for k := 0; k < a.n(); k++ {
		out.e[k] = f(a.e[k], b.e[k])
	}

	return out
}

// Map3 returns f(a[i,j], b[i,j], c[i,j]) for every cell.
func Map3[A, B, C, R numeric.Real](a Matrix[A], b Matrix[B], c Matrix[C], f func(A, B, C) R) Matrix[R] {
	must(ValidateSameShape(a, b))
	must(ValidateSameShape(a, c))
	l := shape.Combine(shape.Combine(a.layout, b.layout), c.layout)
	out := empty[R](a.Rows(), a.Cols(), l)
	for k := 0; k < a.n(); k++ {
		out.e[k] = f(a.e[k], b.e[k], c.e[k])
	}

	return out
}

// Fold reduces the cells in row-major order: f(f(m00, m01), m02)…
func Fold[T numeric.Real](m Matrix[T], f func(T, T) T) T {
	return numeric.LeftFold(m.e[:m.n()], f)
}

// Add returns a + b.
func Add[T numeric.Real](a, b Matrix[T]) Matrix[T] {
	return Map2(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b.
func Sub[T numeric.Real](a, b Matrix[T]) Matrix[T] {
	return Map2(a, b, func(x, y T) T { return x - y })
}

// Hadamard returns the cellwise product a ⊙ b. The linear-algebra product is
// Mul.
func Hadamard[T numeric.Real](a, b Matrix[T]) Matrix[T] {
	return Map2(a, b, func(x, y T) T { return x * y })
}

// Div returns the cellwise quotient. Integer division by zero panics with
// the runtime error; float division follows IEEE-754.
func Div[T numeric.Real](a, b Matrix[T]) Matrix[T] {
	return Map2(a, b, func(x, y T) T { return x / y })
}

// Mod returns the cellwise remainder.
func Mod[T numeric.Integer](a, b Matrix[T]) Matrix[T] {
	return Map2(a, b, func(x, y T) T { return x % y })
}

// AddScalar returns m + s in every cell.
func AddScalar[T numeric.Real](m Matrix[T], s T) Matrix[T] {
	return Map(m, func(x T) T { return x + s })
}

// SubScalar returns m - s in every cell.
func SubScalar[T numeric.Real](m Matrix[T], s T) Matrix[T] {
	return Map(m, func(x T) T { return x - s })
}

// MulScalar returns m · s.
func MulScalar[T numeric.Real](m Matrix[T], s T) Matrix[T] {
	return Map(m, func(x T) T { return x * s })
}

// DivScalar returns m / s in every cell.
func DivScalar[T numeric.Real](m Matrix[T], s T) Matrix[T] {
	return Map(m, func(x T) T { return x / s })
}

// ModScalar returns m % s in every cell.
func ModScalar[T numeric.Integer](m Matrix[T], s T) Matrix[T] {
	return Map(m, func(x T) T { return x % s })
}

// Neg returns -m.
func Neg[T numeric.Real](m Matrix[T]) Matrix[T] {
	return Map(m, func(x T) T { return -x })
}

// Compound assignment: the receiver is replaced by the result.

func (m *Matrix[T]) AddAssign(b Matrix[T])      { *m = Add(*m, b) }
func (m *Matrix[T]) SubAssign(b Matrix[T])      { *m = Sub(*m, b) }
func (m *Matrix[T]) HadamardAssign(b Matrix[T]) { *m = Hadamard(*m, b) }
func (m *Matrix[T]) DivAssign(b Matrix[T])      { *m = Div(*m, b) }
func (m *Matrix[T]) MulAssign(b Matrix[T])      { *m = Mul(*m, b) }
func (m *Matrix[T]) AddScalarAssign(s T)        { *m = AddScalar(*m, s) }
func (m *Matrix[T]) SubScalarAssign(s T)        { *m = SubScalar(*m, s) }
func (m *Matrix[T]) MulScalarAssign(s T)        { *m = MulScalar(*m, s) }
func (m *Matrix[T]) DivScalarAssign(s T)        { *m = DivScalar(*m, s) }
