// SPDX-License-Identifier: MIT

package numeric

import "github.com/katalvlaran/lvlinalg/internal/check"

// LeftFold reduces xs left-to-right: f(f(f(x0, x1), x2), …).
// A single element is returned without invoking f.
// Preconditions: len(xs) >= 1 (asserted in debug builds).
func LeftFold[T any](xs []T, f func(T, T) T) T {
	check.That(len(xs) > 0, "fold of an empty sequence")
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = f(acc, x)
	}
	return acc
}

// RightFold reduces xs right-to-left: f(x0, f(x1, … f(xn-2, xn-1))).
// The innermost call f(xn-2, xn-1) is evaluated first.
// Preconditions: len(xs) >= 1 (asserted in debug builds).
func RightFold[T any](xs []T, f func(T, T) T) T {
	check.That(len(xs) > 0, "fold of an empty sequence")
	n := len(xs)
	acc := xs[n-1]
	for i := n - 2; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}
