// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"github.com/katalvlaran/lvlinalg/internal/check"
)

// Hypot returns sqrt(x0² + x1² + …) without intermediate overflow.
//
// Implementation:
//   - Stage 1 (fast path): accumulate the naive sum of squares in T.
//   - Stage 2: if that sum is finite and at least MinNormal[T], return its
//     square root.
//   - Stage 3 (safe path): the sum overflowed to +Inf, or underflowed to zero
//     or a subnormal. Find m = max|xi|, accumulate Σ(xi/m)² (the largest term
//     is exactly 1, so 1 <= Σ <= len(xs)), and return m·sqrt(Σ).
//
// Behavior highlights:
//   - Hypot() == 0; any ±Inf operand yields +Inf; NaN propagates.
//   - The result is finite whenever the true result is representable, and
//     zero only when every operand is zero.
//
// Complexity: O(n) on the fast path, O(2n) when rescaling.
func Hypot[T Float](xs ...T) T {
	var sum T
	for _, x := range xs {
		sum += x * x
	}
	if inRange(sum) {
		return Sqrt(sum)
	}
	return scaledHypot(xs)
}

// FastHypot returns sqrt(Σ xi²) with no overflow guard. Callers that already
// bounded their inputs skip the finiteness test; otherwise prefer Hypot.
func FastHypot[T Float](xs ...T) T {
	var sum T
	for _, x := range xs {
		sum += x * x
	}
	return Sqrt(sum)
}

func scaledHypot[T Float](xs []T) T {
	m := maxAbs(xs)
	if m == 0 || math.IsInf(float64(m), 1) {
		return m
	}
	var sum T
	for _, x := range xs {
		r := x / m
		sum += r * r
	}
	return m * Sqrt(sum)
}

// PHypot returns the p-norm (Σ|xi|^p)^(1/p) with the same two-path
// structure as Hypot: the naive sum first, and on overflow or underflow the
// sum of (|xi|/m)^p scaled back by the largest magnitude m.
// p = +Inf yields max|xi|.
//
// Preconditions: p > 0 (asserted in debug builds).
func PHypot[T Float](p T, xs ...T) T {
	check.That(p > 0, "p-norm order must be positive, got %v", p)
	if math.IsInf(float64(p), 1) {
		return maxAbs(xs)
	}
	sum := powSum(p, xs, 1)
	if inRange(sum) {
		return root(sum, p)
	}
	m := maxAbs(xs)
	if m == 0 || math.IsInf(float64(m), 1) {
		return m
	}
	return m * root(powSum(p, xs, m), p)
}

// FastPHypot is PHypot without the overflow guard.
func FastPHypot[T Float](p T, xs ...T) T {
	check.That(p > 0, "p-norm order must be positive, got %v", p)
	if math.IsInf(float64(p), 1) {
		return maxAbs(xs)
	}
	return root(powSum(p, xs, 1), p)
}

// inRange reports whether a naive power sum can be used as is: it is
// neither +Inf nor below the normal range. NaN passes so it propagates.
func inRange[T Float](sum T) bool {
	if math.IsNaN(float64(sum)) {
		return true
	}
	return !math.IsInf(float64(sum), 1) && sum >= MinNormal[T]()
}

// powSum returns Σ(|xi|/scale)^p.
func powSum[T Float](p T, xs []T, scale T) T {
	var sum T
	for _, x := range xs {
		sum += T(math.Pow(float64(Abs(x)/scale), float64(p)))
	}
	return sum
}

func root[T Float](sum, p T) T {
	return T(math.Pow(float64(sum), 1/float64(p)))
}

// maxAbs returns max|xi| (0 for an empty slice). NaN operands are skipped
// by the comparison and surface through the later arithmetic instead.
func maxAbs[T Float](xs []T) T {
	var m T
	for _, x := range xs {
		if a := Abs(x); a > m {
			m = a
		}
	}
	return m
}
