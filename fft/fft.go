// SPDX-License-Identifier: MIT

package fft

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/cplx"
	"github.com/katalvlaran/lvlinalg/numeric"
)

// Forward returns the DFT of x.
func Forward[T numeric.Float](x []cplx.Complex[T]) ([]cplx.Complex[T], error) {
	out := append([]cplx.Complex[T](nil), x...)
	if err := ForwardInPlace(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Inverse returns the inverse DFT of x, scaled by 1/len(x).
func Inverse[T numeric.Float](x []cplx.Complex[T]) ([]cplx.Complex[T], error) {
	out := append([]cplx.Complex[T](nil), x...)
	if err := InverseInPlace(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ForwardInPlace overwrites x with its DFT.
func ForwardInPlace[T numeric.Float](x []cplx.Complex[T]) error {
	if err := validate("fft.Forward", len(x)); err != nil {
		return err
	}
	transform(x, -1)
	return nil
}

// InverseInPlace overwrites x with its inverse DFT.
func InverseInPlace[T numeric.Float](x []cplx.Complex[T]) error {
	if err := validate("fft.Inverse", len(x)); err != nil {
		return err
	}
	transform(x, 1)
	scale := 1 / T(len(x))
	for i := range x {
		x[i] = cplx.MulScalar(x[i], scale)
	}
	return nil
}

// Energy returns Σ|x[k]|². By Parseval, Energy(Forward(x)) == N·Energy(x).
func Energy[T numeric.Float](x []cplx.Complex[T]) T {
	return numeric.SumNormSquared[T](x...)
}

// IsPowerOfTwo reports whether n = 2^k for some k >= 0.
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

func validate(op string, n int) error {
	switch {
	case n == 0:
		return errors.Wrap(ErrEmpty, op)
	case !IsPowerOfTwo(n):
		return errors.Wrapf(ErrNotPowerOfTwo, "%s: length %d", op, n)
	}
	return nil
}

// transform runs the butterflies with exponent sign dir (-1 forward,
// +1 inverse) after the bit-reversal permutation.
func transform[T numeric.Float](x []cplx.Complex[T], dir float64) {
	n := len(x)
	if n == 1 {
		return
	}
	shift := uint(bits.UintSize - bits.TrailingZeros(uint(n)))
	for i := 0; i < n; i++ {
		if j := int(bits.Reverse(uint(i)) >> shift); j > i {
			x[i], x[j] = x[j], x[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := dir * 2 * math.Pi / float64(size)
		for k := 0; k < half; k++ {
			s, c := math.Sincos(step * float64(k))
			w := cplx.New(T(c), T(s))
			for start := 0; start < n; start += size {
				even, odd := x[start+k], cplx.Mul(w, x[start+k+half])
				x[start+k] = cplx.Add(even, odd)
				x[start+k+half] = cplx.Sub(even, odd)
			}
		}
	}
}
