// Package fft implements the discrete Fourier transform of power-of-two
// length sequences of cplx.Complex values with the iterative radix-2
// Cooley-Tukey algorithm.
//
// Conventions:
//
//   - Forward computes X[k] = Σ x[n]·e^(-2πi·kn/N) with no scaling.
//   - Inverse uses the positive exponent and scales by 1/N, so
//     Inverse(Forward(x)) == x up to rounding.
//
// The *InPlace forms overwrite their argument and do not allocate; Forward
// and Inverse return a new slice and leave the input untouched. Twiddle
// factors are evaluated in float64 whatever the element type.
package fft
