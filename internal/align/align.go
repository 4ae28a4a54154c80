// SPDX-License-Identifier: MIT

// Package align computes the storage alignment of padded (non-packed)
// aggregates from the SIMD register width of the running CPU.
package align

import "golang.org/x/sys/cpu"

// vectorBytes is the widest SIMD register in bytes, detected once.
var vectorBytes = detect()

func detect() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 64
	case cpu.X86.HasAVX2, cpu.X86.HasAVX:
		return 32
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return 16
	default:
		return 8
	}
}

// VectorBytes returns the detected SIMD register width in bytes.
func VectorBytes() int { return vectorBytes }

// NextPow2 returns the smallest power of two >= n (1 for n <= 1).
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// For returns the alignment of a padded value occupying size bytes: the
// next power of two, capped at the SIMD register width.
func For(size int) int {
	a := NextPow2(size)
	if a > vectorBytes {
		a = vectorBytes
	}
	return a
}
