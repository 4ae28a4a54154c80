// SPDX-License-Identifier: MIT

package fft

import "github.com/cockroachdb/errors"

var (
	// ErrEmpty is returned for a zero-length input.
	ErrEmpty = errors.New("fft: empty input")

	// ErrNotPowerOfTwo is returned when the input length is not 2^k.
	ErrNotPowerOfTwo = errors.New("fft: length is not a power of two")
)
