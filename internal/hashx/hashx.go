// SPDX-License-Identifier: MIT

// Package hashx implements the order-sensitive element hash shared by
// vectors and matrices.
package hashx

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvlinalg/internal/codec"
	"github.com/katalvlaran/lvlinalg/numeric"
)

// Seed is the starting state of every aggregate hash.
const Seed uint64 = 0x9e3779b97f4a7c15

// Combine folds h into seed. Order matters: Combine(Combine(s, a), b) and
// Combine(Combine(s, b), a) differ for a != b.
func Combine(seed, h uint64) uint64 {
	return seed ^ (h + 0x9e3779b9 + (seed << 6) + (seed >> 2))
}

// Elem hashes the canonical 8-byte form of x with xxhash.
func Elem[T numeric.Real](x T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], codec.Bits64(x))
	return xxhash.Sum64(buf[:])
}

// Slice hashes xs in order, starting from Seed.
func Slice[T numeric.Real](xs []T) uint64 {
	h := Seed
	for _, x := range xs {
		h = Combine(h, Elem(x))
	}
	return h
}
