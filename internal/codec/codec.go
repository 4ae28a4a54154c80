// SPDX-License-Identifier: MIT

// Package codec converts arithmetic elements to and from their fixed-width
// little-endian byte form and to the canonical 64-bit pattern used for
// hashing.
package codec

import (
	"encoding/binary"
	"math"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// Append appends the little-endian encoding of x (Size bytes of T's kind).
func Append[T numeric.Real](b []byte, x T) []byte {
	k := numeric.KindOf[T]()
	switch {
	case k == numeric.Float32:
		return binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(x)))
	case k == numeric.Float64:
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(float64(x)))
	}
	u := uint64(x)
	switch k.Size() {
	case 1:
		return append(b, byte(u))
	case 2:
		return binary.LittleEndian.AppendUint16(b, uint16(u))
	case 4:
		return binary.LittleEndian.AppendUint32(b, uint32(u))
	default:
		return binary.LittleEndian.AppendUint64(b, u)
	}
}

// Read decodes one element from the front of b. The caller guarantees
// len(b) >= numeric.KindOf[T]().Size().
func Read[T numeric.Real](b []byte) T {
	k := numeric.KindOf[T]()
	switch {
	case k == numeric.Float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case k == numeric.Float64:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	}
	// Signed narrowing restores the sign; for unsigned T the conversion
	// keeps the same bit pattern.
	switch k.Size() {
	case 1:
		return T(int8(b[0]))
	case 2:
		return T(int16(binary.LittleEndian.Uint16(b)))
	case 4:
		return T(int32(binary.LittleEndian.Uint32(b)))
	default:
		return T(int64(binary.LittleEndian.Uint64(b)))
	}
}

// Bits64 returns the canonical 64-bit pattern of x: float64 bits for floats
// (with -0 folded onto +0, so values that compare equal share a pattern) and
// the two's-complement widening for integers.
func Bits64[T numeric.Real](x T) uint64 {
	if numeric.KindOf[T]().IsFloat() {
		if x == 0 {
			return 0
		}
		return math.Float64bits(float64(x))
	}
	return uint64(x)
}
