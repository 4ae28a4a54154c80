// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/internal/codec"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/shape"
)

// AppendBinary appends the physical footprint of v to b: Slots() elements in
// little-endian order, pad slots (always zero) included. Length and layout
// are not encoded; the reader supplies them to DecodeBinary.
func (v Vector[T]) AppendBinary(b []byte) []byte {
	for i := 0; i < v.Slots(); i++ {
		b = codec.Append(b, v.e[i])
	}
	return b
}

// DecodeBinary reads an n-vector with layout l from the front of data and
// returns it with the unread remainder.
//
// Errors:
//   - ErrShortBuffer if data is shorter than the vector footprint.
//
// Pad slots are consumed but not stored, so the result keeps the
// zero-padding invariant even for corrupt input.
func DecodeBinary[T numeric.Real](data []byte, n int, l shape.Layout) (Vector[T], []byte, error) {
	mustLen("vector.DecodeBinary", n)
	v := empty[T](n, l)
	size := numeric.KindOf[T]().Size()
	need := v.Slots() * size
	if len(data) < need {
		return Vector[T]{}, data, vectorErrorf("vector.DecodeBinary",
			errors.Wrapf(ErrShortBuffer, "need %d bytes, have %d", need, len(data)))
	}
	for i := 0; i < n; i++ {
		v.e[i] = codec.Read[T](data[i*size:])
	}
	return v, data[need:], nil
}
