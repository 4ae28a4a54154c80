// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/shape"
)

var (
	// ErrInvalidLength reports a construction whose length is outside
	// [1, MaxLen]. It is raised as a panic: such a vector can never exist.
	ErrInvalidLength = errors.New("vector: length out of range")

	// ErrShortBuffer is returned by DecodeBinary when the input holds fewer
	// bytes than the footprint of the requested vector.
	ErrShortBuffer = errors.New("vector: short buffer")
)

// vectorErrorf wraps err with the operation tag.
func vectorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// mustLen panics unless 1 <= n <= MaxLen.
func mustLen(op string, n int) {
	if n < 1 || n > MaxLen {
		panic(vectorErrorf(op, errors.Wrapf(ErrInvalidLength, "%d not in [1, %d]", n, MaxLen)))
	}
}

// mismatch panics with the shape error for operands a and b of op.
func mismatch(op string, a, b shape.Descriptor) {
	panic(shape.Mismatch(op, a, b))
}
