// SPDX-License-Identifier: MIT

package shape

import "github.com/cockroachdb/errors"

var (
	// ErrIncompatibleShape reports operands of the same shape kind whose sizes
	// differ: vectors of different length, matrices of different dimensions,
	// or a product whose inner dimensions do not match.
	ErrIncompatibleShape = errors.New("shape: incompatible shape")

	// ErrNoCommonType reports a pair of shapes (or element types) that has no
	// promotion at all, e.g. an elementwise matrix∘vector operation.
	ErrNoCommonType = errors.New("shape: no common type")

	// ErrUnclassified reports a value that is neither a scalar nor a Shaper.
	ErrUnclassified = errors.New("shape: value has no numeric shape")

	// ErrInvalidDescriptor reports a Descriptor with an unknown shape kind or
	// element kind, or non-positive sizes.
	ErrInvalidDescriptor = errors.New("shape: invalid descriptor")
)

// Mismatch builds the ErrIncompatibleShape error reported by op for operands
// a and b.
func Mismatch(op string, a, b Descriptor) error {
	return errors.Wrapf(ErrIncompatibleShape, "%s: %s and %s", op, a, b)
}

// Must panics with err when it is non-nil and returns d otherwise. It is the
// call-boundary guard used by the aggregate packages.
func Must(d Descriptor, err error) Descriptor {
	if err != nil {
		panic(err)
	}
	return d
}
