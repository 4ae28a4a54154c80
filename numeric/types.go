// SPDX-License-Identifier: MIT

package numeric

import "golang.org/x/exp/constraints"

// Signed is any signed integer type.
type Signed interface {
	constraints.Signed
}

// Unsigned is any unsigned integer type.
type Unsigned interface {
	constraints.Unsigned
}

// Integer is any integer type. Modulo and ceiling division require it.
type Integer interface {
	constraints.Integer
}

// Float is any floating-point type. Square roots, norms and every
// transcendental helper require it.
type Float interface {
	constraints.Float
}

// Real is the element constraint of every aggregate in lvlinalg.
type Real interface {
	Integer | Float
}
