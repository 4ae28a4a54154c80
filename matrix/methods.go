// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/cockroachdb/redact"

	"github.com/katalvlaran/lvlinalg/internal/hashx"
	"github.com/katalvlaran/lvlinalg/numeric"
)

// Equal reports whether m and b hold the same cells. Layout does not
// participate. Different dimensions panic with ErrDimensionMismatch.
func (m Matrix[T]) Equal(b Matrix[T]) bool {
	if m.rows != b.rows || m.cols != b.cols {
		panic(dimensionError(opEqual, m.Shape(), b.Shape()))
	}
	for k := 0; k < m.n(); k++ {
		if m.e[k] != b.e[k] {
			return false
		}
	}

	return true
}

// EqualScalar reports whether every cell equals s.
func (m Matrix[T]) EqualScalar(s T) bool {
	for k := 0; k < m.n(); k++ {
		if m.e[k] != s {
			return false
		}
	}

	return true
}

// Hash returns a row-major, order-sensitive hash of the cells; the
// dimensions are folded in first so a 2×2 and a 1×4 with the same values
// differ. Equal matrices hash equal whatever their layouts.
func (m Matrix[T]) Hash() uint64 {
	h := hashx.Combine(hashx.Seed, uint64(m.rows)<<8|uint64(m.cols))
	for k := 0; k < m.n(); k++ {
		h = hashx.Combine(h, hashx.Elem(m.e[k]))
	}

	return h
}

// SafeFormat implements redact.SafeFormatter: rows as vectors inside
// parentheses, "((a, b), (c, d))".
func (m Matrix[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('(')
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			w.SafeString(", ")
		}
		w.SafeRune('(')
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				w.SafeString(", ")
			}
			w.SafeString(redact.SafeString(numeric.Format(m.e[i*m.Cols()+j])))
		}
		w.SafeRune(')')
	}
	w.SafeRune(')')
}

// String renders m as "((a, b), (c, d))".
func (m Matrix[T]) String() string {
	return redact.StringWithoutMarkers(m)
}
