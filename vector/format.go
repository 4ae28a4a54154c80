// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/cockroachdb/redact"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// SafeFormat implements redact.SafeFormatter. Numeric components carry no
// user data and print unredacted.
func (v Vector[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('(')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			w.SafeString(", ")
		}
		w.SafeString(redact.SafeString(numeric.Format(v.e[i])))
	}
	w.SafeRune(')')
}

// String renders v as "(v0, v1, …)".
func (v Vector[T]) String() string {
	return redact.StringWithoutMarkers(v)
}
