// SPDX-License-Identifier: MIT

package numeric

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidKind is returned when a Kind outside the closed set reaches
	// the promotion rules (e.g., the zero Kind or an unsupported reflect kind).
	ErrInvalidKind = errors.New("numeric: invalid scalar kind")

	// ErrNoOperands is returned by PromoteAll when called without kinds.
	ErrNoOperands = errors.New("numeric: no operands to promote")
)
