// SPDX-License-Identifier: MIT

package color

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownColor is returned by Named for a name outside the table.
	ErrUnknownColor = errors.New("color: unknown color name")

	// ErrInvalidHex is returned by FromHex for malformed input.
	ErrInvalidHex = errors.New("color: invalid hex color")
)
