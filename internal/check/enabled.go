// SPDX-License-Identifier: MIT

//go:build !lvlinalg_release

package check

// Enabled reports whether assertions are compiled in.
const Enabled = true
