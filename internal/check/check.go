// SPDX-License-Identifier: MIT

// Package check implements the debug assertion policy shared by every
// lvlinalg package.
//
// Bounds and numeric-domain preconditions are caller errors, not recoverable
// conditions. By default they are checked and a violation panics with an
// errors.AssertionFailedf error. Building with -tags lvlinalg_release turns
// Enabled into a false constant and every check compiles away; an
// out-of-range access is then undefined (it may read a zero padding slot or
// hit the runtime's own array bounds check).
package check

import "github.com/cockroachdb/errors"

// Index asserts 0 <= i < n.
func Index(i, n int) {
	if Enabled && (i < 0 || i >= n) {
		panic(errors.AssertionFailedf("index %d out of range [0, %d)", i, n))
	}
}

// That asserts cond, reporting format/args on failure.
func That(cond bool, format string, args ...interface{}) {
	if Enabled && !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
