// SPDX-License-Identifier: MIT

// Package testutil holds assertions shared by the lvlinalg test suites.
package testutil

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/internal/check"
)

// recovered runs f and returns the error it panicked with.
func recovered(t testing.TB, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.Truef(t, ok, "panic value %v (%T) is not an error", r, r)
		err = e
	}()
	f()
	return nil
}

// RequirePanicsIs asserts that f panics with an error matching target.
func RequirePanicsIs(t testing.TB, target error, f func()) {
	t.Helper()
	err := recovered(t, f)
	require.Truef(t, errors.Is(err, target), "expected errors.Is(%v, %v)", err, target)
}

// RequireAssertion asserts that f trips a debug assertion. It skips the
// test in release builds, where assertions are compiled out.
func RequireAssertion(t testing.TB, f func()) {
	t.Helper()
	if !check.Enabled {
		t.Skip("assertions disabled by the lvlinalg_release tag")
	}
	err := recovered(t, f)
	require.Truef(t, errors.HasAssertionFailure(err), "expected an assertion failure, got %v", err)
}
