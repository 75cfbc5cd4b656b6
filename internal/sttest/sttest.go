// Package sttest provides helpers for system tests which depend on networking mode.
package sttest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x1unix/calico-st/internal/networking"
)

// NetworkingMode returns networking mode configured for the test process.
//
// Test is stopped if ST_NETWORKING contains unsupported value.
func NetworkingMode(t testing.TB) networking.Mode {
	t.Helper()
	return ResolveMode(t, networking.DefaultResolver())
}

// ResolveMode returns networking mode from passed resolver and stops the test on error.
func ResolveMode(t testing.TB, r *networking.Resolver) networking.Mode {
	t.Helper()
	mode, err := r.Mode()
	require.NoError(t, err, "unsupported test environment")
	return mode
}

// SkipUnlessMode skips the test if resolved networking mode is not equal to want.
func SkipUnlessMode(t testing.TB, r *networking.Resolver, want networking.Mode) {
	t.Helper()
	if got := ResolveMode(t, r); got != want {
		t.Skipf("skipping test for %q networking mode (current: %q)", want, got)
	}
}

// DummyNetwork returns a network fixture for tests which don't need real network.
func DummyNetwork(t testing.TB, name string) networking.Network {
	t.Helper()
	n := networking.NewDummyNetwork(name)
	t.Cleanup(func() {
		require.False(t, n.Deleted(), "dummy network %q was marked as deleted", n)
	})
	return n
}
