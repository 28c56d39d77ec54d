//go:build !debug

package assert

// Enabled is false in release builds; That becomes a no-op.
const Enabled = false

// That is a no-op outside of -tags debug builds.
func That(cond bool, format string, args ...any) {}
