//go:build !colour_debug

package colour

// assertImpl is a no-op in release builds, matching the spec's "signal via
// assertion/abort in debug, unspecified in release" contract.
func assertImpl(_ bool, _ string, _ ...any) {}
