package colour

// assertf checks a contract precondition. Under normal builds it is a
// no-op when the condition holds and silently does nothing when it
// doesn't — contract violations are programmer bugs, not data conditions,
// and the spec leaves release-build behaviour on violation unspecified.
// Build with -tags colour_debug to turn violations into panics while
// developing against this package.
func assertf(cond bool, format string, args ...any) {
	assertImpl(cond, format, args...)
}
