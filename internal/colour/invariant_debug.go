//go:build colour_debug

package colour

import "fmt"

// assertImpl panics on a violated contract precondition. Only compiled in
// when building with -tags colour_debug.
func assertImpl(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
