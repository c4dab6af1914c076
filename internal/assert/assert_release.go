//go:build !basemem_debug

// Package assert holds the precondition checks of the memory primitives.
//
// In release builds every check compiles to an empty function and the
// primitives trust their callers. Building with -tags basemem_debug turns
// the checks into panics so tests can catch precondition violations.
package assert

// Enabled reports whether precondition checks are compiled in.
const Enabled = false

// NonEmpty is a no-op in release builds.
func NonEmpty(int) {}

// SameLen is a no-op in release builds.
func SameLen(int, int) {}

// Aligned is a no-op in release builds.
func Aligned(uintptr, uintptr) {}
