//go:build basemem_debug

// Package assert holds the precondition checks of the memory primitives.
//
// In release builds every check compiles to an empty function and the
// primitives trust their callers. Building with -tags basemem_debug turns
// the checks into panics so tests can catch precondition violations.
package assert

import "strconv"

// Enabled reports whether precondition checks are compiled in.
const Enabled = true

// NonEmpty panics if n is zero.
func NonEmpty(n int) {
	if n == 0 {
		panic("basemem: zero-length buffer")
	}
}

// SameLen panics if the two buffer lengths differ.
func SameLen(a, b int) {
	if a != b {
		panic("basemem: buffer length mismatch: " + strconv.Itoa(a) + " != " + strconv.Itoa(b))
	}
}

// Aligned panics if addr is not a multiple of align.
func Aligned(addr, align uintptr) {
	if align != 0 && addr%align != 0 {
		panic("basemem: address 0x" + strconv.FormatUint(uint64(addr), 16) +
			" not aligned to " + strconv.FormatUint(uint64(align), 10))
	}
}
