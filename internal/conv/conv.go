// Package conv provides checked integer conversions for buffer arithmetic.
//
// Narrowing a parsed scalar to a fill or scan width, or turning an element
// count into a byte count, must never wrap silently. These helpers panic on
// overflow since that indicates a programming error in the caller.
package conv

import "math"

// MulInt returns n*width, where n is an element count and width the element
// size in bytes. Panics if n is negative, width is not positive, or the
// product does not fit in an int.
//
//go:inline
func MulInt(n, width int) int {
	if n < 0 || width <= 0 {
		panic("integer overflow: negative element count or width")
	}
	if n > math.MaxInt/width {
		panic("integer overflow: byte length out of int range")
	}
	return n * width
}

// Uint64ToUint8 safely converts a uint64 to uint8.
// Panics if n > math.MaxUint8.
//
//go:inline
func Uint64ToUint8(n uint64) uint8 {
	if n > math.MaxUint8 {
		panic("integer overflow: uint64 value out of uint8 range")
	}
	return uint8(n)
}

// Uint64ToUint16 safely converts a uint64 to uint16.
// Panics if n > math.MaxUint16.
//
//go:inline
func Uint64ToUint16(n uint64) uint16 {
	if n > math.MaxUint16 {
		panic("integer overflow: uint64 value out of uint16 range")
	}
	return uint16(n)
}

// Uint64ToUint32 safely converts a uint64 to uint32.
// Panics if n > math.MaxUint32.
//
//go:inline
func Uint64ToUint32(n uint64) uint32 {
	if n > math.MaxUint32 {
		panic("integer overflow: uint64 value out of uint32 range")
	}
	return uint32(n)
}

// FitsWidth reports whether n can be represented in width bits without
// truncation. Width must be one of 8, 16, 32 or 64.
func FitsWidth(n uint64, width int) bool {
	switch width {
	case 8:
		return n <= math.MaxUint8
	case 16:
		return n <= math.MaxUint16
	case 32:
		return n <= math.MaxUint32
	case 64:
		return true
	}
	return false
}
