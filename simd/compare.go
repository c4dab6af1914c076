package simd

import (
	"encoding/binary"
	"math/bits"
)

// Compare compares the first len(a) bytes of a and b and returns 0 if they
// are identical. Otherwise it returns int(a[i]) - int(b[i]) for the lowest
// index i where they differ, so the sign gives the lexicographic order and
// the magnitude the unsigned byte difference.
//
// b must be at least as long as a. The last byte is always compared: the
// word loop stops at the last full 8-byte chunk and the tail loop covers the
// remaining bytes up to and including index len(a)-1.
func Compare(a, b []byte) int {
	n := len(a)
	b = b[:n]

	if n < 8 {
		return compareBytes(a, b)
	}

	i := 0
	for i+8 <= n {
		// Big-endian loads put byte 0 in the most significant position,
		// so the leading zeros of the XOR locate the first difference.
		x := binary.BigEndian.Uint64(a[i:])
		y := binary.BigEndian.Uint64(b[i:])
		if x != y {
			i += bits.LeadingZeros64(x^y) / 8
			return int(a[i]) - int(b[i])
		}
		i += 8
	}
	return compareBytes(a[i:], b[i:])
}

// compareBytes is the scalar form of Compare.
func compareBytes(a, b []byte) int {
	b = b[:len(a)]
	for i := range a {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}
