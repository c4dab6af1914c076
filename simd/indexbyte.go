package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// SWAR constants: lo8 has 0x01 in every byte, hi8 has 0x80 in every byte.
const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// IndexByte returns the index of the first instance of v in buf, or -1 if v
// is not present. Only the first len(buf) bytes are ever read.
//
// Performance characteristics:
//   - Small inputs (< 8 bytes): byte-by-byte comparison
//   - Medium inputs: SWAR, 8 bytes per iteration
//   - Inputs >= 32 bytes on AVX2/ASIMD CPUs: the runtime's vector search
//
// Example:
//
//	buf := []byte{5, 7, 7, 9}
//	pos := simd.IndexByte(buf, 7) // pos == 1, the first 7
func IndexByte(buf []byte, v byte) int {
	if vectorScan(len(buf)) {
		return bytes.IndexByte(buf, v)
	}
	return indexByteGeneric(buf, v)
}

// indexByteGeneric implements pure Go byte search using SWAR.
//
// Algorithm:
//  1. Broadcast v into every byte of a uint64 mask
//  2. Load 8 bytes from buf as little-endian uint64
//  3. XOR with the mask (matching bytes become 0x00)
//  4. Detect a zero byte with (x - lo8) & ^x & hi8
//  5. The lowest set bit marks the first match
//
// The zero-byte formula can flag bytes above a true zero because of borrow
// propagation, but never below it, so the lowest flagged byte is exact.
func indexByteGeneric(buf []byte, v byte) int {
	n := len(buf)

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if n < 8 {
		for i := 0; i < n; i++ {
			if buf[i] == v {
				return i
			}
		}
		return -1
	}

	// Example: v=0x42 -> mask=0x4242424242424242
	mask := uint64(v) * lo8

	i := 0
	for i+8 <= n {
		x := binary.LittleEndian.Uint64(buf[i:]) ^ mask
		if found := (x - lo8) & ^x & hi8; found != 0 {
			// Little-endian load: byte k of the chunk is bits 8k..8k+7.
			return i + bits.TrailingZeros64(found)/8
		}
		i += 8
	}

	// Remaining 0-7 bytes
	for ; i < n; i++ {
		if buf[i] == v {
			return i
		}
	}
	return -1
}
