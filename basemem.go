// Package basemem provides architecture-independent raw memory primitives:
// word fills, zero fill, byte comparison, width-stepped scans and an all-zero
// predicate.
//
// The primitives operate on caller-owned memory and never allocate, retain or
// copy their arguments. A buffer is a slice whose element type fixes the
// access width; callers that start from a raw address build the slice once
// with View and then pick the primitive matching the width they need.
//
// Preconditions are the caller's job. Fill, compare and scan require a
// non-empty buffer and compare requires equal lengths. None of this is
// checked in release builds; building with -tags basemem_debug turns every
// precondition into a panic. IsZeroBuffer is the exception: it accepts an
// empty buffer and reports true.
//
// Basic usage:
//
//	buf := make([]uint64, 3)
//	basemem.SetMem64(buf, 0xAABBCCDDEEFF0011)
//
//	if i := basemem.ScanMem8(image, 0x5A); i >= 0 {
//	    fmt.Printf("first 0x5A at offset %d\n", i)
//	}
package basemem

import (
	"github.com/coregx/basemem/internal/assert"
	"github.com/coregx/basemem/simd"
)

// Word is the set of scalar types a buffer element may have.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// NotFound is the index returned by the scan primitives when no element
// matches.
const NotFound = -1

// SetMemN writes value into every element of buf and returns buf.
//
// Elements are written from the last index down to the first. The order is
// not part of the contract and callers must not rely on it.
func SetMemN[T Word](buf []T, value T) []T {
	assert.NonEmpty(len(buf))
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = value
	}
	return buf
}

// SetMem fills buf with the byte value and returns buf.
func SetMem(buf []byte, value byte) []byte {
	assert.NonEmpty(len(buf))
	simd.Fill(buf, value)
	return buf
}

// SetMem16 fills buf with the 16-bit value and returns buf.
func SetMem16(buf []uint16, value uint16) []uint16 {
	return SetMemN(buf, value)
}

// SetMem32 fills buf with the 32-bit value and returns buf.
func SetMem32(buf []uint32, value uint32) []uint32 {
	return SetMemN(buf, value)
}

// SetMem64 fills buf with the 64-bit value and returns buf.
func SetMem64(buf []uint64, value uint64) []uint64 {
	return SetMemN(buf, value)
}

// ZeroMem sets every byte of buf to zero and returns buf.
func ZeroMem(buf []byte) []byte {
	return SetMem(buf, 0)
}

// CompareMem compares a and b byte by byte. It returns 0 if all bytes are
// identical, otherwise the first mismatching byte of a minus the first
// mismatching byte of b, both taken as unsigned values in 0..255.
//
// The result orders buffers lexicographically and satisfies
// CompareMem(a, b) == -CompareMem(b, a). The mismatch offset is not
// reported. a and b must have the same non-zero length.
func CompareMem(a, b []byte) int {
	assert.NonEmpty(len(a))
	assert.SameLen(len(a), len(b))
	return simd.Compare(a, b)
}

// ScanMemN returns the index of the first element of buf equal to value, or
// NotFound. Elements are examined in ascending order and never past len(buf).
func ScanMemN[T Word](buf []T, value T) int {
	assert.NonEmpty(len(buf))
	for i, w := range buf {
		if w == value {
			return i
		}
	}
	return NotFound
}

// ScanMem8 returns the index of the first byte of buf equal to value, or
// NotFound.
func ScanMem8(buf []byte, value byte) int {
	assert.NonEmpty(len(buf))
	return simd.IndexByte(buf, value)
}

// ScanMem16 returns the index of the first 16-bit element equal to value, or
// NotFound.
func ScanMem16(buf []uint16, value uint16) int {
	return ScanMemN(buf, value)
}

// ScanMem32 returns the index of the first 32-bit element equal to value, or
// NotFound.
func ScanMem32(buf []uint32, value uint32) int {
	return ScanMemN(buf, value)
}

// ScanMem64 returns the index of the first 64-bit element equal to value, or
// NotFound.
func ScanMem64(buf []uint64, value uint64) int {
	return ScanMemN(buf, value)
}

// IsZeroBuffer reports whether every byte of buf is zero. An empty buffer is
// all zeros.
func IsZeroBuffer(buf []byte) bool {
	return simd.IsZero(buf)
}
