package basemem

import (
	"unsafe"

	"github.com/coregx/basemem/internal/assert"
	"github.com/coregx/basemem/internal/conv"
)

// View overlays count elements of T on the memory starting at addr.
//
// The slice aliases the caller's memory: nothing is copied or allocated, and
// the caller keeps ownership. addr must be aligned for T and the range
// [addr, addr+count*sizeof(T)) must stay valid while the slice is in use.
// A nil addr or zero count yields a nil slice.
func View[T Word](addr unsafe.Pointer, count int) []T {
	if addr == nil || count == 0 {
		return nil
	}
	var zero T
	assert.Aligned(uintptr(addr), unsafe.Alignof(zero))
	return unsafe.Slice((*T)(addr), count)
}

// Addr returns the address of buf[idx], or nil for a negative idx. Combined
// with a scan it turns the returned index into the address of the match:
//
//	p := basemem.Addr(buf, basemem.ScanMem32(buf, 0xCAFEF00D)) // nil if absent
func Addr[T Word](buf []T, idx int) unsafe.Pointer {
	if idx < 0 {
		return nil
	}
	return unsafe.Pointer(&buf[idx])
}

// ByteLen returns the size of buf in bytes.
func ByteLen[T Word](buf []T) int {
	var zero T
	return conv.MulInt(len(buf), int(unsafe.Sizeof(zero)))
}

// Bytes returns the bytes backing buf in host byte order, sharing memory
// with buf.
func Bytes[T Word](buf []T) []byte {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(buf))), ByteLen(buf))
}

// AsWords reinterprets b as elements of T in host byte order, sharing memory
// with b. Trailing bytes that do not fill a whole element are left out.
// It returns false when b does not start on a T boundary; the caller must
// then decode into a fresh slice instead.
func AsWords[T Word](b []byte) ([]T, bool) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b) < size {
		return nil, true
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, false
	}
	return unsafe.Slice((*T)(p), len(b)/size), true
}
