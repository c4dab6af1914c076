package simd

import "encoding/binary"

// IsZero reports whether every byte of buf is zero. An empty buf is
// trivially zero.
//
// Algorithm: OR four 8-byte words together per iteration and exit on the
// first non-zero block, then finish the remaining words and the 0-7 byte tail
// one at a time.
func IsZero(buf []byte) bool {
	n := len(buf)
	if n < 8 {
		return isZeroBytes(buf)
	}

	i := 0
	for i+32 <= n {
		w := binary.LittleEndian.Uint64(buf[i:]) |
			binary.LittleEndian.Uint64(buf[i+8:]) |
			binary.LittleEndian.Uint64(buf[i+16:]) |
			binary.LittleEndian.Uint64(buf[i+24:])
		if w != 0 {
			return false
		}
		i += 32
	}
	for i+8 <= n {
		if binary.LittleEndian.Uint64(buf[i:]) != 0 {
			return false
		}
		i += 8
	}
	return isZeroBytes(buf[i:])
}

// isZeroBytes is the scalar form of IsZero.
func isZeroBytes(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}
	return true
}
