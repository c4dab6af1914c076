package image

import (
	"encoding/binary"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"

	"github.com/coregx/basemem"
)

// HostOrder is the byte order of the running CPU.
var HostOrder = hostOrder()

func hostOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ParseOrder maps "little"/"le", "big"/"be" or "host" onto a byte order.
func ParseOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	case "host", "native", "":
		return HostOrder, nil
	}
	return nil, errors.Errorf("unknown byte order %q", s)
}

func wordSize[T basemem.Word]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Decode returns data as elements of T stored in the given byte order.
// Trailing bytes that do not form a whole element are ignored.
//
// When order matches the host (or T is a single byte) and data is aligned
// for T the result aliases data and shared reports true; otherwise the words
// are decoded into a new slice.
func Decode[T basemem.Word](data []byte, order binary.ByteOrder) (words []T, shared bool) {
	size := wordSize[T]()
	if size == 1 || order == HostOrder {
		if w, ok := basemem.AsWords[T](data); ok {
			return w, true
		}
	}
	words = make([]T, len(data)/size)
	for i := range words {
		words[i] = decodeWord[T](data[i*size:(i+1)*size], order)
	}
	return words, false
}

func decodeWord[T basemem.Word](b []byte, order binary.ByteOrder) T {
	switch len(b) {
	case 1:
		return T(b[0])
	case 2:
		return T(order.Uint16(b))
	case 4:
		return T(order.Uint32(b))
	default:
		return T(order.Uint64(b))
	}
}

// Encode returns words as bytes in the given byte order. Host-order output
// shares memory with words.
func Encode[T basemem.Word](words []T, order binary.ByteOrder) []byte {
	if order == HostOrder {
		return basemem.Bytes(words)
	}
	size := wordSize[T]()
	out := make([]byte, len(words)*size)
	for i, w := range words {
		b := out[i*size : (i+1)*size]
		switch size {
		case 1:
			b[0] = byte(w)
		case 2:
			order.PutUint16(b, uint16(w))
		case 4:
			order.PutUint32(b, uint32(w))
		default:
			order.PutUint64(b, uint64(w))
		}
	}
	return out
}
