package basemem

import (
	"testing"
	"unsafe"
)

func TestViewAliasesMemory(t *testing.T) {
	var backing [4]uint64
	words := View[uint64](unsafe.Pointer(&backing[0]), len(backing))
	if len(words) != 4 {
		t.Fatalf("len(View) = %d, want 4", len(words))
	}

	SetMem64(words, 0x1122334455667788)
	for i, w := range backing {
		if w != 0x1122334455667788 {
			t.Errorf("backing[%d] = %#x after fill through the view", i, w)
		}
	}
}

func TestViewNarrowerWidth(t *testing.T) {
	var backing [2]uint64
	halves := View[uint32](unsafe.Pointer(&backing[0]), 4)
	SetMem32(halves, 0xFFFFFFFF)
	if backing[0] != 0xFFFFFFFFFFFFFFFF || backing[1] != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("backing = %#x, want all ones", backing)
	}
}

func TestViewEmpty(t *testing.T) {
	if v := View[uint16](nil, 4); v != nil {
		t.Errorf("View(nil) = %v, want nil", v)
	}
	var x uint16
	if v := View[uint16](unsafe.Pointer(&x), 0); v != nil {
		t.Errorf("View(count=0) = %v, want nil", v)
	}
}

func TestAddr(t *testing.T) {
	buf := []uint16{10, 20, 30}
	if Addr(buf, NotFound) != nil {
		t.Error("Addr(NotFound) must be nil")
	}
	if got, want := Addr(buf, 2), unsafe.Add(unsafe.Pointer(&buf[0]), 4); got != want {
		t.Errorf("Addr(buf, 2) = %p, want %p", got, want)
	}
}

func TestByteLen(t *testing.T) {
	if got := ByteLen(make([]uint8, 5)); got != 5 {
		t.Errorf("ByteLen([]uint8) = %d", got)
	}
	if got := ByteLen(make([]uint16, 5)); got != 10 {
		t.Errorf("ByteLen([]uint16) = %d", got)
	}
	if got := ByteLen(make([]uint32, 5)); got != 20 {
		t.Errorf("ByteLen([]uint32) = %d", got)
	}
	if got := ByteLen(make([]uint64, 5)); got != 40 {
		t.Errorf("ByteLen([]uint64) = %d", got)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	words := []uint32{0, 0, 0}
	raw := Bytes(words)
	if len(raw) != 12 {
		t.Fatalf("len(Bytes) = %d, want 12", len(raw))
	}
	raw[4] = 1
	if IsZeroBuffer(Bytes(words)) {
		t.Error("byte written through Bytes not visible in words")
	}
	if Bytes([]uint16(nil)) != nil {
		t.Error("Bytes(nil) must be nil")
	}
}

func TestAsWords(t *testing.T) {
	words := make([]uint64, 4)
	raw := Bytes(words)

	got, ok := AsWords[uint32](raw)
	if !ok || len(got) != 8 {
		t.Fatalf("AsWords aligned: len %d ok %v", len(got), ok)
	}

	// Trailing bytes are dropped.
	got64, ok := AsWords[uint64](raw[:20])
	if !ok || len(got64) != 2 {
		t.Errorf("AsWords trailing: len %d ok %v, want 2 true", len(got64), ok)
	}

	// Start one byte in: never aligned for 16-bit or wider.
	if _, ok := AsWords[uint16](raw[1:]); ok {
		t.Error("AsWords accepted a misaligned start")
	}

	// Shorter than one element.
	if got, ok := AsWords[uint64](raw[:7]); !ok || got != nil {
		t.Errorf("AsWords short: %v %v", got, ok)
	}
}
