package basemem

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

type fillCase[T Word] struct {
	name  string
	size  int
	value T
}

func checkFill[T Word](t *testing.T, fill func([]T, T) []T, cases []fillCase[T]) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]T, tc.size)
			got := fill(buf, tc.value)

			if unsafe.SliceData(got) != unsafe.SliceData(buf) || len(got) != len(buf) {
				t.Fatalf("fill returned a different buffer")
			}
			for i, w := range buf {
				if w != tc.value {
					t.Fatalf("element %d = %#x, want %#x", i, w, tc.value)
				}
			}
		})
	}
}

func TestSetMem16(t *testing.T) {
	checkFill(t, SetMem16, []fillCase[uint16]{
		{"single", 1, 0xBEEF},
		{"odd", 7, 0x0102},
		{"max", 33, 0xFFFF},
		{"zero", 5, 0},
	})
}

func TestSetMem32(t *testing.T) {
	checkFill(t, SetMem32, []fillCase[uint32]{
		{"single", 1, 0xDEADBEEF},
		{"odd", 9, 0x01020304},
		{"max", 64, 0xFFFFFFFF},
	})
}

func TestSetMem64(t *testing.T) {
	checkFill(t, SetMem64, []fillCase[uint64]{
		{"single", 1, 0x0123456789ABCDEF},
		{"three", 3, 0xAABBCCDDEEFF0011},
		{"many", 100, 0xFFFFFFFFFFFFFFFF},
	})
}

func TestSetMem(t *testing.T) {
	checkFill(t, SetMem, []fillCase[byte]{
		{"single", 1, 0x5A},
		{"short", 15, 0xA5},
		{"long", 1000, 0xFF},
		{"zero", 40, 0},
	})
}

// TestSetMem64Pattern fills three 64-bit elements and checks the 24 backing
// bytes each encode the value.
func TestSetMem64Pattern(t *testing.T) {
	const value = uint64(0xAABBCCDDEEFF0011)
	buf := make([]uint64, 3)
	SetMem64(buf, value)

	raw := Bytes(buf)
	if len(raw) != 24 {
		t.Fatalf("len(Bytes) = %d, want 24", len(raw))
	}
	var want [8]byte
	binary.NativeEndian.PutUint64(want[:], value)
	for i := 0; i < 24; i += 8 {
		if !bytes.Equal(raw[i:i+8], want[:]) {
			t.Errorf("bytes %d..%d = % x, want % x", i, i+8, raw[i:i+8], want)
		}
	}
}

// TestSetMemSubslice fills the middle of a buffer and leaves the rest alone.
func TestSetMemSubslice(t *testing.T) {
	buf := []uint32{1, 2, 3, 4, 5, 6}
	SetMem32(buf[2:4], 9)
	if diff := cmp.Diff([]uint32{1, 2, 9, 9, 5, 6}, buf); diff != "" {
		t.Errorf("SetMem32 on subslice (-want +got):\n%s", diff)
	}
}

func TestZeroMem(t *testing.T) {
	for _, size := range []int{1, 8, 17, 4096} {
		buf := bytes.Repeat([]byte{0xCD}, size)
		got := ZeroMem(buf)
		if &got[0] != &buf[0] {
			t.Fatalf("size %d: ZeroMem returned a different buffer", size)
		}
		if !IsZeroBuffer(buf) {
			t.Errorf("size %d: buffer not zero after ZeroMem", size)
		}
	}
}

func TestCompareMem(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want int
	}{
		{"lower_last", []byte{1, 2, 3}, []byte{1, 2, 4}, -1},
		{"higher_last", []byte{1, 2, 4}, []byte{1, 2, 3}, 1},
		{"equal", []byte{1, 2, 3}, []byte{1, 2, 3}, 0},
		{"single_equal", []byte{0}, []byte{0}, 0},
		{"unsigned", []byte{0x80}, []byte{0x7F}, 1},
		{"full_range", []byte{0x00}, []byte{0xFF}, -255},
		{"first_of_many", []byte("firmware volume"), []byte("firmware Volume"), 'v' - 'V'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareMem(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CompareMem(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if rev := CompareMem(tt.b, tt.a); rev != -got {
				t.Errorf("CompareMem(b, a) = %d, want %d", rev, -got)
			}
		})
	}
}

func TestScanMem8(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		v    byte
		want int
	}{
		{"first_of_duplicates", []byte{5, 7, 7, 9}, 7, 1},
		{"first", []byte{5, 7, 7, 9}, 5, 0},
		{"last", []byte{5, 7, 7, 9}, 9, 3},
		{"absent", []byte{5, 7, 7, 9}, 8, NotFound},
		{"single_hit", []byte{0}, 0, 0},
		{"single_miss", []byte{1}, 0, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScanMem8(tt.buf, tt.v); got != tt.want {
				t.Errorf("ScanMem8(%v, %d) = %d, want %d", tt.buf, tt.v, got, tt.want)
			}
		})
	}
}

func TestScanMem16(t *testing.T) {
	buf := []uint16{0x0007, 0x0700, 0x0707, 0x0700}
	if got := ScanMem16(buf, 0x0700); got != 1 {
		t.Errorf("ScanMem16 = %d, want 1", got)
	}
	if got := ScanMem16(buf, 0x0070); got != NotFound {
		t.Errorf("ScanMem16 absent = %d, want NotFound", got)
	}
}

func TestScanMem32(t *testing.T) {
	buf := []uint32{0, 0xCAFEF00D, 0, 0xCAFEF00D}
	if got := ScanMem32(buf, 0xCAFEF00D); got != 1 {
		t.Errorf("ScanMem32 = %d, want 1", got)
	}
	if got := ScanMem32(buf[2:3], 0xCAFEF00D); got != NotFound {
		t.Errorf("ScanMem32 on subslice = %d, want NotFound", got)
	}
}

func TestScanMem64(t *testing.T) {
	buf := []uint64{1, 2, 3, 0xFFFFFFFFFFFFFFFF}
	if got := ScanMem64(buf, 0xFFFFFFFFFFFFFFFF); got != 3 {
		t.Errorf("ScanMem64 = %d, want 3", got)
	}
	if got := ScanMem64(buf, 0xFFFFFFFF); got != NotFound {
		t.Errorf("ScanMem64 absent = %d, want NotFound", got)
	}
}

// TestScanMemBoundedByLength checks that a match past len(buf) is never
// reported for any width.
func TestScanMemBoundedByLength(t *testing.T) {
	words := []uint32{1, 1, 1, 7, 7}
	if got := ScanMem32(words[:3], 7); got != NotFound {
		t.Errorf("ScanMem32 read past length: %d", got)
	}
	raw := []byte{1, 1, 1, 7, 7}
	if got := ScanMem8(raw[:3], 7); got != NotFound {
		t.Errorf("ScanMem8 read past length: %d", got)
	}
}

// TestScanMemAddress checks that a single match at k sits at base + k*width.
func TestScanMemAddress(t *testing.T) {
	for k := 0; k < 8; k++ {
		t.Run(fmt.Sprintf("k_%d", k), func(t *testing.T) {
			buf := make([]uint64, 8)
			buf[k] = 0x5A5A
			idx := ScanMem64(buf, 0x5A5A)
			want := unsafe.Add(unsafe.Pointer(&buf[0]), k*8)
			if got := Addr(buf, idx); got != want {
				t.Errorf("Addr = %p, want %p", got, want)
			}
		})
	}
}

func TestIsZeroBuffer(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want bool
	}{
		{"empty", []byte{}, true},
		{"nil", nil, true},
		{"last_byte_set", []byte{0, 0, 0, 1}, false},
		{"all_zero", make([]byte, 4), true},
		{"first_byte_set", []byte{1, 0, 0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZeroBuffer(tt.buf); got != tt.want {
				t.Errorf("IsZeroBuffer(%v) = %v, want %v", tt.buf, got, tt.want)
			}
		})
	}
}

func BenchmarkSetMem64(b *testing.B) {
	buf := make([]uint64, 4096)
	b.SetBytes(int64(ByteLen(buf)))
	for i := 0; i < b.N; i++ {
		SetMem64(buf, 0xAABBCCDDEEFF0011)
	}
}

func BenchmarkScanMem32(b *testing.B) {
	buf := make([]uint32, 4096)
	buf[len(buf)-1] = 1
	b.SetBytes(int64(ByteLen(buf)))
	for i := 0; i < b.N; i++ {
		_ = ScanMem32(buf, 1)
	}
}
