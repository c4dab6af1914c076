package simd

// fillThreshold is the length below which a plain store loop beats the
// doubling copy.
const fillThreshold = 16

// Fill sets every byte of buf to v.
//
// A zero fill uses the clear builtin, which the runtime lowers to its
// memclr routine. Other values store the first byte and then double the
// filled prefix with copy, taking log2(len(buf)) copy calls.
func Fill(buf []byte, v byte) {
	if v == 0 {
		clear(buf)
		return
	}
	if len(buf) < fillThreshold {
		fillBytes(buf, v)
		return
	}
	buf[0] = v
	for filled := 1; filled < len(buf); filled *= 2 {
		copy(buf[filled:], buf[:filled])
	}
}

// fillBytes is the scalar form of Fill.
func fillBytes(buf []byte, v byte) {
	for i := range buf {
		buf[i] = v
	}
}
