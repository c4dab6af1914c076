//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// hasAVX2 indicates whether the CPU supports AVX2 instructions (256-bit SIMD).
// AVX2 was introduced in Intel Haswell (2013) and AMD Excavator (2015).
var hasAVX2 = cpu.X86.HasAVX2

func init() {
	if hasAVX2 {
		level = LevelAVX2
	}
}
