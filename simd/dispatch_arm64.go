//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// hasASIMD indicates Advanced SIMD (NEON) support. It is mandatory on ARMv8
// but some emulators report it missing.
var hasASIMD = cpu.ARM64.HasASIMD

func init() {
	if hasASIMD {
		level = LevelASIMD
	}
}
