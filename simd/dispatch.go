// Package simd provides word-at-a-time kernels for the byte-granularity memory
// primitives: fill, compare, scan and the all-zero test. Each kernel processes
// 8 bytes per step using uint64 bitwise operations (SWAR, SIMD Within A
// Register) and falls back to byte-by-byte loops for short inputs.
//
// The package selects a dispatch level at initialization from the CPU
// features reported by golang.org/x/sys/cpu. On platforms where the Go
// runtime already ships a vectorised byte search (AVX2 on x86-64, ASIMD on
// arm64) long scans are handed over to it.
package simd

// Level identifies the implementation tier selected for the running CPU.
type Level int

const (
	// LevelSWAR uses pure Go 8-byte word operations only.
	LevelSWAR Level = iota
	// LevelASIMD hands long byte scans to the runtime's ARM64 vector path.
	LevelASIMD
	// LevelAVX2 hands long byte scans to the runtime's AVX2 path.
	LevelAVX2
)

// vectorThreshold is the shortest input worth handing to a vector path.
// Below it the setup cost of SIMD outweighs the benefit.
const vectorThreshold = 32

// level is set by the per-architecture init.
var level = LevelSWAR

// Dispatch returns the implementation tier chosen at startup.
func Dispatch() Level {
	return level
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelSWAR:
		return "swar"
	case LevelASIMD:
		return "asimd"
	case LevelAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// vectorScan reports whether a byte scan of n bytes should use the vector path.
func vectorScan(n int) bool {
	return level != LevelSWAR && n >= vectorThreshold
}
