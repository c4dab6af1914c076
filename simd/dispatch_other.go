//go:build !amd64 && !arm64

package simd

// Other architectures stay on the SWAR kernels set by default.
