//go:build amd64 && !appengine && !noasm

package ctjson

import (
	"bytes"

	"github.com/klauspost/cpuid/v2"
)

// SupportedCPU reports whether the host CPU supports ctjson's accelerated
// ExecSIMD skipper backend, mirroring the CPU-capability gate the teacher
// library used to decide whether to take its vectorized tape-building
// path (simdjson_amd64.go's SupportedCPU).
func SupportedCPU() bool {
	return cpuid.CPU.Supports(cpuid.SSE2)
}

// simdIndexByte runs skip_string's quote search through bytes.IndexByte,
// whose amd64 implementation is itself a hand-written vectorized scan in
// the Go runtime — the same "vectorized byte scan" role spec §4.2/§6
// describes for the simd ExecMode, without requiring ctjson to carry its
// own assembly.
func simdIndexByte(buf []byte, target byte) int {
	return bytes.IndexByte(buf, target)
}
