//go:build !amd64 || appengine || noasm

package ctjson

// SupportedCPU reports whether the host CPU supports ctjson's accelerated
// ExecSIMD skipper backend. On this build it never does; ExecSIMD silently
// degrades to the portable ExecRuntime scan.
func SupportedCPU() bool {
	return false
}

// simdIndexByte is never called when SupportedCPU returns false, but is
// kept so skip.go does not need a build-tagged call site.
func simdIndexByte(buf []byte, target byte) int {
	return scalarIndexByte(buf, target)
}
