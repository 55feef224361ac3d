package ctjson

import "unsafe"

// unsafeBytesToString aliases b as a string without copying, for the
// WithUnsafeStrings fast path. Callers must only use it when the input
// buffer backing b is guaranteed to outlive the returned string (spec §5's
// memory ownership discipline: returned slices borrow from the input).
func unsafeBytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
