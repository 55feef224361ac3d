package ctjson

// CustomFieldT is a typed convenience wrapper over CustomField for the
// common case where the custom conversion round-trips through a single
// concrete Go type T, matching spec §3's Custom tag "from_text"/"to_text"
// pair (daw_json_link's json_custom binds the same pair per C++ type;
// here it is a pair of generic closures bound per Go field instead).
func CustomFieldT[T any](name string, fromText func([]byte) (T, error), toText func(T) ([]byte, error), index ...int) Member {
	return CustomField(name,
		func(b []byte) (interface{}, error) {
			return fromText(b)
		},
		func(v interface{}) ([]byte, error) {
			return toText(v.(T))
		},
		index...,
	)
}
