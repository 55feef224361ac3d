package ctjson

import "reflect"

// FromJSON parses the whole of buf as T (spec §6's from_json<T>(bytes) ->
// T). T must have a schema registered via Register[T].
func FromJSON[T any](buf []byte, opts ...Option) (T, error) {
	var out T
	schema, ok := schemaFor(reflect.TypeOf(out))
	if !ok {
		return out, newError(InvalidClass, 0, "no schema registered for "+reflect.TypeOf(out).String())
	}
	o := buildOptions(opts...)
	ps := NewParseState(buf, o)
	rv := reflect.ValueOf(&out).Elem()
	if err := parseClassInto(ps, schema, rv); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// FromJSONPath navigates to path within buf first, then parses the value
// found there as T (spec §6's from_json<T>(bytes, path) -> T).
func FromJSONPath[T any](buf []byte, path string, opts ...Option) (T, error) {
	var zero T
	schema, ok := schemaFor(reflect.TypeOf(zero))
	if !ok {
		return zero, newError(InvalidClass, 0, "no schema registered for "+reflect.TypeOf(zero).String())
	}
	o := buildOptions(opts...)
	ps := NewParseState(buf, o)
	slc, err := navigatePath(ps, path)
	if err != nil {
		return zero, err
	}
	var out T
	rv := reflect.ValueOf(&out).Elem()
	child := childState(ps, slc)
	if err := parseClassInto(child, schema, rv); err != nil {
		return zero, err
	}
	return out, nil
}

// FromJSONArray parses the whole of buf as a JSON array of elements
// described by elem, into a []T (spec §6's
// from_json_array<Elem>(bytes) -> Container).
func FromJSONArray[T any](buf []byte, elem Member, opts ...Option) ([]T, error) {
	o := buildOptions(opts...)
	ps := NewParseState(buf, o)
	ps.TrimLeft()
	return parseArrayInto[T](ps, elem)
}

// JSONArrayRange returns a lazy iterator over the array found at path
// within buf (or the whole document, if path is empty), matching spec
// §6's json_array_range<Elem>(bytes, path?). This is how a named
// top-level array nested inside an object — e.g. a "statuses" array on a
// timeline document — is iterated without parsing the rest of the
// document (spec §8 scenario 6 / SPEC_FULL §D).
func JSONArrayRange[T any](buf []byte, path string, elem Member, opts ...Option) (*ArrayIter[T], error) {
	o := buildOptions(opts...)
	ps := NewParseState(buf, o)
	if path == "" {
		ps.TrimLeft()
		if o.Checked && ps.Front() != '[' {
			return nil, newError(UnexpectedBracketing, ps.pos, "expected '['")
		}
		ps.RemovePrefix(1)
		ps.TrimLeft()
		return &ArrayIter[T]{ps: ps, elem: elem}, nil
	}
	slc, err := navigatePath(ps, path)
	if err != nil {
		return nil, err
	}
	child := childState(ps, slc)
	child.TrimLeft()
	if o.Checked && child.Front() != '[' {
		return nil, newError(UnexpectedBracketing, child.pos, "expected '['")
	}
	child.RemovePrefix(1)
	child.TrimLeft()
	return &ArrayIter[T]{ps: child, elem: elem}, nil
}
