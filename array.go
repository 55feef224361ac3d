package ctjson

import "reflect"

// ArrayIter is a single-pass, non-restartable forward iterator over the
// elements of a JSON array (spec §4.7). Construction consumes the
// opening '[' and trims; each Next either detects ']' (end) or skips the
// next element, parses it through elem, and cleans the trailing comma.
//
// elem describes the element's tag the same way a Member describes a
// struct field (NumberElem, ClassElem, and so on from schema.go) — an
// array of structs still routes through parseIntoValue's TagClass case,
// which resolves the element's own Schema off its reflect.Type, so one
// iterator implementation serves both primitive and struct elements.
type ArrayIter[T any] struct {
	ps   *ParseState
	elem Member
	err  error
	done bool
}

// NewArrayIter constructs an iterator over buf, which must be a JSON
// array, with elements described by elem (e.g. NumberElem() for
// []int, ClassElem() for a registered struct type).
func NewArrayIter[T any](buf []byte, elem Member, opts ...Option) (*ArrayIter[T], error) {
	o := buildOptions(opts...)
	ps := NewParseState(buf, o)
	ps.TrimLeft()
	if o.Checked && ps.Front() != '[' {
		return nil, newError(UnexpectedBracketing, ps.pos, "expected '['")
	}
	ps.RemovePrefix(1)
	ps.TrimLeft()
	return &ArrayIter[T]{ps: ps, elem: elem}, nil
}

// Next reports whether an element was produced. Once it returns false,
// Err reports whether iteration stopped because of an error or because
// the array ended normally.
func (it *ArrayIter[T]) Next() (T, bool) {
	var zero T
	if it.done || it.err != nil {
		return zero, false
	}
	it.ps.TrimLeft()
	if it.ps.Empty() || it.ps.Front() == ']' {
		it.done = true
		return zero, false
	}

	elemStart := it.ps.pos
	vslc, err := it.ps.skipValue()
	if err != nil {
		it.err = err
		it.done = true
		return zero, false
	}
	if it.ps.opts.Checked && vslc.Empty() {
		it.err = newError(InvalidArray, elemStart, "empty array element")
		it.done = true
		return zero, false
	}

	var out T
	rv := reflect.ValueOf(&out).Elem()
	if err := parseIntoValue(it.ps, &it.elem, rv, vslc); err != nil {
		it.err = err
		it.done = true
		return zero, false
	}

	if err := it.ps.CleanTail(); err != nil {
		it.err = err
		it.done = true
		return zero, false
	}
	return out, true
}

// Err returns the error that stopped iteration, if any.
func (it *ArrayIter[T]) Err() error {
	return it.err
}

// parseArrayInto parses the JSON array under ps's cursor into a Go
// slice of T, per spec's from_json_array entry point. elem describes
// the element tag the same way NewArrayIter does.
func parseArrayInto[T any](ps *ParseState, elem Member) ([]T, error) {
	if ps.opts.Checked && ps.Front() != '[' {
		return nil, newError(UnexpectedBracketing, ps.pos, "expected '['")
	}
	ps.RemovePrefix(1)
	ps.TrimLeft()

	result := make([]T, 0, 4)
	for !ps.Empty() && ps.Front() != ']' {
		elemStart := ps.pos
		vslc, err := ps.skipValue()
		if err != nil {
			return nil, err
		}
		if ps.opts.Checked && vslc.Empty() {
			return nil, newError(InvalidArray, elemStart, "empty array element")
		}
		var out T
		rv := reflect.ValueOf(&out).Elem()
		if err := parseIntoValue(ps, &elem, rv, vslc); err != nil {
			return nil, err
		}
		result = append(result, out)
		if err := ps.CleanTail(); err != nil {
			return nil, err
		}
	}
	if ps.opts.Checked && ps.Front() != ']' {
		return nil, newError(UnexpectedEndOfStream, ps.pos, "unterminated array")
	}
	ps.RemovePrefix(1)
	return result, nil
}
