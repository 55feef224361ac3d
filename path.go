package ctjson

// Path Navigator (spec §4.8): resolves a dotted path with optional [n]
// indexers, e.g. "features[0].geometry", against a JSON document without
// going through a registered Schema — each segment is a name lookup in
// the current object (scanning members structurally, like the Class
// Parser, but without recording into a Locations Table) or an integer
// index stepped through the current array.

type pathSegment struct {
	name  string // set when this segment is a member name
	index int    // set (name == "") when this segment is an array index
	isIdx bool
}

// parsePath splits a path string like "a.b[2].c" into segments. An empty
// path resolves to the whole document.
func parsePath(path string) ([]pathSegment, error) {
	var segs []pathSegment
	i := 0
	n := len(path)
	for i < n {
		switch {
		case path[i] == '.':
			i++
		case path[i] == '[':
			j := i + 1
			for j < n && path[j] != ']' {
				j++
			}
			if j >= n {
				return nil, newError(InvalidPath, i, "unterminated '[' in path")
			}
			idx := 0
			if j == i+1 {
				return nil, newError(InvalidPath, i, "empty index in path")
			}
			for k := i + 1; k < j; k++ {
				c := path[k]
				if c < '0' || c > '9' {
					return nil, newError(InvalidPath, k, "non-digit in path index")
				}
				idx = idx*10 + int(c-'0')
			}
			segs = append(segs, pathSegment{index: idx, isIdx: true})
			i = j + 1
		default:
			j := i
			for j < n && path[j] != '.' && path[j] != '[' {
				j++
			}
			segs = append(segs, pathSegment{name: path[i:j]})
			i = j
		}
	}
	return segs, nil
}

// navigatePath resolves path within the JSON value under ps's cursor and
// returns the slice covering the named value. ps itself is advanced past
// the whole top-level value; callers parse the result through
// childState. ps must initially be positioned at the start of a JSON
// value (leading whitespace need not be trimmed yet).
func navigatePath(ps *ParseState, path string) (Slice, error) {
	segs, err := parsePath(path)
	if err != nil {
		return Slice{}, err
	}
	ps.TrimLeft()
	slc, err := ps.skipValue()
	if err != nil {
		return Slice{}, err
	}
	for _, seg := range segs {
		child := childState(ps, slc)
		if seg.isIdx {
			s, err := navigateIndex(child, seg.index)
			if err != nil {
				return Slice{}, err
			}
			slc = s
		} else {
			s, err := navigateName(child, seg.name)
			if err != nil {
				return Slice{}, err
			}
			slc = s
		}
	}
	return slc, nil
}

// navigateName finds member name in the object ps is positioned over
// (cursor at '{'), returning the slice of its value.
func navigateName(ps *ParseState, name string) (Slice, error) {
	if ps.opts.Checked && ps.Front() != '{' {
		return Slice{}, newError(TypeMismatch, ps.pos, "path segment \""+name+"\" expects an object")
	}
	ps.RemovePrefix(1)
	ps.TrimLeft()
	for !ps.Empty() && ps.Front() != '}' {
		nameSlice, err := ps.scanName()
		if err != nil {
			return Slice{}, err
		}
		observed := string(nameSlice.Bytes(ps.buf))
		vslc, err := ps.skipValue()
		if err != nil {
			return Slice{}, err
		}
		if observed == name {
			return vslc, nil
		}
		if err := ps.CleanTail(); err != nil {
			return Slice{}, err
		}
	}
	return Slice{}, newError(InvalidPath, ps.pos, "member \""+name+"\" not found")
}

// navigateIndex steps index times through the array ps is positioned over
// (cursor at '['), returning the slice of the element at that index.
func navigateIndex(ps *ParseState, index int) (Slice, error) {
	if ps.opts.Checked && ps.Front() != '[' {
		return Slice{}, newError(TypeMismatch, ps.pos, "path segment expects an array")
	}
	ps.RemovePrefix(1)
	ps.TrimLeft()
	for i := 0; !ps.Empty() && ps.Front() != ']'; i++ {
		vslc, err := ps.skipValue()
		if err != nil {
			return Slice{}, err
		}
		if i == index {
			return vslc, nil
		}
		if err := ps.CleanTail(); err != nil {
			return Slice{}, err
		}
	}
	return Slice{}, newError(InvalidPath, ps.pos, "array index out of range")
}
