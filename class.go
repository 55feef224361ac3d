package ctjson

import "reflect"

// parseClassInto orchestrates in-order location discovery and invokes the
// value parsers in schema order (spec §4.5). target must be an
// addressable struct value of schema's registered type.
func parseClassInto(ps *ParseState, schema *Schema, target reflect.Value) error {
	ps.TrimLeft()
	if ps.opts.Checked && ps.Front() != '{' {
		return newError(InvalidClass, ps.pos, "expected '{'")
	}
	ps.RemovePrefix(1)
	ps.TrimLeft()

	n := len(schema.Members)
	locs := newLocationsStorage(n)

	for pos := 0; pos < n; pos++ {
		slc, err := findClassMember(ps, schema, locs, pos)
		if err != nil {
			return err
		}
		m := &schema.Members[pos]

		var field reflect.Value
		if len(m.FieldIndex) > 0 {
			field = target.FieldByIndex(m.FieldIndex)
		}

		if slc.Missing() {
			if !m.Nullable {
				return newError(MissingMember, ps.pos, "missing member \""+m.Name+"\"")
			}
			continue
		}

		if err := parseIntoValue(ps, m, field, slc); err != nil {
			return err
		}
	}

	return finishClass(ps, schema)
}

// findClassMember implements find_class_member<pos> from spec §4.5.
func findClassMember(ps *ParseState, schema *Schema, locs *locationsStorage, pos int) (Slice, error) {
	if !locs.get(pos).missing() {
		return locs.get(pos).slice, nil
	}

	for locs.get(pos).missing() {
		ps.TrimLeft()
		if ps.Empty() {
			if ps.opts.Checked {
				return Slice{}, newError(UnexpectedEndOfStream, ps.pos, "unterminated object")
			}
			break
		}
		if ps.Front() == '}' {
			break
		}

		nameSlice, err := ps.scanName()
		if err != nil {
			return Slice{}, err
		}
		name := nameSlice.Bytes(ps.buf)
		namePos := schema.findName(pos, name)

		if namePos == len(schema.Members) {
			if ps.opts.StrictUnknown {
				return Slice{}, newError(UnknownMember, nameSlice.First, "unknown member \""+string(name)+"\"")
			}
			if _, err := ps.skipValue(); err != nil {
				return Slice{}, err
			}
			if err := ps.CleanTail(); err != nil {
				return Slice{}, err
			}
			continue
		}

		vslc, err := ps.skipValue()
		if err != nil {
			return Slice{}, err
		}
		if err := ps.CleanTail(); err != nil {
			return Slice{}, err
		}

		if namePos == pos {
			locs.set(pos, location{slice: vslc, classFirst: ps.classFirst, classLast: ps.classLast})
			break
		}
		// Opportunistic caching: this occurrence belongs to a schema
		// position later than the one we are currently seeking. Store it
		// (overwriting any earlier occurrence of the same member, which
		// gives duplicate-last-wins for members discovered this way) and
		// keep scanning for pos.
		locs.set(namePos, location{slice: vslc, classFirst: ps.classFirst, classLast: ps.classLast})
	}

	return locs.get(pos).slice, nil
}

// finishClass skips any trailing members the per-position scan left
// unconsumed and consumes the closing '}'.
func finishClass(ps *ParseState, schema *Schema) error {
	for !ps.Empty() && ps.Front() != '}' {
		if _, err := ps.scanName(); err != nil {
			return err
		}
		if ps.opts.StrictUnknown {
			// No schema position is still sought here (every one has
			// already been resolved by the loop above), so strict mode
			// rejects any trailing member, including a repeat of a member
			// already resolved, as unknown.
			return newError(UnknownMember, ps.pos, "unexpected trailing member")
		}
		if _, err := ps.skipValue(); err != nil {
			return err
		}
		if err := ps.CleanTail(); err != nil {
			return err
		}
	}
	if ps.opts.Checked && ps.Front() != '}' {
		return newError(UnexpectedEndOfStream, ps.pos, "unterminated object")
	}
	ps.RemovePrefix(1)
	ps.TrimLeft()
	return nil
}
