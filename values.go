package ctjson

import (
	"reflect"
	"time"
)

// looksLikeNullLiteral reports whether slc's content opens with the
// unescaped literal null. Every other tag's valid JSON text starts with
// a digit, '-', 't', 'f', '"', '[' or '{', so checking the first byte is enough to
// tell a bare null token apart from any well-formed value of another
// tag.
func looksLikeNullLiteral(buf []byte, slc Slice) bool {
	content := slc.Bytes(buf)
	return len(content) > 0 && content[0] == 'n'
}

// parseIntoValue is the tagged-union dispatch spec §9 calls for: a single
// parse_value(tag, slice, descriptor) that branches on m.Tag. field is
// the already-resolved destination (a struct field, an array element, or
// the pointee of a Null member).
func parseIntoValue(ps *ParseState, m *Member, field reflect.Value, slc Slice) error {
	if m.Tag != TagNull && looksLikeNullLiteral(ps.buf, slc) {
		if m.Nullable {
			return nil
		}
		return newError(MissingMember, slc.First, "member \""+m.Name+"\" was explicitly null")
	}
	switch m.Tag {
	case TagNumber:
		return parseNumber(ps, m, field, slc)
	case TagBool:
		return parseBool(ps, field, slc)
	case TagString:
		return parseStringValue(ps, m, field, slc)
	case TagDate:
		return parseDate(ps, field, slc)
	case TagClass:
		return parseClassField(ps, field, slc)
	case TagArray:
		return parseArrayField(ps, m, field, slc)
	case TagNull:
		return parseNullField(ps, m, field, slc)
	case TagCustom:
		return parseCustomField(m, field, slc, ps.buf)
	default:
		return newError(TypeMismatch, slc.First, "unhandled tag")
	}
}

func parseNumber(ps *ParseState, m *Member, field reflect.Value, slc Slice) error {
	raw := slc.Bytes(ps.buf)
	if m.LiteralAsString {
		if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
			return newError(InvalidNumber, slc.First, "expected a quoted numeric literal")
		}
		raw = raw[1 : len(raw)-1]
	}
	if len(raw) == 0 {
		return newError(InvalidNumber, slc.First, "empty number")
	}
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		v, err := defaultNumberParser.ParseReal(raw)
		if err != nil {
			return wrapError(InvalidNumber, slc.First, err)
		}
		field.SetFloat(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := defaultNumberParser.ParseInt(raw)
		if err != nil {
			return wrapError(InvalidNumber, slc.First, err)
		}
		if ps.opts.Checked && field.OverflowInt(v) {
			return newError(NumberOutOfRange, slc.First, "integer overflow")
		}
		field.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := defaultNumberParser.ParseUnsigned(raw)
		if err != nil {
			return wrapError(InvalidNumber, slc.First, err)
		}
		if ps.opts.Checked && field.OverflowUint(v) {
			return newError(NumberOutOfRange, slc.First, "integer overflow")
		}
		field.SetUint(v)
	default:
		return newError(TypeMismatch, slc.First, "number member bound to an unsupported field kind")
	}
	return nil
}

func parseBool(ps *ParseState, field reflect.Value, slc Slice) error {
	raw := slc.Bytes(ps.buf)
	if len(raw) == 0 {
		return newError(InvalidBoolean, slc.First, "empty boolean")
	}
	switch raw[0] | 0x20 {
	case 't':
		if ps.opts.Checked && string(raw) != "true" {
			return newError(InvalidBoolean, slc.First, "expected true")
		}
		field.SetBool(true)
		return nil
	case 'f':
		if ps.opts.Checked && string(raw) != "false" {
			return newError(InvalidBoolean, slc.First, "expected false")
		}
		field.SetBool(false)
		return nil
	default:
		return newError(InvalidBoolean, slc.First, "expected true or false")
	}
}

func parseStringValue(ps *ParseState, m *Member, field reflect.Value, slc Slice) error {
	raw := slc.Bytes(ps.buf)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return newError(InvalidString, slc.First, "expected a quoted string")
	}
	content := raw[1 : len(raw)-1]
	if m.EmptyIsNull && len(content) == 0 {
		return nil
	}
	unescaped, err := unescapeJSONString(content)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Offset = slc.First
		}
		return err
	}
	if ps.opts.UnsafeStrings && len(unescaped) > 0 && &unescaped[0] == &content[0] {
		field.SetString(unsafeBytesToString(unescaped))
		return nil
	}
	field.SetString(string(unescaped))
	return nil
}

var timeType = reflect.TypeOf(time.Time{})

func parseDate(ps *ParseState, field reflect.Value, slc Slice) error {
	raw := slc.Bytes(ps.buf)
	content := raw
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		content = raw[1 : len(raw)-1]
	}
	if field.Type() != timeType {
		return newError(TypeMismatch, slc.First, "date member bound to a non-time.Time field")
	}
	t, err := defaultTimestampCodec.Parse(content)
	if err != nil {
		return wrapError(InvalidString, slc.First, err)
	}
	field.Set(reflect.ValueOf(t))
	return nil
}

func parseClassField(ps *ParseState, field reflect.Value, slc Slice) error {
	target := field
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		target = field.Elem()
	}
	if target.Kind() != reflect.Struct {
		return newError(TypeMismatch, slc.First, "class member bound to a non-struct field")
	}
	schema, ok := schemaFor(target.Type())
	if !ok {
		return newError(InvalidClass, slc.First, "no schema registered for "+target.Type().String())
	}
	child := childState(ps, slc)
	return parseClassInto(child, schema, target)
}

func parseArrayField(ps *ParseState, m *Member, field reflect.Value, slc Slice) error {
	if field.Kind() != reflect.Slice {
		return newError(TypeMismatch, slc.First, "array member bound to a non-slice field")
	}
	child := childState(ps, slc)
	if child.opts.Checked && child.Front() != '[' {
		return newError(UnexpectedBracketing, child.pos, "expected '['")
	}
	child.RemovePrefix(1)
	child.TrimLeft()

	elemType := field.Type().Elem()
	result := reflect.MakeSlice(field.Type(), 0, 4)
	for !child.Empty() && child.Front() != ']' {
		elemStart := child.pos
		vslc, err := child.skipValue()
		if err != nil {
			return err
		}
		if child.opts.Checked && vslc.Empty() {
			return newError(InvalidArray, elemStart, "empty array element")
		}
		elemPtr := reflect.New(elemType)
		if err := parseIntoValue(child, m.Element, elemPtr.Elem(), vslc); err != nil {
			return err
		}
		result = reflect.Append(result, elemPtr.Elem())
		if err := child.CleanTail(); err != nil {
			return err
		}
	}
	if child.opts.Checked && child.Front() != ']' {
		return newError(UnexpectedEndOfStream, child.pos, "unterminated array")
	}
	field.Set(result)
	return nil
}

func parseNullField(ps *ParseState, m *Member, field reflect.Value, slc Slice) error {
	content := slc.Bytes(ps.buf)
	if slc.Missing() || len(content) == 0 || content[0] == 'n' {
		if ps.opts.Checked && len(content) > 0 && string(content) != "null" {
			return newError(InvalidNull, slc.First, "expected null")
		}
		return nil
	}
	if m.Inner == nil {
		return newError(InvalidClass, slc.First, "null member has no inner descriptor")
	}
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return parseIntoValue(ps, m.Inner, field.Elem(), slc)
	}
	return parseIntoValue(ps, m.Inner, field, slc)
}

func parseCustomField(m *Member, field reflect.Value, slc Slice, buf []byte) error {
	if m.FromText == nil {
		return newError(InvalidClass, slc.First, "custom member has no from_text converter")
	}
	raw := slc.Bytes(buf)
	v, err := m.FromText(raw)
	if err != nil {
		return wrapError(InvalidClass, slc.First, err)
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(field.Type()) {
		return newError(TypeMismatch, slc.First, "from_text returned a type incompatible with the field")
	}
	field.Set(rv)
	return nil
}

// childState scopes a fresh cursor to slc's bytes, used whenever a value
// that was skipped as an opaque blob by the class parser's member search
// (a nested class, an array, a path target) must now be parsed for
// real: its bytes were already consumed from the parent cursor's point of
// view, so re-parsing runs over an independent cursor bounded to exactly
// those bytes.
func childState(ps *ParseState, slc Slice) *ParseState {
	return &ParseState{
		buf:        ps.buf,
		pos:        slc.First,
		last:       slc.Last,
		classFirst: slc.First,
		classLast:  slc.Last,
		opts:       ps.opts,
	}
}
