package ctjson

import (
	"reflect"
	"time"
)

// Serializer (spec §4.9): the inverse of the Class Parser. For a class
// schema it emits '{' then, for each member in schema order, the member
// name as a quoted string, ':', the value rendered by the tag's
// serializer, and a ',' separator between members (no trailing comma
// before '}').
//
// ToJSON is the public entry point (spec §6's to_json(value) -> bytes).
func ToJSON(v interface{}) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return []byte("null"), nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, newError(TypeMismatch, 0, "ToJSON requires a struct or pointer to struct")
	}
	schema, ok := schemaFor(rv.Type())
	if !ok {
		return nil, newError(InvalidClass, 0, "no schema registered for "+rv.Type().String())
	}
	return appendClass(nil, schema, rv)
}

func appendClass(dst []byte, schema *Schema, target reflect.Value) ([]byte, error) {
	dst = append(dst, '{')
	for i := range schema.Members {
		m := &schema.Members[i]
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendQuotedString(dst, m.Name)
		dst = append(dst, ':')
		field := m.fieldValue(target)
		var err error
		dst, err = appendMemberValue(dst, m, field)
		if err != nil {
			return nil, err
		}
	}
	dst = append(dst, '}')
	return dst, nil
}

// appendMemberValue renders field (already resolved to the member's
// target value) per m.Tag, the serializer half of parseIntoValue's
// dispatch.
func appendMemberValue(dst []byte, m *Member, field reflect.Value) ([]byte, error) {
	if m.Tag != TagNull && fieldIsAbsent(m, field) {
		return append(dst, []byte("null")...), nil
	}
	switch m.Tag {
	case TagNumber:
		return appendNumberMember(dst, m, field)
	case TagBool:
		if field.Bool() {
			return append(dst, []byte("true")...), nil
		}
		return append(dst, []byte("false")...), nil
	case TagString:
		return appendQuotedString(dst, field.String()), nil
	case TagDate:
		return appendDateMember(dst, field)
	case TagClass:
		return appendClassMember(dst, field)
	case TagArray:
		return appendArrayMember(dst, m, field)
	case TagNull:
		return appendNullMember(dst, m, field)
	case TagCustom:
		return appendCustomMember(dst, m, field)
	default:
		return nil, newError(TypeMismatch, 0, "unhandled tag in serializer")
	}
}

// fieldIsAbsent reports whether field represents a Nullable member that
// is currently unset (a nil pointer), which serializes as "null" instead
// of invoking the tag's own renderer.
func fieldIsAbsent(m *Member, field reflect.Value) bool {
	return m.Nullable && field.Kind() == reflect.Ptr && field.IsNil()
}

func appendNumberMember(dst []byte, m *Member, field reflect.Value) ([]byte, error) {
	if field.Kind() == reflect.Ptr {
		field = field.Elem()
	}
	quote := m.LiteralAsString
	if quote {
		dst = append(dst, '"')
	}
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		dst = appendNumberFloat(dst, field.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		dst = appendNumberInt(dst, field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		dst = appendNumberUint(dst, field.Uint())
	default:
		return nil, newError(TypeMismatch, 0, "number member bound to an unsupported field kind")
	}
	if quote {
		dst = append(dst, '"')
	}
	return dst, nil
}

func appendDateMember(dst []byte, field reflect.Value) ([]byte, error) {
	if field.Kind() == reflect.Ptr {
		field = field.Elem()
	}
	if field.Type() != timeType {
		return nil, newError(TypeMismatch, 0, "date member bound to a non-time.Time field")
	}
	dst = append(dst, '"')
	dst = defaultTimestampCodec.Format(field.Interface().(time.Time), dst)
	dst = append(dst, '"')
	return dst, nil
}

func appendClassMember(dst []byte, field reflect.Value) ([]byte, error) {
	target := field
	if field.Kind() == reflect.Ptr {
		target = field.Elem()
	}
	schema, ok := schemaFor(target.Type())
	if !ok {
		return nil, newError(InvalidClass, 0, "no schema registered for "+target.Type().String())
	}
	return appendClass(dst, schema, target)
}

func appendArrayMember(dst []byte, m *Member, field reflect.Value) ([]byte, error) {
	dst = append(dst, '[')
	n := field.Len()
	for i := 0; i < n; i++ {
		if i > 0 {
			dst = append(dst, ',')
		}
		var err error
		dst, err = appendMemberValue(dst, m.Element, field.Index(i))
		if err != nil {
			return nil, err
		}
	}
	dst = append(dst, ']')
	return dst, nil
}

func appendNullMember(dst []byte, m *Member, field reflect.Value) ([]byte, error) {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return append(dst, []byte("null")...), nil
		}
		return appendMemberValue(dst, m.Inner, field.Elem())
	}
	return appendMemberValue(dst, m.Inner, field)
}

func appendCustomMember(dst []byte, m *Member, field reflect.Value) ([]byte, error) {
	if m.ToText == nil {
		return nil, newError(InvalidClass, 0, "custom member has no to_text converter")
	}
	raw, err := m.ToText(field.Interface())
	if err != nil {
		return nil, wrapError(InvalidClass, 0, err)
	}
	return append(dst, raw...), nil
}

// appendQuotedString appends s as a quoted JSON string literal, escaping
// the characters JSON requires escaped. Per spec §4.9, arbitrary escaping
// of a caller-supplied string is otherwise the caller's responsibility;
// this minimal escaper covers the control characters and quote/backslash
// that would otherwise produce invalid JSON.
func appendQuotedString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hexDigit(c>>4), hexDigit(c&0xf))
		default:
			dst = append(dst, c)
		}
	}
	dst = append(dst, '"')
	return dst
}

func hexDigit(b byte) byte {
	if b < 10 {
		return '0' + b
	}
	return 'a' + (b - 10)
}
