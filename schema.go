package ctjson

import (
	"reflect"
	"sync"
)

// Member is a compile-time-ish (registered once, read thereafter)
// descriptor for one JSON member: its name, semantic tag, and how to get
// from a parsed raw value to the field it targets.
type Member struct {
	// Name is the JSON key, fixed at registration time.
	Name string
	// Tag is this member's semantic kind.
	Tag Tag
	// FieldIndex addresses the target struct field, as used by
	// reflect.Value.FieldByIndex. Unused for the synthetic element
	// descriptor of an Array member or the inner descriptor of a Null
	// member, which instead describe a value rather than a field.
	FieldIndex []int

	// Nullable allows the member to be absent from the JSON object; a
	// missing non-nullable member is a MissingMember error.
	Nullable bool
	// EmptyIsNull treats an empty JSON string as if the member were
	// absent (String tag only).
	EmptyIsNull bool
	// LiteralAsString requires a Number value to be wrapped in quotes in
	// the JSON text, stripping them before numeric conversion.
	LiteralAsString bool

	// Element describes the element schema of an Array member.
	Element *Member
	// Inner describes the wrapped descriptor of a Null member.
	Inner *Member

	// FromText/ToText implement the Custom tag's round-trip conversion.
	FromText func([]byte) (interface{}, error)
	ToText   func(interface{}) ([]byte, error)

	hash uint32
}

// Schema is the ordered, immutable list of member descriptors for one Go
// type, built once via Register and read thereafter as a flat slice —
// the "runtime schema object stored once per target type behind an
// immutable registry" spec §9 names as the neutral strategy for ports
// without compile-time variadic type lists.
type Schema struct {
	typ     reflect.Type
	Members []Member
	// Strict is set when two member names hash to the same 32-bit value,
	// forcing a byte-for-byte compare fallback on every hash match for
	// this schema (spec §4.4).
	Strict bool
}

var schemaRegistry sync.Map // map[reflect.Type]*Schema

func buildSchema(t reflect.Type, members []Member) *Schema {
	seen := map[string]bool{}
	for i := range members {
		if seen[members[i].Name] {
			panic("ctjson: duplicate member name in schema: " + members[i].Name)
		}
		seen[members[i].Name] = true
		members[i].hash = nameHash32(members[i].Name)
	}
	strict := false
	for i := 0; i < len(members) && !strict; i++ {
		for j := i + 1; j < len(members); j++ {
			if members[i].hash == members[j].hash {
				strict = true
				break
			}
		}
	}
	return &Schema{typ: t, Members: members, Strict: strict}
}

// Register associates a schema with the Go type T (e.g.
// Register[Point](...)). It is meant to run once, from an init function
// or a package-level var, not per parse.
func Register[T any](members ...Member) *Schema {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// T is an interface type, whose nil zero value carries no type;
		// recover it via a typed nil pointer.
		t = reflect.TypeOf((*T)(nil)).Elem()
	}
	s := buildSchema(t, members)
	schemaRegistry.Store(t, s)
	return s
}

func schemaFor(t reflect.Type) (*Schema, bool) {
	v, ok := schemaRegistry.Load(t)
	if !ok {
		return nil, false
	}
	return v.(*Schema), true
}

// findName is the Name-Hash Index (spec §4.4): it scans member hashes
// from startPos (inclusive) to the end of the table, short-circuiting on
// a 32-bit hash match and falling back to a byte-for-byte compare only
// when the schema was built in strict mode (a registration-time hash
// collision was detected). Returns len(s.Members) if no member in that
// range matches.
func (s *Schema) findName(startPos int, observed []byte) int {
	hash := nameHash32(string(observed))
	n := len(s.Members)
	for pos := startPos; pos < n; pos++ {
		if s.Members[pos].hash != hash {
			continue
		}
		if s.Strict && s.Members[pos].Name != string(observed) {
			continue
		}
		return pos
	}
	return n
}

// Field-descriptor constructors. Each binds one JSON member to a struct
// field addressed by index (reflect.Value.FieldByIndex order); pass a
// single int for a top-level field, or more to reach into an embedded
// struct.

func NumberField(name string, index ...int) Member {
	return Member{Name: name, Tag: TagNumber, FieldIndex: index}
}

func NumberFieldAsString(name string, index ...int) Member {
	return Member{Name: name, Tag: TagNumber, FieldIndex: index, LiteralAsString: true}
}

func BoolField(name string, index ...int) Member {
	return Member{Name: name, Tag: TagBool, FieldIndex: index}
}

func StringField(name string, index ...int) Member {
	return Member{Name: name, Tag: TagString, FieldIndex: index}
}

func StringFieldEmptyIsNull(name string, index ...int) Member {
	return Member{Name: name, Tag: TagString, FieldIndex: index, EmptyIsNull: true}
}

func DateField(name string, index ...int) Member {
	return Member{Name: name, Tag: TagDate, FieldIndex: index}
}

func ClassField(name string, index ...int) Member {
	return Member{Name: name, Tag: TagClass, FieldIndex: index}
}

func ArrayField(name string, element Member, index ...int) Member {
	return Member{Name: name, Tag: TagArray, FieldIndex: index, Element: &element}
}

func NullField(name string, inner Member, index ...int) Member {
	return Member{Name: name, Tag: TagNull, FieldIndex: index, Inner: &inner}
}

func CustomField(name string, fromText func([]byte) (interface{}, error), toText func(interface{}) ([]byte, error), index ...int) Member {
	return Member{Name: name, Tag: TagCustom, FieldIndex: index, FromText: fromText, ToText: toText}
}

// fieldValue extracts this member's target value out of target (an
// addressable struct of the member's owning schema type), the role
// daw_json_link's to_json_data tuple-extraction plays for serialization —
// expressed here as direct struct-field access via FieldIndex rather than
// a tuple-returning function, since Go schemas are built from field
// indices already.
func (m *Member) fieldValue(target reflect.Value) reflect.Value {
	if len(m.FieldIndex) == 0 {
		return target
	}
	return target.FieldByIndex(m.FieldIndex)
}

// Optional marks any field descriptor as nullable (the member may be
// entirely absent from the JSON object, defaulting to the field's zero
// value, rather than raising MissingMember).
func Optional(m Member) Member {
	m.Nullable = true
	return m
}

// Element descriptors describe the element schema of an array that is
// not itself a struct field — the top-level argument to FromJSONArray,
// NewArrayIter and JSONArrayRange, or the Element of a nested ArrayField.
// They carry a Tag but no FieldIndex, since an array element is the
// value being parsed rather than a named struct member.

func NumberElem() Member { return Member{Tag: TagNumber} }

func NumberElemAsString() Member { return Member{Tag: TagNumber, LiteralAsString: true} }

func BoolElem() Member { return Member{Tag: TagBool} }

func StringElem() Member { return Member{Tag: TagString} }

func DateElem() Member { return Member{Tag: TagDate} }

// ClassElem describes an array of structs; the element type's own Schema
// (registered separately via Register) supplies the member list.
func ClassElem() Member { return Member{Tag: TagClass} }

func NullElem(inner Member) Member { return Member{Tag: TagNull, Inner: &inner} }

func CustomElem(fromText func([]byte) (interface{}, error), toText func(interface{}) ([]byte, error)) Member {
	return Member{Tag: TagCustom, FromText: fromText, ToText: toText}
}
