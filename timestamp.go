package ctjson

import (
	"time"
)

// TimestampCodec is the parse_javascript_timestamp / format_javascript_
// timestamp collaborator spec §1/§4.6 declares external to the core: the
// Date tag hands a value slice to Parse and expects a millisecond-
// resolution time.Time back, and the serializer hands a time.Time to
// Format and expects an ISO-8601 "YYYY-MM-DDTHH:MM:SSZ"-shaped slice
// back. A caller can plug in a different date library entirely by
// implementing this interface and calling SetTimestampCodec — the class
// parser and serializer never import a concrete date library themselves.
type TimestampCodec interface {
	Parse(s []byte) (time.Time, error)
	Format(t time.Time, dst []byte) []byte
}

type rfc3339Codec struct{}

var jsTimestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (rfc3339Codec) Parse(s []byte) (time.Time, error) {
	str := string(s)
	var err error
	for _, layout := range jsTimestampLayouts {
		var t time.Time
		t, err = time.Parse(layout, str)
		if err == nil {
			return t.Round(time.Millisecond), nil
		}
	}
	return time.Time{}, err
}

func (rfc3339Codec) Format(t time.Time, dst []byte) []byte {
	return t.UTC().AppendFormat(dst, "2006-01-02T15:04:05Z")
}

var defaultTimestampCodec TimestampCodec = rfc3339Codec{}

// SetTimestampCodec overrides the global TimestampCodec used by Date-
// tagged members. It is not safe to call concurrently with an in-flight
// parse.
func SetTimestampCodec(c TimestampCodec) {
	if c == nil {
		c = rfc3339Codec{}
	}
	defaultTimestampCodec = c
}
