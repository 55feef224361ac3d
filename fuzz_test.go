//go:build go1.18
// +build go1.18

package ctjson

import (
	"math"
	"testing"
)

// FuzzRoundTrip checks that FromJSON(ToJSON(x)) reproduces x's fields for
// any fuzzPoint value, the round-trip property spec §8 requires of any
// schema-driven member set.
func FuzzRoundTrip(f *testing.F) {
	f.Add(35.6895, 139.6917, "Tokyo")
	f.Add(0.0, 0.0, "")
	f.Add(-90.0, 180.0, "south pole-ish")
	f.Fuzz(func(t *testing.T, lat, lng float64, name string) {
		if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
			t.Skip("NaN/Inf have no JSON number representation")
		}
		p := fuzzPoint{Lat: lat, Lng: lng, Name: name}
		raw, err := ToJSON(p)
		if err != nil {
			t.Fatalf("ToJSON: %v", err)
		}
		got, err := FromJSON[fuzzPoint](raw)
		if err != nil {
			t.Fatalf("FromJSON(%s): %v", raw, err)
		}
		if got != p {
			t.Fatalf("round trip mismatch: got %+v, want %+v (json: %s)", got, p, raw)
		}
	})
}

type fuzzPoint struct {
	Lat, Lng float64
	Name     string
}

var fuzzPointSchema = Register[fuzzPoint](
	NumberField("lat", 0),
	NumberField("lng", 1),
	StringField("name", 2),
)

// FuzzSkipValue checks that skipValue never panics and always leaves the
// cursor at or before the end of the buffer, for arbitrary byte strings —
// the Structural Skipper must tolerate malformed input in unchecked mode
// rather than read out of bounds (spec §4.2).
func FuzzSkipValue(f *testing.F) {
	f.Add([]byte(`{"a":1}`))
	f.Add([]byte(`[1,2,3]`))
	f.Add([]byte(`"unterminated`))
	f.Add([]byte(`{`))
	f.Fuzz(func(t *testing.T, data []byte) {
		o := buildOptions(WithChecked(false))
		ps := NewParseState(data, o)
		_, _ = ps.skipValue()
		if ps.pos > ps.last {
			t.Fatalf("cursor advanced past end of buffer: pos=%d last=%d", ps.pos, ps.last)
		}
	})
}
