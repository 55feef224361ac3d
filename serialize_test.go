package ctjson

import "testing"

func TestToJSON_RoundTrip(t *testing.T) {
	p := geoPoint{Lat: 1.5, Lng: -2.25, Name: "x"}
	raw, err := ToJSON(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := FromJSON[geoPoint](raw)
	if err != nil {
		t.Fatalf("unexpected error parsing %s: %v", raw, err)
	}
	if got != p {
		t.Fatalf("round trip mismatch: got %+v, want %+v (json: %s)", got, p, raw)
	}
}

type serializeContainer struct {
	Tags   []string
	Origin *geoPoint
}

var serializeContainerSchema = Register[serializeContainer](
	ArrayField("tags", StringElem(), 0),
	NullField("origin", ClassElem(), 1),
)

func TestToJSON_ArrayAndNullMembers(t *testing.T) {
	c := serializeContainer{Tags: []string{"a", "b"}, Origin: &geoPoint{Lat: 1, Lng: 2}}
	raw, err := ToJSON(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := FromJSON[serializeContainer](raw)
	if err != nil {
		t.Fatalf("unexpected error parsing %s: %v", raw, err)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "a" || got.Tags[1] != "b" {
		t.Fatalf("got Tags=%v", got.Tags)
	}
	if got.Origin == nil || got.Origin.Lat != 1 || got.Origin.Lng != 2 {
		t.Fatalf("got Origin=%+v", got.Origin)
	}
}

func TestToJSON_NullMemberAbsent(t *testing.T) {
	c := serializeContainer{Tags: nil, Origin: nil}
	raw, err := ToJSON(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := FromJSON[serializeContainer](raw)
	if err != nil {
		t.Fatalf("unexpected error parsing %s: %v", raw, err)
	}
	if got.Origin != nil {
		t.Fatalf("got Origin=%+v, want nil", got.Origin)
	}
	if len(got.Tags) != 0 {
		t.Fatalf("got Tags=%v, want empty", got.Tags)
	}
}
