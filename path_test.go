package ctjson

import "testing"

func TestFromJSONPath_NestedNameAndIndex(t *testing.T) {
	doc := []byte(`{"features":[{"geometry":{"lat":1,"lng":2}},{"geometry":{"lat":3,"lng":4}}]}`)
	got, err := FromJSONPath[geoPoint](doc, "features[1].geometry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Lat != 3 || got.Lng != 4 {
		t.Fatalf("got %+v, want Lat=3 Lng=4", got)
	}
}

func TestFromJSONPath_MemberNotFound(t *testing.T) {
	doc := []byte(`{"features":[{"lat":1,"lng":2}]}`)
	_, err := FromJSONPath[geoPoint](doc, "missing")
	assertErrorKind(t, err, InvalidPath)
}

func TestFromJSONPath_IndexOutOfRange(t *testing.T) {
	doc := []byte(`{"features":[{"lat":1,"lng":2}]}`)
	_, err := FromJSONPath[geoPoint](doc, "features[5]")
	assertErrorKind(t, err, InvalidPath)
}
