package ctjson

import "testing"

func TestFromJSONArray_Ints(t *testing.T) {
	got, err := FromJSONArray[int]([]byte(`[1,2,3]`), NumberElem())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// Scenario 4: an empty array element is InvalidArray.
func TestFromJSONArray_EmptyElementIsInvalidArray(t *testing.T) {
	_, err := FromJSONArray[int]([]byte(`[1,2,,3]`), NumberElem())
	assertErrorKind(t, err, InvalidArray)
}

// Scenario 5: a malformed null literal ("nul") inside an array<int?> is
// InvalidNull, not silently treated as null.
func TestFromJSONArray_MalformedNullIsInvalidNull(t *testing.T) {
	_, err := FromJSONArray[*int]([]byte(`[nul]`), NullElem(NumberElem()))
	assertErrorKind(t, err, InvalidNull)
}

func TestFromJSONArray_NullableInts(t *testing.T) {
	got, err := FromJSONArray[*int]([]byte(`[1,null,3]`), NullElem(NumberElem()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] == nil || *got[0] != 1 || got[1] != nil || got[2] == nil || *got[2] != 3 {
		t.Fatalf("unexpected result: %v", derefAll(got))
	}
}

func derefAll(vs []*int) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		if v == nil {
			out[i] = nil
			continue
		}
		out[i] = *v
	}
	return out
}

func TestNewArrayIter_Classes(t *testing.T) {
	it, err := NewArrayIter[geoPoint]([]byte(`[{"lat":1,"lng":2},{"lat":3,"lng":4}]`), ClassElem())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []geoPoint
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		got = append(got, p)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Lat != 1 || got[1].Lat != 3 {
		t.Fatalf("unexpected result: %+v", got)
	}
}
