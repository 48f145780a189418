package diff

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseDoc(t *testing.T, data string) map[string]interface{} {
	t.Helper()
	decoder := json.NewDecoder(bytes.NewReader([]byte(data)))
	decoder.UseNumber()
	var doc map[string]interface{}
	if err := decoder.Decode(&doc); err != nil {
		t.Fatalf("parsing test document: %v", err)
	}
	return doc
}

func parseValue(t *testing.T, data string) interface{} {
	t.Helper()
	decoder := json.NewDecoder(bytes.NewReader([]byte(data)))
	decoder.UseNumber()
	var v interface{}
	if err := decoder.Decode(&v); err != nil {
		t.Fatalf("parsing test value: %v", err)
	}
	return v
}

func testContext(arraySameOrder bool) *WorkingContext {
	return NewWorkingContext("a.json", "b.json", Config{
		ArraySameOrder: arraySameOrder,
		CheckKeys:      true,
		CheckTypes:     true,
		CheckValues:    true,
		CheckArrays:    true,
	})
}

func TestCompareField_EqualPrimitives(t *testing.T) {
	ctx := testContext(false)

	cases := []struct {
		name string
		a, b string
	}{
		{"strings", `"hello"`, `"hello"`},
		{"numbers", `42`, `42`},
		{"numbers different literals", `1.0`, `1`},
		{"bools", `true`, `true`},
		{"nulls", `null`, `null`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CompareField("v", parseValue(t, tc.a), parseValue(t, tc.b), ctx)
			if result.HasDiffs() {
				t.Errorf("Expected no diffs for %s vs %s, got %+v", tc.a, tc.b, result)
			}
		})
	}
}

func TestCompareField_ValueDiff(t *testing.T) {
	ctx := testContext(false)

	result := CompareField("v", json.Number("1"), json.Number("2"), ctx)

	want := []ValueDiff{{Key: "v", Value1: "1", Value2: "2"}}
	if d := cmp.Diff(want, result.Values); d != "" {
		t.Errorf("Value diffs mismatch (-want +got):\n%s", d)
	}
	if len(result.Keys) != 0 || len(result.Types) != 0 || len(result.Arrays) != 0 {
		t.Errorf("Expected only value diffs, got %+v", result)
	}
}

func TestCompareField_TypeDiff(t *testing.T) {
	ctx := testContext(false)

	result := CompareField("v", "1", json.Number("1"), ctx)

	want := []TypeDiff{{Key: "v", Type1: "string", Type2: "number"}}
	if d := cmp.Diff(want, result.Types); d != "" {
		t.Errorf("Type diffs mismatch (-want +got):\n%s", d)
	}
}

// Every ordered pair of distinct non-null kinds must produce exactly one
// type diff and nothing in the other categories.
func TestCompareField_TypeMismatchExhaustive(t *testing.T) {
	ctx := testContext(false)

	samples := map[Kind]interface{}{
		KindBool:   true,
		KindNumber: json.Number("1"),
		KindString: "s",
		KindArray:  []interface{}{json.Number("1")},
		KindObject: map[string]interface{}{"k": "v"},
	}

	for kindA, a := range samples {
		for kindB, b := range samples {
			if kindA == kindB {
				continue
			}

			result := CompareField("v", a, b, ctx)
			if len(result.Types) != 1 {
				t.Errorf("%s vs %s: expected 1 type diff, got %d", kindA, kindB, len(result.Types))
				continue
			}

			td := result.Types[0]
			if td.Type1 != string(kindA) || td.Type2 != string(kindB) {
				t.Errorf("%s vs %s: got type diff %+v", kindA, kindB, td)
			}
			if len(result.Keys) != 0 || len(result.Values) != 0 || len(result.Arrays) != 0 {
				t.Errorf("%s vs %s: expected no other categories, got %+v", kindA, kindB, result)
			}
		}
	}
}

func TestCompareField_NullVsPrimitive(t *testing.T) {
	ctx := testContext(false)

	result := CompareField("v", nil, "text", ctx)

	want := []ValueDiff{{Key: "v", Value1: "null", Value2: `"text"`}}
	if d := cmp.Diff(want, result.Values); d != "" {
		t.Errorf("Value diffs mismatch (-want +got):\n%s", d)
	}

	// Mirrored: the concrete side may be either of the two.
	result = CompareField("v", json.Number("3"), nil, ctx)
	want = []ValueDiff{{Key: "v", Value1: "3", Value2: "null"}}
	if d := cmp.Diff(want, result.Values); d != "" {
		t.Errorf("Mirrored value diffs mismatch (-want +got):\n%s", d)
	}
}

func TestCompareField_NullVsArray(t *testing.T) {
	ctx := testContext(false)

	result := CompareField("v", nil, parseValue(t, `[1, 2]`), ctx)

	want := []ArrayDiff{
		{Key: "v", Descriptor: BHas, Value: "1"},
		{Key: "v", Descriptor: AMisses, Value: "1"},
		{Key: "v", Descriptor: BHas, Value: "2"},
		{Key: "v", Descriptor: AMisses, Value: "2"},
	}
	if d := cmp.Diff(want, result.Arrays); d != "" {
		t.Errorf("Array diffs mismatch (-want +got):\n%s", d)
	}

	result = CompareField("v", parseValue(t, `["x"]`), nil, ctx)
	want = []ArrayDiff{
		{Key: "v", Descriptor: AHas, Value: `"x"`},
		{Key: "v", Descriptor: BMisses, Value: `"x"`},
	}
	if d := cmp.Diff(want, result.Arrays); d != "" {
		t.Errorf("Mirrored array diffs mismatch (-want +got):\n%s", d)
	}
}

func TestCompareField_NullVsObject(t *testing.T) {
	ctx := testContext(false)

	result := CompareField("obj", nil, parseValue(t, `{"x": 1, "y": {"z": 2}}`), ctx)

	// Every key of the non-null side surfaces as a key diff; nested
	// values are not value-compared since the counterpart is absent.
	want := []KeyDiff{
		{Key: "obj.x", Has: "b.json", Misses: "a.json"},
		{Key: "obj.y", Has: "b.json", Misses: "a.json"},
	}
	if d := cmp.Diff(want, result.Keys); d != "" {
		t.Errorf("Key diffs mismatch (-want +got):\n%s", d)
	}
	if len(result.Values) != 0 || len(result.Types) != 0 {
		t.Errorf("Expected only key diffs, got %+v", result)
	}
}

func TestCompareField_DepthLimit(t *testing.T) {
	ctx := NewWorkingContext("a.json", "b.json", Config{
		CheckValues: true,
		MaxDepth:    2,
	})

	a := parseValue(t, `{"l1": {"l2": {"l3": 1}}}`)
	b := parseValue(t, `{"l1": {"l2": {"l3": 2}}}`)

	result := CompareField("", a, b, ctx)

	// Past the limit the engine compares canonical serializations
	// instead of recursing, so the diff surfaces at the cutoff path.
	if len(result.Values) != 1 {
		t.Fatalf("Expected 1 value diff, got %+v", result)
	}
	if result.Values[0].Key != "l1.l2" {
		t.Errorf("Expected diff at cutoff path 'l1.l2', got '%s'", result.Values[0].Key)
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		value interface{}
		want  Kind
	}{
		{nil, KindNull},
		{true, KindBool},
		{json.Number("1.5"), KindNumber},
		{"s", KindString},
		{[]interface{}{}, KindArray},
		{map[string]interface{}{}, KindObject},
	}

	for _, tc := range cases {
		if got := KindOf(tc.value); got != tc.want {
			t.Errorf("KindOf(%v) = %s, want %s", tc.value, got, tc.want)
		}
	}
}
