package diff

import (
	"encoding/json"
	"testing"
)

func TestCanonical(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"null", nil, "null"},
		{"bool", true, "true"},
		{"number literal preserved", json.Number("1.50"), "1.50"},
		{"string quoted", "hi", `"hi"`},
		{"array", []interface{}{json.Number("1"), "a"}, `[1,"a"]`},
		{
			"object keys sorted",
			map[string]interface{}{"b": json.Number("2"), "a": json.Number("1")},
			`{"a":1,"b":2}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Canonical(tc.value); got != tc.want {
				t.Errorf("Canonical(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestNumberEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1", "1", true},
		{"1", "1.0", true},
		{"0.1", "1e-1", true},
		{"1", "2", false},
		{"9007199254740993", "9007199254740992", false}, // beyond float64 precision
		{"0.30000000000000004", "0.3", false},
	}

	for _, tc := range cases {
		got := numberEqual(json.Number(tc.a), json.Number(tc.b))
		if got != tc.want {
			t.Errorf("numberEqual(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestJoinPath(t *testing.T) {
	if got := joinPath("", "key"); got != "key" {
		t.Errorf("Root path should yield bare key, got %q", got)
	}
	if got := joinPath("parent", "key"); got != "parent.key" {
		t.Errorf("Expected dotted path, got %q", got)
	}
	if got := indexPath("arr", 3); got != "arr[3]" {
		t.Errorf("Expected bracketed index path, got %q", got)
	}
}
