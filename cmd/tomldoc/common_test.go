package main

import (
	"testing"

	"github.com/oarkflow/tomldoc/element"
)

func TestSplitPath(t *testing.T) {
	got := splitPath("owner.address.city")
	want := []string{"owner", "address", "city"}
	if len(got) != len(want) {
		t.Fatalf("splitPath = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitPath = %v, want %v", got, want)
		}
	}
	if splitPath("") != nil {
		t.Fatalf("splitPath(\"\") = %v, want nil", splitPath(""))
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		raw         string
		forceString bool
		want        any
	}{
		{"true", false, true},
		{"false", false, false},
		{"42", false, int64(42)},
		{"3.14", false, 3.14},
		{"hello", false, "hello"},
		{"42", true, "42"},
	}
	for _, c := range cases {
		got := parseValue(c.raw, c.forceString)
		if got != c.want {
			t.Fatalf("parseValue(%q, %v) = %#v, want %#v", c.raw, c.forceString, got, c.want)
		}
	}
}

func TestNavigatePrimitive(t *testing.T) {
	root := map[string]any{
		"owner": map[string]any{
			"name": "tom",
		},
	}
	v, ok := navigatePrimitive(root, []string{"owner", "name"})
	if !ok || v != "tom" {
		t.Fatalf("navigatePrimitive = %#v, %v, want tom, true", v, ok)
	}
	if _, ok := navigatePrimitive(root, []string{"missing"}); ok {
		t.Fatalf("navigatePrimitive(missing) = true, want false")
	}
}

func TestScalarString(t *testing.T) {
	tok, err := element.CreatePrimitiveToken(int64(7))
	if err != nil {
		t.Fatalf("CreatePrimitiveToken: %v", err)
	}
	v, err := element.Deserialize(tok)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if scalarString(v) != "7" {
		t.Fatalf("scalarString = %q, want %q", scalarString(v), "7")
	}
}
