package tomldoc_test

import (
	"testing"

	"github.com/oarkflow/tomldoc/element"
	"github.com/oarkflow/tomldoc/tomldoc"
)

// S1: appending a new key to an existing table lands immediately after the
// table's last existing line, ahead of any trailing blank line or comment.
func TestScenarioAppendAfterLastLine(t *testing.T) {
	f, err := tomldoc.Parse([]byte("[apple]\ncolor = \"green\"\nname = \"yonagold\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := f.Set([]string{"apple", "other_name"}, "nevermind"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got := string(f.Dump())
	want := "[apple]\ncolor = \"green\"\nname = \"yonagold\"\nother_name = \"nevermind\"\n"
	if got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

// S1 variant: a trailing blank line and comment after the last key stay
// after the freshly appended key, not before it.
func TestScenarioAppendPreservesTrailingTrivia(t *testing.T) {
	f, err := tomldoc.Parse([]byte("[apple]\nname = \"yonagold\"\n\n# end of apple\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := f.Set([]string{"apple", "other_name"}, "nevermind"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got := string(f.Dump())
	want := "[apple]\nname = \"yonagold\"\nother_name = \"nevermind\"\n\n# end of apple\n"
	if got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

// S2: setting a key in a brand new table, in an empty document, appends a
// fresh header and body followed by a blank line.
func TestScenarioSetOnEmptyFileCreatesTable(t *testing.T) {
	f := tomldoc.New()
	if err := f.Set([]string{"details", "id"}, 12); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got := string(f.Dump())
	want := "[details]\nid = 12\n\n"
	if got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

// S3: appending successive array-of-tables entries to an empty document.
func TestScenarioAppendArrayOfTablesEntries(t *testing.T) {
	f := tomldoc.New()
	if err := f.AppendTableEntry([]string{"fruit"}, map[string]any{"name": "banana"}); err != nil {
		t.Fatalf("AppendTableEntry: %v", err)
	}
	if err := f.AppendTableEntry([]string{"fruit"}, map[string]any{"name": "grapes"}); err != nil {
		t.Fatalf("AppendTableEntry: %v", err)
	}
	got := string(f.Dump())
	want := "[[fruit]]\nname = \"banana\"\n\n[[fruit]]\nname = \"grapes\"\n\n"
	if got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}

	arr, err := f.Array("fruit")
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	if arr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", arr.Len())
	}
	v, err := arr.Entry(1).Get("name")
	if err != nil {
		t.Fatalf("Entry(1).Get: %v", err)
	}
	if v.String() != "grapes" {
		t.Fatalf("Entry(1).Get(\"name\") = %q, want %q", v.String(), "grapes")
	}
}

// S4: a sub-table indented for readability keeps its own indentation, and a
// freshly appended key copies the indentation of its siblings.
func TestScenarioIndentedSubtablePreservesIndentation(t *testing.T) {
	src := "[handlers]\n  [handlers.env]\n    K = \"v\"\n"
	f, err := tomldoc.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := f.Set([]string{"handlers", "env", "K2"}, "w"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got := string(f.Dump())
	want := "[handlers]\n  [handlers.env]\n    K = \"v\"\n    K2 = \"w\"\n"
	if got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

// S5: deleting entries from an inline table folds away the comma on
// whichever side is present, and deleting the last entry leaves an empty
// inline table with its surrounding spacing intact.
func TestScenarioInlineTableDeleteFoldsComma(t *testing.T) {
	f, err := tomldoc.Parse([]byte("x = { a = 1, b = 2 }\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	val, err := f.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	tbl, ok := val[0].Value.(*element.InlineTable)
	if !ok {
		t.Fatalf("x's value is %T, want *element.InlineTable", val[0].Value)
	}

	if err := tbl.Delete("a"); err != nil {
		t.Fatalf("Delete(a): %v", err)
	}
	if got, want := f.Dump(), "x = { b = 2 }\n"; string(got) != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}

	if err := tbl.Delete("b"); err != nil {
		t.Fatalf("Delete(b): %v", err)
	}
	if got, want := f.Dump(), "x = { }\n"; string(got) != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

// S6: a string with an unrecognized escape sequence still lexes and parses
// (escape validation isn't part of tokenization), but fails to project to a
// primitive value when read.
func TestScenarioInvalidEscapeFailsOnProjection(t *testing.T) {
	f, err := tomldoc.Parse([]byte("invalid-escape = \"bad \\a escape\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v, want success (escape errors surface on projection)", err)
	}
	if _, err := f.Get("invalid-escape"); err == nil {
		t.Fatalf("Get(invalid-escape): expected an error, got nil")
	}
}

func TestGetContainsKeysItems(t *testing.T) {
	f, err := tomldoc.Parse([]byte("title = \"demo\"\n\n[owner]\nname = \"tom\"\nage = 30\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !f.Contains("title") {
		t.Fatalf("Contains(title) = false, want true")
	}
	if !f.Contains("owner", "name") {
		t.Fatalf("Contains(owner, name) = false, want true")
	}
	if f.Contains("owner", "missing") {
		t.Fatalf("Contains(owner, missing) = true, want false")
	}

	v, err := f.Get("owner", "age")
	if err != nil {
		t.Fatalf("Get(owner, age): %v", err)
	}
	if v.Int64() != 30 {
		t.Fatalf("Get(owner, age) = %d, want 30", v.Int64())
	}

	keys, err := f.Keys("owner")
	if err != nil {
		t.Fatalf("Keys(owner): %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("Keys(owner) = %v, want 2 entries", keys)
	}

	items, err := f.Items("owner")
	if err != nil {
		t.Fatalf("Items(owner): %v", err)
	}
	if len(items) != 2 || items[0].Key != "name" || items[1].Key != "age" {
		t.Fatalf("Items(owner) = %#v, want name then age", items)
	}
}

func TestPrimitiveProjection(t *testing.T) {
	src := "title = \"demo\"\ntags = [\"a\", \"b\"]\n\n[owner]\nname = \"tom\"\n\n[[fruit]]\nname = \"apple\"\n\n[[fruit]]\nname = \"banana\"\n"
	f, err := tomldoc.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, err := f.Primitive()
	if err != nil {
		t.Fatalf("Primitive: %v", err)
	}
	if m["title"] != "demo" {
		t.Fatalf("title = %v, want demo", m["title"])
	}
	tags, ok := m["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
		t.Fatalf("tags = %#v, want [a b]", m["tags"])
	}
	owner, ok := m["owner"].(map[string]any)
	if !ok || owner["name"] != "tom" {
		t.Fatalf("owner = %#v, want {name: tom}", m["owner"])
	}
	fruit, ok := m["fruit"].([]any)
	if !ok || len(fruit) != 2 {
		t.Fatalf("fruit = %#v, want 2 entries", m["fruit"])
	}
}

func TestSetReplacesExistingValueInPlace(t *testing.T) {
	f, err := tomldoc.Parse([]byte("count = 1 # keep me\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := f.Set([]string{"count"}, 2); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got := string(f.Dump())
	want := "count = 2 # keep me\n"
	if got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestArrayOfTablesNestedSubtableAttachesToLatestEntry(t *testing.T) {
	src := "[[items]]\nname = \"a\"\n[items.meta]\nrank = 1\n\n[[items]]\nname = \"b\"\n[items.meta]\nrank = 2\n"
	f, err := tomldoc.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	arr, err := f.Array("items")
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	if arr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", arr.Len())
	}
	rank, err := arr.Entry(0).Get("meta", "rank")
	if err != nil {
		t.Fatalf("Entry(0).Get(meta, rank): %v", err)
	}
	if rank.Int64() != 1 {
		t.Fatalf("Entry(0) meta.rank = %d, want 1", rank.Int64())
	}
	rank, err = arr.Entry(1).Get("meta", "rank")
	if err != nil {
		t.Fatalf("Entry(1).Get(meta, rank): %v", err)
	}
	if rank.Int64() != 2 {
		t.Fatalf("Entry(1) meta.rank = %d, want 2", rank.Int64())
	}
}

func TestDuplicateTableHeaderErrors(t *testing.T) {
	_, err := tomldoc.Parse([]byte("[a]\nx = 1\n[a]\ny = 2\n"))
	if err == nil {
		t.Fatalf("expected a duplicate-table error")
	}
	if _, ok := err.(*tomldoc.DuplicateTablesError); !ok {
		t.Fatalf("err = %#v (%T), want *tomldoc.DuplicateTablesError", err, err)
	}
}

func TestDeleteRemovesKey(t *testing.T) {
	f, err := tomldoc.Parse([]byte("[owner]\nname = \"tom\"\nage = 30\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := f.Delete([]string{"owner", "age"}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got := string(f.Dump())
	want := "[owner]\nname = \"tom\"\n"
	if got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
	if f.Contains("owner", "age") {
		t.Fatalf("Contains(owner, age) = true after delete, want false")
	}
}

func TestDuplicateKeyInSameTableErrors(t *testing.T) {
	_, err := tomldoc.Parse([]byte("[a]\nx = 1\nx = 2\n"))
	if err == nil {
		t.Fatalf("expected a duplicate-key error")
	}
	if _, ok := err.(*tomldoc.DuplicateKeysError); !ok {
		t.Fatalf("err = %#v (%T), want *tomldoc.DuplicateKeysError", err, err)
	}
}

func TestRoundTripDumpIsByteExact(t *testing.T) {
	src := "# a comment\ntitle = \"demo\"   # trailing\n\n[owner]\n  name = \"tom\"\n\n[[fruit]]\nname = \"apple\"\n"
	f, err := tomldoc.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := string(f.Dump()); got != src {
		t.Fatalf("Dump() = %q, want %q (unmodified round trip must be byte exact)", got, src)
	}
}
