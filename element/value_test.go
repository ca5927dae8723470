package element_test

import (
	"testing"

	"github.com/oarkflow/tomldoc/element"
	"github.com/oarkflow/tomldoc/lexer"
)

func deserialize(t *testing.T, typ lexer.TokenType, raw string) element.Value {
	t.Helper()
	v, err := element.Deserialize(lexer.Token{Type: typ, Raw: []byte(raw)})
	if err != nil {
		t.Fatalf("Deserialize(%s, %q): %v", typ, raw, err)
	}
	return v
}

func TestDeserializeInteger(t *testing.T) {
	v := deserialize(t, lexer.TypeInteger, "1_000")
	if v.Kind() != element.KindInt64 || v.Int64() != 1000 {
		t.Fatalf("got kind=%v int64=%d, want 1000", v.Kind(), v.Int64())
	}
}

func TestDeserializeIntegerOverflowFallsBackToBigDecimal(t *testing.T) {
	v := deserialize(t, lexer.TypeInteger, "99999999999999999999999999999999")
	if v.Kind() != element.KindBigDecimal || v.BigDecimal() == nil {
		t.Fatalf("got kind=%v, want KindBigDecimal with a non-nil decimal", v.Kind())
	}
}

func TestDeserializeFloat(t *testing.T) {
	v := deserialize(t, lexer.TypeFloat, "3.14")
	if v.Kind() != element.KindFloat64 || v.Float64() != 3.14 {
		t.Fatalf("got kind=%v float64=%v, want 3.14", v.Kind(), v.Float64())
	}
}

func TestDeserializeBoolean(t *testing.T) {
	v := deserialize(t, lexer.TypeBoolean, "true")
	if v.Kind() != element.KindBool || !v.Bool() {
		t.Fatalf("got kind=%v bool=%v, want true", v.Kind(), v.Bool())
	}
}

func TestDeserializeBareAndBasicString(t *testing.T) {
	bare := deserialize(t, lexer.TypeBareString, "hello")
	if bare.String() != "hello" {
		t.Fatalf("bare string = %q, want hello", bare.String())
	}
	basic := deserialize(t, lexer.TypeBasicString, `"hi\nthere"`)
	if basic.String() != "hi\nthere" {
		t.Fatalf("basic string = %q, want %q", basic.String(), "hi\nthere")
	}
}

func TestDeserializeBasicStringUnknownEscapeErrors(t *testing.T) {
	_, err := element.Deserialize(lexer.Token{Type: lexer.TypeBasicString, Raw: []byte(`"bad \a escape"`)})
	if err == nil {
		t.Fatalf("expected an error for an unrecognized escape sequence")
	}
}

func TestDeserializeLiteralStringIsVerbatim(t *testing.T) {
	v := deserialize(t, lexer.TypeLiteralString, `'C:\no\escapes'`)
	if v.String() != `C:\no\escapes` {
		t.Fatalf("literal string = %q, want verbatim contents", v.String())
	}
}

func TestDeserializeMultilineBasicStringTrimsLeadingNewline(t *testing.T) {
	v := deserialize(t, lexer.TypeMultilineBasicString, "\"\"\"\nfirst\nsecond\"\"\"")
	if v.String() != "first\nsecond" {
		t.Fatalf("multiline string = %q, want %q", v.String(), "first\nsecond")
	}
}

func TestDeserializeMultilineBasicStringFoldsLineEndingBackslash(t *testing.T) {
	v := deserialize(t, lexer.TypeMultilineBasicString, "\"\"\"line one \\\n   line two\"\"\"")
	if v.String() != "line one line two" {
		t.Fatalf("multiline string = %q, want %q", v.String(), "line one line two")
	}
}

func TestDeserializeDateOnly(t *testing.T) {
	v := deserialize(t, lexer.TypeDate, "1987-07-05")
	if v.Kind() != element.KindDate {
		t.Fatalf("got kind=%v, want KindDate", v.Kind())
	}
	if v.Date().Year() != 1987 || v.Date().Month() != 7 || v.Date().Day() != 5 {
		t.Fatalf("date = %v, want 1987-07-05", v.Date())
	}
}

func TestCreatePrimitiveTokenRoundTripsThroughDeserialize(t *testing.T) {
	cases := []any{
		int64(42),
		3.5,
		true,
		"plain",
		"needs \"quotes\"",
	}
	for _, c := range cases {
		tok, err := element.CreatePrimitiveToken(c)
		if err != nil {
			t.Fatalf("CreatePrimitiveToken(%#v): %v", c, err)
		}
		v, err := element.Deserialize(tok)
		if err != nil {
			t.Fatalf("Deserialize(%q): %v", tok.Raw, err)
		}
		switch want := c.(type) {
		case int64:
			if v.Int64() != want {
				t.Fatalf("got %d, want %d", v.Int64(), want)
			}
		case float64:
			if v.Float64() != want {
				t.Fatalf("got %v, want %v", v.Float64(), want)
			}
		case bool:
			if v.Bool() != want {
				t.Fatalf("got %v, want %v", v.Bool(), want)
			}
		case string:
			if v.String() != want {
				t.Fatalf("got %q, want %q", v.String(), want)
			}
		}
	}
}

func TestCreatePrimitiveTokenEmptyStringIsQuoted(t *testing.T) {
	tok, err := element.CreatePrimitiveToken("")
	if err != nil {
		t.Fatalf("CreatePrimitiveToken(\"\"): %v", err)
	}
	if string(tok.Raw) != `""` {
		t.Fatalf("raw = %q, want %q", tok.Raw, `""`)
	}
}

func TestCreatePrimitiveTokenBareEligibleStringIsUnquoted(t *testing.T) {
	tok, err := element.CreatePrimitiveToken("bare-key_123")
	if err != nil {
		t.Fatalf("CreatePrimitiveToken: %v", err)
	}
	if tok.Type != lexer.TypeBareString || string(tok.Raw) != "bare-key_123" {
		t.Fatalf("got type=%v raw=%q, want bare unquoted token", tok.Type, tok.Raw)
	}
}

func TestCreatePrimitiveTokenMultilineStringUsesTripleQuotes(t *testing.T) {
	tok, err := element.CreatePrimitiveToken("line one\nline two\nline three")
	if err != nil {
		t.Fatalf("CreatePrimitiveToken: %v", err)
	}
	if tok.Type != lexer.TypeMultilineBasicString {
		t.Fatalf("type = %v, want TypeMultilineBasicString", tok.Type)
	}
}

func TestCreatePrimitiveTokenUnsupportedTypeErrors(t *testing.T) {
	_, err := element.CreatePrimitiveToken(struct{}{})
	if err == nil {
		t.Fatalf("expected a NotPrimitiveError")
	}
	if _, ok := err.(*element.NotPrimitiveError); !ok {
		t.Fatalf("err = %#v (%T), want *element.NotPrimitiveError", err, err)
	}
}
