package lexer_test

import (
	"testing"

	"github.com/oarkflow/tomldoc/lexer"
)

func mustTokenize(t *testing.T, src string) []lexer.Token {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("tokenize error: %v\nsrc: %q", err, src)
	}
	return toks
}

func TestTokenizeTotality(t *testing.T) {
	src := "a = 1 # hi\nb = \"x\"\n"
	toks := mustTokenize(t, src)
	var rebuilt []byte
	for _, tok := range toks {
		rebuilt = append(rebuilt, tok.Raw...)
	}
	if string(rebuilt) != src {
		t.Fatalf("lexer totality violated:\n got %q\nwant %q", rebuilt, src)
	}
}

func TestBooleanBeatsBareString(t *testing.T) {
	toks := mustTokenize(t, "true")
	if len(toks) != 1 || toks[0].Type != lexer.TypeBoolean {
		t.Fatalf("expected single boolean token, got %+v", toks)
	}
}

func TestDoubleBracketBeatsSingle(t *testing.T) {
	toks := mustTokenize(t, "[[")
	if len(toks) != 1 || toks[0].Type != lexer.TypeDoubleSquareLeft {
		t.Fatalf("expected single [[ token, got %+v", toks)
	}
}

func TestBareKeyCanLookLikeBoolWord(t *testing.T) {
	toks := mustTokenize(t, "truest")
	if len(toks) != 1 || toks[0].Type != lexer.TypeBareString {
		t.Fatalf("expected bare-string token for truest, got %+v", toks)
	}
}

func TestIntegerLeadingZeroFallsBackToBareString(t *testing.T) {
	toks := mustTokenize(t, "0446")
	if len(toks) != 1 || toks[0].Type != lexer.TypeBareString {
		t.Fatalf("expected bare-string token for 0446, got %+v", toks)
	}
}

func TestLoneZeroIsInteger(t *testing.T) {
	toks := mustTokenize(t, "0")
	if len(toks) != 1 || toks[0].Type != lexer.TypeInteger {
		t.Fatalf("expected integer token for 0, got %+v", toks)
	}
}

func TestFloatBeatsInteger(t *testing.T) {
	toks := mustTokenize(t, "3.14")
	if len(toks) != 1 || toks[0].Type != lexer.TypeFloat {
		t.Fatalf("expected single float token, got %+v", toks)
	}
}

func TestFloatWithExponent(t *testing.T) {
	toks := mustTokenize(t, "1e10")
	if len(toks) != 1 || toks[0].Type != lexer.TypeFloat {
		t.Fatalf("expected single float token, got %+v", toks)
	}
}

func TestUnderscoresInNumerics(t *testing.T) {
	toks := mustTokenize(t, "1_000_000")
	if len(toks) != 1 || toks[0].Type != lexer.TypeInteger || toks[0].String() != "1_000_000" {
		t.Fatalf("expected single underscored integer token, got %+v", toks)
	}
}

func TestDateOnly(t *testing.T) {
	toks := mustTokenize(t, "1979-05-27")
	if len(toks) != 1 || toks[0].Type != lexer.TypeDate {
		t.Fatalf("expected single date token, got %+v", toks)
	}
}

func TestDateTimeWithOffset(t *testing.T) {
	toks := mustTokenize(t, "1979-05-27T07:32:00-07:00")
	if len(toks) != 1 || toks[0].Type != lexer.TypeDate || toks[0].String() != "1979-05-27T07:32:00-07:00" {
		t.Fatalf("expected full datetime token, got %+v", toks)
	}
}

func TestDateTimeWithFractionAndZ(t *testing.T) {
	toks := mustTokenize(t, "1979-05-27T00:32:00.999999Z")
	if len(toks) != 1 || toks[0].Type != lexer.TypeDate {
		t.Fatalf("expected datetime token, got %+v", toks)
	}
	if toks[0].String() != "1979-05-27T00:32:00.999999Z" {
		t.Fatalf("datetime token truncated: %q", toks[0].String())
	}
}

func TestMultilineBasicString(t *testing.T) {
	toks := mustTokenize(t, "\"\"\"line1\nline2\"\"\"")
	if len(toks) != 1 || toks[0].Type != lexer.TypeMultilineBasicString {
		t.Fatalf("expected single multiline basic string token, got %+v", toks)
	}
}

func TestMultilineLiteralString(t *testing.T) {
	toks := mustTokenize(t, "'''raw\\nstuff'''")
	if len(toks) != 1 || toks[0].Type != lexer.TypeMultilineLiteralString {
		t.Fatalf("expected single multiline literal string token, got %+v", toks)
	}
}

func TestBasicStringWithEscapes(t *testing.T) {
	toks := mustTokenize(t, `"a\"b"`)
	if len(toks) != 1 || toks[0].Type != lexer.TypeBasicString {
		t.Fatalf("expected single basic string token, got %+v", toks)
	}
}

func TestBasicStringCannotCrossNewline(t *testing.T) {
	_, err := lexer.Tokenize([]byte("\"abc\ndef\""))
	if err == nil {
		t.Fatalf("expected lexer error for a single-line string spanning a raw newline")
	}
}

func TestLiteralString(t *testing.T) {
	toks := mustTokenize(t, `'C:\Users\x'`)
	if len(toks) != 1 || toks[0].Type != lexer.TypeLiteralString {
		t.Fatalf("expected single literal string token, got %+v", toks)
	}
}

func TestCommentExcludesNewline(t *testing.T) {
	toks := mustTokenize(t, "# hello\n")
	if len(toks) != 2 || toks[0].Type != lexer.TypeComment || toks[1].Type != lexer.TypeNewline {
		t.Fatalf("expected comment then newline, got %+v", toks)
	}
	if toks[0].String() != "# hello" {
		t.Fatalf("comment token should exclude the newline, got %q", toks[0].String())
	}
}

func TestWhitespaceDoesNotCrossNewline(t *testing.T) {
	toks := mustTokenize(t, "  \n  ")
	if len(toks) != 3 {
		t.Fatalf("expected whitespace, newline, whitespace, got %+v", toks)
	}
	if toks[0].Type != lexer.TypeWhitespace || toks[1].Type != lexer.TypeNewline || toks[2].Type != lexer.TypeWhitespace {
		t.Fatalf("unexpected token types: %+v", toks)
	}
}

func TestCRLFNormalized(t *testing.T) {
	toks := mustTokenize(t, "a\r\nb")
	for _, tok := range toks {
		if tok.Type == lexer.TypeNewline && tok.String() != "\n" {
			t.Fatalf("expected normalized single \\n newline, got %q", tok.String())
		}
	}
}

func TestLineColTracking(t *testing.T) {
	toks := mustTokenize(t, "a\nb")
	if toks[0].Line != 1 || toks[0].Col != 1 {
		t.Fatalf("expected first token at (1,1), got (%d,%d)", toks[0].Line, toks[0].Col)
	}
	// toks: [bare 'a'][newline][bare 'b']
	last := toks[len(toks)-1]
	if last.Line != 2 || last.Col != 1 {
		t.Fatalf("expected last token at (2,1), got (%d,%d)", last.Line, last.Col)
	}
}

func TestUnrecognizedInputErrors(t *testing.T) {
	_, err := lexer.Tokenize([]byte("key = @@@"))
	if err == nil {
		t.Fatalf("expected lexer error for unrecognized byte")
	}
	var lexErr *lexer.Error
	if !asLexerError(err, &lexErr) {
		t.Fatalf("expected *lexer.Error, got %T", err)
	}
}

func asLexerError(err error, target **lexer.Error) bool {
	if e, ok := err.(*lexer.Error); ok {
		*target = e
		return true
	}
	return false
}
