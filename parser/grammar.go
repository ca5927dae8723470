package parser

import (
	"github.com/oarkflow/tomldoc/element"
	"github.com/oarkflow/tomldoc/lexer"
)

// Parse turns the tokens of a complete TOML source into the flat, top-level sequence
// of Elements that make up a document: an optional anonymous TableBody,
// followed by zero or more (TableHeader, TableBody) pairs. This is the
// grammar's single public entry point; everything else in this file is an
// internal production.
func Parse(toks []lexer.Token) ([]element.Element, error) {
	s := NewStream(toks)
	var out []element.Element

	if !s.AtEnd() && !atTableHeaderStart(s) {
		body, next, err := tableBodyRule(s)
		if err != nil {
			return nil, err
		}
		out = append(out, body)
		s = next
	}

	for !s.AtEnd() {
		header, next, err := tableHeaderRule(s)
		if err != nil {
			return nil, err
		}
		body, next2, err := tableBodyRule(next)
		if err != nil {
			return nil, err
		}
		out = append(out, header, body)
		s = next2
	}

	return out, nil
}

// ---- lookahead ----

// atTableHeaderStart reports whether the next significant token (skipping
// at most one leading indentation token) opens a table header, so the
// table-body loop knows where its own line-by-line grammar ends.
func atTableHeaderStart(s Stream) bool {
	tok, ok := s.Head()
	if !ok {
		return false
	}
	if tok.Type == lexer.TypeWhitespace {
		s = s.Advance()
		tok, ok = s.Head()
		if !ok {
			return false
		}
	}
	return tok.Type == lexer.TypeSquareLeft || tok.Type == lexer.TypeDoubleSquareLeft
}

func headType(s Stream) (lexer.TokenType, bool) {
	tok, ok := s.Head()
	if !ok {
		return 0, false
	}
	return tok.Type, true
}

// ---- trivia ----

func singleTokenRule(want lexer.TokenType, build func(lexer.Token) (element.Element, error)) Rule {
	return func(s Stream) ([]element.Element, Stream, error) {
		tok, ok := s.Head()
		if !ok || tok.Type != want {
			return nil, s, errAt(s, "expected "+want.String())
		}
		elem, err := build(tok)
		if err != nil {
			return nil, s, err
		}
		return []element.Element{elem}, s.Advance(), nil
	}
}

func whitespaceRule(s Stream) ([]element.Element, Stream, error) {
	return singleTokenRule(lexer.TypeWhitespace, func(tok lexer.Token) (element.Element, error) {
		return element.NewWhitespace([]lexer.Token{tok})
	})(s)
}

func newlineRule(s Stream) ([]element.Element, Stream, error) {
	return singleTokenRule(lexer.TypeNewline, func(tok lexer.Token) (element.Element, error) {
		return element.NewNewline([]lexer.Token{tok})
	})(s)
}

// commentRule matches a comment token together with its mandatory trailing
// newline; a comment with no newline after it (at end of input) is an error.
func commentRule(s Stream) ([]element.Element, Stream, error) {
	tok, ok := s.Head()
	if !ok || tok.Type != lexer.TypeComment {
		return nil, s, errAt(s, "expected comment")
	}
	next := s.Advance()
	if nl, ok := next.Head(); ok && nl.Type == lexer.TypeNewline {
		elem, err := element.NewComment([]lexer.Token{tok, nl})
		if err != nil {
			return nil, s, err
		}
		return []element.Element{elem}, next.Advance(), nil
	}
	// No newline to pair with it: a Comment element needs both tokens, so
	// the comment is rejected and the error reaches the caller.
	return nil, s, errAt(s, "comment must be terminated by a newline")
}

// optionalWhitespace consumes zero or one whitespace token.
func optionalWhitespace(s Stream) ([]element.Element, Stream) {
	elems, next, err := whitespaceRule(s)
	if err != nil {
		return nil, s
	}
	return elems, next
}

// ---- keys ----

func isKeyToken(t lexer.TokenType) bool {
	switch t {
	case lexer.TypeBareString, lexer.TypeBasicString, lexer.TypeLiteralString:
		return true
	default:
		return false
	}
}

func keyRule(s Stream) ([]element.Element, Stream, error) {
	tok, ok := s.Head()
	if !ok || !isKeyToken(tok.Type) {
		return nil, s, errAt(s, "expected a key")
	}
	elem, err := element.NewAtomic(tok)
	if err != nil {
		return nil, s, err
	}
	return []element.Element{elem}, s.Advance(), nil
}

// ---- values ----

func isAtomicValueToken(t lexer.TokenType) bool {
	switch t {
	case lexer.TypeBoolean, lexer.TypeInteger, lexer.TypeFloat, lexer.TypeDate,
		lexer.TypeBareString, lexer.TypeBasicString, lexer.TypeLiteralString,
		lexer.TypeMultilineBasicString, lexer.TypeMultilineLiteralString:
		return true
	default:
		return false
	}
}

func atomicRule(s Stream) ([]element.Element, Stream, error) {
	tok, ok := s.Head()
	if !ok || !isAtomicValueToken(tok.Type) {
		return nil, s, errAt(s, "expected a value")
	}
	elem, err := element.NewAtomic(tok)
	if err != nil {
		return nil, s, err
	}
	return []element.Element{elem}, s.Advance(), nil
}

// valueRule dispatches on the head token to the array, inline-table, or
// atomic production.
func valueRule(s Stream) ([]element.Element, Stream, error) {
	t, ok := headType(s)
	if !ok {
		return nil, s, errAt(s, "expected a value")
	}
	switch t {
	case lexer.TypeSquareLeft:
		return arrayRule(s)
	case lexer.TypeCurlyLeft:
		return inlineTableRule(s)
	default:
		return atomicRule(s)
	}
}

// ---- arrays ----

func arrayRule(s Stream) ([]element.Element, Stream, error) {
	open, ok := s.Head()
	if !ok || open.Type != lexer.TypeSquareLeft {
		return nil, s, errAt(s, "expected '['")
	}
	openElem, err := element.NewPunctuation(open)
	if err != nil {
		return nil, s, err
	}
	sub := []element.Element{openElem}
	s = s.Advance()

	sub, s = consumeArrayTrivia(sub, s)

	for {
		t, ok := headType(s)
		if !ok {
			return nil, s, errAt(s, "unterminated array")
		}
		if t == lexer.TypeSquareRight {
			closeElem, err := element.NewPunctuation(mustHead(s))
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, closeElem)
			s = s.Advance()
			break
		}

		elems, next, err := valueRule(s)
		if err != nil {
			return nil, s, err
		}
		sub = append(sub, elems...)
		s = next

		sub, s = consumeArrayTrivia(sub, s)

		t, ok = headType(s)
		if !ok {
			return nil, s, errAt(s, "unterminated array")
		}
		if t == lexer.TypeComma {
			commaElem, err := element.NewPunctuation(mustHead(s))
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, commaElem)
			s = s.Advance()
			sub, s = consumeArrayTrivia(sub, s)
			continue
		}
		if t == lexer.TypeSquareRight {
			closeElem, err := element.NewPunctuation(mustHead(s))
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, closeElem)
			s = s.Advance()
			break
		}
		return nil, s, errAt(s, "expected ',' or ']' in array")
	}

	arr, err := element.NewArray(sub)
	if err != nil {
		return nil, s, err
	}
	return []element.Element{arr}, s, nil
}

// consumeArrayTrivia folds in any run of whitespace, newlines, and
// comments that TOML permits inside a multi-line array literal.
func consumeArrayTrivia(sub []element.Element, s Stream) ([]element.Element, Stream) {
	for {
		t, ok := headType(s)
		if !ok {
			return sub, s
		}
		switch t {
		case lexer.TypeWhitespace:
			elems, next, _ := whitespaceRule(s)
			sub = append(sub, elems...)
			s = next
		case lexer.TypeNewline:
			elems, next, _ := newlineRule(s)
			sub = append(sub, elems...)
			s = next
		case lexer.TypeComment:
			elems, next, err := commentRule(s)
			if err != nil {
				return sub, s
			}
			sub = append(sub, elems...)
			s = next
		default:
			return sub, s
		}
	}
}

func mustHead(s Stream) lexer.Token {
	tok, _ := s.Head()
	return tok
}

// ---- inline tables ----

func inlineTableRule(s Stream) ([]element.Element, Stream, error) {
	open, ok := s.Head()
	if !ok || open.Type != lexer.TypeCurlyLeft {
		return nil, s, errAt(s, "expected '{'")
	}
	openElem, err := element.NewPunctuation(open)
	if err != nil {
		return nil, s, err
	}
	sub := []element.Element{openElem}
	s = s.Advance()

	if ws, next := optionalWhitespace(s); len(ws) > 0 {
		sub = append(sub, ws...)
		s = next
	}

	if t, ok := headType(s); ok && t == lexer.TypeCurlyRight {
		closeElem, err := element.NewPunctuation(mustHead(s))
		if err != nil {
			return nil, s, err
		}
		sub = append(sub, closeElem)
		s = s.Advance()
		tbl, err := element.NewInlineTable(sub)
		if err != nil {
			return nil, s, err
		}
		return []element.Element{tbl}, s, nil
	}

	for {
		keyElems, next, err := keyRule(s)
		if err != nil {
			return nil, s, err
		}
		sub = append(sub, keyElems...)
		s = next

		if ws, next := optionalWhitespace(s); len(ws) > 0 {
			sub = append(sub, ws...)
			s = next
		}

		assign, ok := s.Head()
		if !ok || assign.Type != lexer.TypeAssign {
			return nil, s, errAt(s, "expected '=' in inline table entry")
		}
		assignElem, err := element.NewPunctuation(assign)
		if err != nil {
			return nil, s, err
		}
		sub = append(sub, assignElem)
		s = s.Advance()

		if ws, next := optionalWhitespace(s); len(ws) > 0 {
			sub = append(sub, ws...)
			s = next
		}

		valElems, next, err := valueRule(s)
		if err != nil {
			return nil, s, err
		}
		sub = append(sub, valElems...)
		s = next

		if ws, next := optionalWhitespace(s); len(ws) > 0 {
			sub = append(sub, ws...)
			s = next
		}

		t, ok := headType(s)
		if !ok {
			return nil, s, errAt(s, "unterminated inline table")
		}
		if t == lexer.TypeComma {
			commaElem, err := element.NewPunctuation(mustHead(s))
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, commaElem)
			s = s.Advance()
			if ws, next := optionalWhitespace(s); len(ws) > 0 {
				sub = append(sub, ws...)
				s = next
			}
			continue
		}
		if t == lexer.TypeCurlyRight {
			closeElem, err := element.NewPunctuation(mustHead(s))
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, closeElem)
			s = s.Advance()
			break
		}
		return nil, s, errAt(s, "expected ',' or '}' in inline table")
	}

	tbl, err := element.NewInlineTable(sub)
	if err != nil {
		return nil, s, err
	}
	return []element.Element{tbl}, s, nil
}

// ---- table header ----

func tableHeaderRule(s Stream) (*element.TableHeader, Stream, error) {
	open, ok := s.Head()
	if !ok || (open.Type != lexer.TypeSquareLeft && open.Type != lexer.TypeDoubleSquareLeft) {
		return nil, s, errAt(s, "expected '[' or '[['")
	}
	isArray := open.Type == lexer.TypeDoubleSquareLeft
	openElem, err := element.NewPunctuation(open)
	if err != nil {
		return nil, s, err
	}
	sub := []element.Element{openElem}
	s = s.Advance()

	for {
		if ws, next := optionalWhitespace(s); len(ws) > 0 {
			sub = append(sub, ws...)
			s = next
		}
		keyElems, next, err := keyRule(s)
		if err != nil {
			return nil, s, err
		}
		sub = append(sub, keyElems...)
		s = next

		if ws, next := optionalWhitespace(s); len(ws) > 0 {
			sub = append(sub, ws...)
			s = next
		}

		t, ok := headType(s)
		if ok && t == lexer.TypeDot {
			dotElem, err := element.NewPunctuation(mustHead(s))
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, dotElem)
			s = s.Advance()
			continue
		}
		break
	}

	wantClose := lexer.TypeSquareRight
	if isArray {
		wantClose = lexer.TypeDoubleSquareRight
	}
	closeTok, ok := s.Head()
	if !ok || closeTok.Type != wantClose {
		return nil, s, errAt(s, "expected matching closing bracket in table header")
	}
	closeElem, err := element.NewPunctuation(closeTok)
	if err != nil {
		return nil, s, err
	}
	sub = append(sub, closeElem)
	s = s.Advance()

	if ws, next := optionalWhitespace(s); len(ws) > 0 {
		sub = append(sub, ws...)
		s = next
	}
	if t, ok := headType(s); ok && t == lexer.TypeNewline {
		elems, next, err := newlineRule(s)
		if err != nil {
			return nil, s, err
		}
		sub = append(sub, elems...)
		s = next
	}

	header, err := element.NewTableHeader(sub)
	if err != nil {
		return nil, s, err
	}
	return header, s, nil
}

// ---- table body ----

// tableBodyRule consumes lines (key-value pairs, comments, blank lines)
// until it reaches end of input or the start of a table header.
func tableBodyRule(s Stream) (*element.TableBody, Stream, error) {
	var sub []element.Element
	for {
		if s.AtEnd() {
			break
		}
		if atTableHeaderStart(s) {
			// A header may be indented for readability even though
			// headers aren't lexically nested; that indentation belongs
			// to this body's trailing trivia, not to the header itself.
			if ws, next := optionalWhitespace(s); len(ws) > 0 {
				sub = append(sub, ws...)
				s = next
			}
			break
		}
		t, _ := headType(s)
		switch t {
		case lexer.TypeComment:
			elems, next, err := commentRule(s)
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, elems...)
			s = next
		case lexer.TypeNewline:
			elems, next, err := newlineRule(s)
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, elems...)
			s = next
		case lexer.TypeWhitespace:
			// Could be blank-line indentation or a key-value line's
			// leading indentation; peek past it to decide.
			peeked := s.Advance()
			pt, ok := headType(peeked)
			if ok && pt == lexer.TypeComment {
				ws, _ := optionalWhitespace(s)
				sub = append(sub, ws...)
				s = peeked
				continue
			}
			if ok && pt == lexer.TypeNewline {
				ws, _ := optionalWhitespace(s)
				sub = append(sub, ws...)
				s = peeked
				continue
			}
			elems, next, err := kvPairRule(s)
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, elems...)
			s = next
		default:
			elems, next, err := kvPairRule(s)
			if err != nil {
				return nil, s, err
			}
			sub = append(sub, elems...)
			s = next
		}
	}
	return element.NewTableBody(sub), s, nil
}

// kvPairRule matches one `key = value` line, including its optional
// leading indentation and its trailing comment-or-newline.
func kvPairRule(s Stream) ([]element.Element, Stream, error) {
	captured := CaptureFrom(s).
		Extract(func(st Stream) ([]element.Element, Stream, error) {
			ws, next := optionalWhitespace(st)
			return ws, next, nil
		}).
		Extract(keyRule).
		Extract(func(st Stream) ([]element.Element, Stream, error) {
			ws, next := optionalWhitespace(st)
			return ws, next, nil
		}).
		Extract(func(st Stream) ([]element.Element, Stream, error) {
			tok, ok := st.Head()
			if !ok || tok.Type != lexer.TypeAssign {
				return nil, st, errAt(st, "expected '=' in key-value pair")
			}
			elem, err := element.NewPunctuation(tok)
			if err != nil {
				return nil, st, err
			}
			return []element.Element{elem}, st.Advance(), nil
		}).
		Extract(func(st Stream) ([]element.Element, Stream, error) {
			ws, next := optionalWhitespace(st)
			return ws, next, nil
		}).
		Extract(valueRule)

	elems, next, err := captured.Value()
	if err != nil {
		return nil, s, err
	}
	s = next

	if ws, after := optionalWhitespace(s); len(ws) > 0 {
		elems = append(elems, ws...)
		s = after
	}

	if t, ok := headType(s); ok {
		switch t {
		case lexer.TypeComment:
			c, next, err := commentRule(s)
			if err != nil {
				return nil, s, err
			}
			elems = append(elems, c...)
			s = next
		case lexer.TypeNewline:
			nl, next, err := newlineRule(s)
			if err != nil {
				return nil, s, err
			}
			elems = append(elems, nl...)
			s = next
		}
	}

	return elems, s, nil
}
