package parser

import (
	"fmt"

	"github.com/oarkflow/tomldoc/lexer"
)

// SyntaxError records a grammar rule's failure to match at its current
// Stream position. It is distinct from lexer.Error (which reports a byte
// the lexer itself could not tokenize at all).
type SyntaxError struct {
	Msg  string
	Tok  lexer.Token
	HasTok bool
}

func (e *SyntaxError) Error() string {
	if e.HasTok {
		return fmt.Sprintf("parse error at line %d col %d near %q: %s", e.Tok.Line, e.Tok.Col, e.Tok.Raw, e.Msg)
	}
	return fmt.Sprintf("parse error: %s (unexpected end of input)", e.Msg)
}

func errAt(s Stream, msg string) error {
	if tok, ok := s.Head(); ok {
		return &SyntaxError{Msg: msg, Tok: tok, HasTok: true}
	}
	return &SyntaxError{Msg: msg}
}
