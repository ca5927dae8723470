// Package parser implements the recursive-descent grammar that turns a
// token stream (package lexer) into an element tree (package element).
package parser

import "github.com/oarkflow/tomldoc/lexer"

// Stream is an immutable view into a token slice: advancing never mutates
// the underlying slice, it returns a new Stream with a larger offset. This
// makes backtracking free — a failed grammar alternative simply discards
// the Stream it was given and retries from the one it started with.
type Stream struct {
	toks   []lexer.Token
	offset int
}

// NewStream wraps toks as a Stream starting at its first token.
func NewStream(toks []lexer.Token) Stream {
	return Stream{toks: toks}
}

// AtEnd reports whether the stream has no more tokens.
func (s Stream) AtEnd() bool { return s.offset >= len(s.toks) }

// Head returns the current token and true, or the zero Token and false at
// end of stream.
func (s Stream) Head() (lexer.Token, bool) {
	if s.AtEnd() {
		return lexer.Token{}, false
	}
	return s.toks[s.offset], true
}

// Advance returns a new Stream with the head token consumed.
func (s Stream) Advance() Stream {
	if s.AtEnd() {
		return s
	}
	return Stream{toks: s.toks, offset: s.offset + 1}
}

// Offset returns the stream's current position, used for error reporting.
func (s Stream) Offset() int { return s.offset }
