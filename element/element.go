// Package element implements the TOML element tree: the typed structure
// that sits between the raw token stream (package lexer) and the navigable
// document view (package tomldoc). Every byte of the source is held by
// exactly one element — concatenating every element's Serialized() output,
// depth first, reproduces the original input exactly.
package element

import (
	"fmt"
	"strings"

	"github.com/oarkflow/tomldoc/lexer"
)

// Element is the tagged union at the root of the tree: a token element
// (leaf, backed by one or more raw tokens) or a container element (backed
// by an ordered sequence of sub-elements). Both shapes know how to
// reproduce their own source slice.
type Element interface {
	// Serialized returns this element's exact source text.
	Serialized() string
	// IsMetadata reports whether navigation skips over this element:
	// whitespace, newlines, comments, and punctuation are metadata; atomic
	// values and containers (array, inline table, table body, table
	// header) are not.
	IsMetadata() bool
}

// InvalidElementError reports that a sequence of tokens (or sub-elements)
// does not have the shape a particular element constructor requires. These
// are internal invariant violations — the parser constructs elements only
// from token spans its own grammar already matched — and surfacing them as
// an error (rather than panicking outright) lets a caller decide whether to
// treat the bug as fatal.
type InvalidElementError struct {
	Reason string
}

func (e *InvalidElementError) Error() string {
	return fmt.Sprintf("invalid element: %s", e.Reason)
}

// ---- token elements ----

// tokenElement is embedded by every leaf element; it owns the raw tokens
// and knows how to reconstitute their source text.
type tokenElement struct {
	toks []lexer.Token
}

// Tokens returns the tokens backing this leaf element, in source order.
func (e *tokenElement) Tokens() []lexer.Token { return e.toks }

func (e *tokenElement) Serialized() string {
	var b strings.Builder
	for _, t := range e.toks {
		b.Write(t.Raw)
	}
	return b.String()
}

// Whitespace is a run of one or more TypeWhitespace tokens.
type Whitespace struct{ tokenElement }

func (*Whitespace) IsMetadata() bool { return true }

// NewWhitespace validates and wraps toks as a Whitespace element.
func NewWhitespace(toks []lexer.Token) (*Whitespace, error) {
	for _, t := range toks {
		if t.Type != lexer.TypeWhitespace {
			return nil, &InvalidElementError{Reason: "Whitespace element requires only whitespace tokens"}
		}
	}
	return &Whitespace{tokenElement{toks}}, nil
}

// Newline is a run of one or more TypeNewline tokens.
type Newline struct{ tokenElement }

func (*Newline) IsMetadata() bool { return true }

// NewNewline validates and wraps toks as a Newline element.
func NewNewline(toks []lexer.Token) (*Newline, error) {
	for _, t := range toks {
		if t.Type != lexer.TypeNewline {
			return nil, &InvalidElementError{Reason: "Newline element requires only newline tokens"}
		}
	}
	return &Newline{tokenElement{toks}}, nil
}

// Comment wraps exactly one TypeComment token followed by exactly one
// TypeNewline token (a comment always terminates its line).
type Comment struct{ tokenElement }

func (*Comment) IsMetadata() bool { return true }

// NewComment validates and wraps toks as a Comment element.
func NewComment(toks []lexer.Token) (*Comment, error) {
	if len(toks) != 2 || toks[0].Type != lexer.TypeComment || toks[1].Type != lexer.TypeNewline {
		return nil, &InvalidElementError{Reason: "Comment element needs exactly a comment token followed by a newline token"}
	}
	return &Comment{tokenElement{toks}}, nil
}

// Text returns the comment's text, including the leading '#' but excluding
// the trailing newline.
func (c *Comment) Text() string { return string(c.toks[0].Raw) }

// Punctuation wraps a single operator token: one of `,` `=` `.` `[` `]`
// `[[` `]]` `{` `}`.
type Punctuation struct{ tokenElement }

func (*Punctuation) IsMetadata() bool { return true }

// NewPunctuation validates and wraps a single operator token.
func NewPunctuation(tok lexer.Token) (*Punctuation, error) {
	if tok.Kind() != lexer.KindOperator {
		return nil, &InvalidElementError{Reason: "Punctuation element requires a single operator token"}
	}
	return &Punctuation{tokenElement{[]lexer.Token{tok}}}, nil
}

// Token returns the single operator token this element wraps.
func (p *Punctuation) Token() lexer.Token { return p.toks[0] }

// Type returns the operator token's TokenType.
func (p *Punctuation) Type() lexer.TokenType { return p.toks[0].Type }
