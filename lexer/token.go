// Package lexer provides the maximal-munch tokenizer for TOML source text.
// Every byte of the input is accounted for by exactly one token: unlike a
// typical lexer it does not discard whitespace, newlines, or comments —
// those are trivia the rest of the pipeline needs in order to reproduce the
// source byte-for-byte.
package lexer

// Kind is the coarse classification of a token, independent of its precise
// TokenType. Several TokenTypes can share a Kind (e.g. all five string
// types — bare, basic, literal and the two multiline forms — share
// KindString).
type Kind uint8

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindDate
	KindOperator
	KindWhitespace
	KindNewline
	KindComment
)

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var kindNames = [...]string{
	KindString:     "string",
	KindInteger:    "integer",
	KindFloat:      "float",
	KindBoolean:    "boolean",
	KindDate:       "date",
	KindOperator:   "operator",
	KindWhitespace: "whitespace",
	KindNewline:    "newline",
	KindComment:    "comment",
}

// TokenType identifies the precise lexical category of a token. The
// enumeration is closed: every recognizer in the lexer produces one of
// these, and every consumer downstream (element construction, the parser)
// switches exhaustively over this set.
type TokenType uint8

const (
	// Strings
	TypeBareString TokenType = iota
	TypeBasicString
	TypeLiteralString
	TypeMultilineBasicString
	TypeMultilineLiteralString

	// Numerics and literals
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeDate

	// Operators / punctuation
	TypeComma
	TypeAssign
	TypeDot
	TypeSquareLeft
	TypeSquareRight
	TypeDoubleSquareLeft
	TypeDoubleSquareRight
	TypeCurlyLeft
	TypeCurlyRight

	// Trivia
	TypeWhitespace
	TypeNewline
	TypeComment
)

// priority ties break maximal-munch matches: lower wins. Values are taken
// from the richest of the reference lexer's historical token tables —
// booleans and bare keys must be distinguished by priority since "true" and
// "false" are also valid bare keys of the same length.
var priorities = [...]uint8{
	TypeBoolean:                0,
	TypeInteger:                0,
	TypeComma:                  0,
	TypeAssign:                 0,
	TypeSquareLeft:             0,
	TypeSquareRight:            0,
	TypeDoubleSquareLeft:       0,
	TypeDoubleSquareRight:      0,
	TypeCurlyLeft:              0,
	TypeCurlyRight:             0,
	TypeFloat:                  1,
	TypeDate:                   40,
	TypeDot:                    40,
	TypeBareString:             50,
	TypeBasicString:            90,
	TypeLiteralString:          90,
	TypeMultilineBasicString:   90,
	TypeMultilineLiteralString: 90,
	TypeNewline:                91,
	TypeWhitespace:             93,
	TypeComment:                95,
}

// Priority returns the maximal-munch tie-break priority of t: on a length
// tie between two candidate matches, the lower priority wins.
func (t TokenType) Priority() uint8 {
	if int(t) < len(priorities) {
		return priorities[t]
	}
	return 255
}

var kinds = [...]Kind{
	TypeBareString:             KindString,
	TypeBasicString:            KindString,
	TypeLiteralString:          KindString,
	TypeMultilineBasicString:   KindString,
	TypeMultilineLiteralString: KindString,
	TypeInteger:                KindInteger,
	TypeFloat:                  KindFloat,
	TypeBoolean:                KindBoolean,
	TypeDate:                   KindDate,
	TypeComma:                  KindOperator,
	TypeAssign:                 KindOperator,
	TypeDot:                    KindOperator,
	TypeSquareLeft:             KindOperator,
	TypeSquareRight:            KindOperator,
	TypeDoubleSquareLeft:       KindOperator,
	TypeDoubleSquareRight:      KindOperator,
	TypeCurlyLeft:              KindOperator,
	TypeCurlyRight:             KindOperator,
	TypeWhitespace:             KindWhitespace,
	TypeNewline:                KindNewline,
	TypeComment:                KindComment,
}

// Kind returns the coarse classification of t.
func (t TokenType) Kind() Kind {
	if int(t) < len(kinds) {
		return kinds[t]
	}
	return KindString
}

// IsString reports whether t is one of the five string types.
func (t TokenType) IsString() bool { return t.Kind() == KindString }

// IsMetadata reports whether a token of this type is trivia that navigation
// skips over (whitespace, newline, comment, punctuation) rather than an
// atomic value that participates in the element tree's non-trivial
// structure.
func (t TokenType) IsMetadata() bool {
	switch t {
	case TypeWhitespace, TypeNewline, TypeComment,
		TypeComma, TypeAssign, TypeDot,
		TypeSquareLeft, TypeSquareRight,
		TypeDoubleSquareLeft, TypeDoubleSquareRight,
		TypeCurlyLeft, TypeCurlyRight:
		return true
	default:
		return false
	}
}

func (t TokenType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN"
}

var typeNames = [...]string{
	TypeBareString:             "bare-string",
	TypeBasicString:            "basic-string",
	TypeLiteralString:          "literal-string",
	TypeMultilineBasicString:   "multiline-basic-string",
	TypeMultilineLiteralString: "multiline-literal-string",
	TypeInteger:                "integer",
	TypeFloat:                  "float",
	TypeBoolean:                "boolean",
	TypeDate:                   "date",
	TypeComma:                  ",",
	TypeAssign:                 "=",
	TypeDot:                    ".",
	TypeSquareLeft:             "[",
	TypeSquareRight:            "]",
	TypeDoubleSquareLeft:       "[[",
	TypeDoubleSquareRight:      "]]",
	TypeCurlyLeft:              "{",
	TypeCurlyRight:             "}",
	TypeWhitespace:             "whitespace",
	TypeNewline:                "newline",
	TypeComment:                "comment",
}

// Token is an immutable, positioned lexeme. Raw is the exact slice of the
// source that produced it — never canonicalized — so that concatenating
// every token's Raw reproduces the (newline-normalized) input exactly.
type Token struct {
	Raw  []byte
	Type TokenType
	Pos  int32
	Line uint32
	Col  uint32
}

// Kind is a convenience accessor for Type.Kind().
func (t Token) Kind() Kind { return t.Type.Kind() }

// String returns the exact source text of the token.
func (t Token) String() string { return string(t.Raw) }
