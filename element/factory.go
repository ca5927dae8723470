package element

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/oarkflow/tomldoc/lexer"
)

// NotPrimitiveError reports that a Go value given to the mutator has no
// TOML representation.
type NotPrimitiveError struct {
	Value any
}

func (e *NotPrimitiveError) Error() string {
	return fmt.Sprintf("%v of type %T is not a primitive TOML value", e.Value, e.Value)
}

var bareStringPattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// CreatePrimitiveToken converts a Go value into the single token that would
// represent it in source text. A string that fits the bare-key character set
// becomes a bare token, which is the form the mutator uses for keys and
// header names; string values go through CreateAtomicElement instead.
func CreatePrimitiveToken(value any) (lexer.Token, error) {
	switch v := value.(type) {
	case bool:
		raw := "false"
		if v {
			raw = "true"
		}
		return newToken(lexer.TypeBoolean, raw), nil
	case int:
		return newToken(lexer.TypeInteger, strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return newToken(lexer.TypeInteger, strconv.FormatInt(v, 10)), nil
	case *apd.Decimal:
		return newToken(lexer.TypeInteger, v.Text('f')), nil
	case float64:
		return newToken(lexer.TypeFloat, formatFloat(v)), nil
	case time.Time:
		return newToken(lexer.TypeDate, v.UTC().Format("2006-01-02T15:04:05Z")), nil
	case string:
		return createStringToken(v), nil
	default:
		return lexer.Token{}, &NotPrimitiveError{Value: value}
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func createStringToken(text string) lexer.Token {
	switch {
	case text == "":
		return newToken(lexer.TypeBasicString, `""`)
	case bareStringPattern.MatchString(text):
		return newToken(lexer.TypeBareString, text)
	case strings.Count(text, "\n") >= 2:
		return newToken(lexer.TypeMultilineBasicString, `"""`+strings.ReplaceAll(text, `"""`, `\"\"\"`)+`"""`)
	default:
		return newToken(lexer.TypeBasicString, `"`+escapeBasic(text)+`"`)
	}
}

func escapeBasic(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func newToken(typ lexer.TokenType, raw string) lexer.Token {
	return lexer.Token{Raw: []byte(raw), Type: typ}
}

// operatorTokens are the canonical, position-free tokens the mutator
// synthesizes when it inserts new punctuation (a comma before an appended
// array element, a fresh '=' for a new key-value pair, and so on).
var operatorTokens = map[lexer.TokenType]lexer.Token{
	lexer.TypeSquareLeft:        newToken(lexer.TypeSquareLeft, "["),
	lexer.TypeSquareRight:       newToken(lexer.TypeSquareRight, "]"),
	lexer.TypeDoubleSquareLeft:  newToken(lexer.TypeDoubleSquareLeft, "[["),
	lexer.TypeDoubleSquareRight: newToken(lexer.TypeDoubleSquareRight, "]]"),
	lexer.TypeCurlyLeft:         newToken(lexer.TypeCurlyLeft, "{"),
	lexer.TypeCurlyRight:        newToken(lexer.TypeCurlyRight, "}"),
	lexer.TypeComma:             newToken(lexer.TypeComma, ","),
	lexer.TypeAssign:            newToken(lexer.TypeAssign, " = "),
	lexer.TypeDot:               newToken(lexer.TypeDot, "."),
	lexer.TypeNewline:           newToken(lexer.TypeNewline, "\n"),
}

// OperatorToken returns the canonical token for typ, for synthesizing fresh
// punctuation during mutation.
func OperatorToken(typ lexer.TokenType) lexer.Token { return operatorTokens[typ] }

// NewPunctuationElement builds a Punctuation element wrapping the canonical
// token for typ.
func NewPunctuationElement(typ lexer.TokenType) (*Punctuation, error) {
	return NewPunctuation(OperatorToken(typ))
}

// NewNewlineElement builds a standalone single-newline element, used when
// the mutator appends a brand new line (e.g. a fresh key-value pair).
func NewNewlineElement() (*Newline, error) {
	return NewNewline([]lexer.Token{OperatorToken(lexer.TypeNewline)})
}

// CreateAtomicElement converts a Go value directly into an Atomic element,
// for mutator call sites that need the element rather than the bare token.
// A string value is always written quoted, never as a bare token.
func CreateAtomicElement(value any) (*Atomic, error) {
	tok, err := CreatePrimitiveToken(value)
	if err != nil {
		return nil, err
	}
	if tok.Type == lexer.TypeBareString {
		tok = newToken(lexer.TypeBasicString, `"`+string(tok.Raw)+`"`)
	}
	return NewAtomic(tok)
}
