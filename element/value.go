package element

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/oarkflow/tomldoc/lexer"
)

// ValueKind discriminates the arms of Value, realizing Design Note §9's
// sum type Value = Scalar | Array | Table | InlineTable | AoT for the
// scalar side (the container arms live in their own Go types: *Array,
// *InlineTable, *TableBody).
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindInt64
	KindBigDecimal
	KindFloat64
	KindBool
	KindDate
)

// Value is the deserialized form of an atomic token: exactly one of its
// fields is meaningful, selected by Kind.
type Value struct {
	kind  ValueKind
	str   string
	i64   int64
	big   *apd.Decimal
	f64   float64
	boo   bool
	date  time.Time
}

func (v Value) Kind() ValueKind     { return v.kind }
func (v Value) String() string      { return v.str }
func (v Value) Int64() int64        { return v.i64 }
func (v Value) BigDecimal() *apd.Decimal { return v.big }
func (v Value) Float64() float64    { return v.f64 }
func (v Value) Bool() bool          { return v.boo }
func (v Value) Date() time.Time     { return v.date }

func stringValue(s string) Value { return Value{kind: KindString, str: s} }
func intValue(i int64) Value     { return Value{kind: KindInt64, i64: i} }
func bigValue(d *apd.Decimal) Value { return Value{kind: KindBigDecimal, big: d} }
func floatValue(f float64) Value { return Value{kind: KindFloat64, f64: f} }
func boolValue(b bool) Value     { return Value{kind: KindBool, boo: b} }
func dateValue(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Deserialize projects a single token to its primitive Value, per §4.4 of
// the spec. Strings are unescaped here; numerics are parsed with
// underscores stripped; dates are parsed as a best-effort RFC-3339 layout
// matching the subset the lexer recognizes.
func Deserialize(tok lexer.Token) (Value, error) {
	switch tok.Type {
	case lexer.TypeBoolean:
		return boolValue(string(tok.Raw) == "true"), nil
	case lexer.TypeInteger:
		return deserializeInteger(tok)
	case lexer.TypeFloat:
		return deserializeFloat(tok)
	case lexer.TypeDate:
		return deserializeDate(tok)
	case lexer.TypeBareString:
		return stringValue(string(tok.Raw)), nil
	case lexer.TypeBasicString:
		s, err := unescapeBasic(string(tok.Raw[1 : len(tok.Raw)-1]))
		if err != nil {
			return Value{}, err
		}
		return stringValue(s), nil
	case lexer.TypeLiteralString:
		return stringValue(string(tok.Raw[1 : len(tok.Raw)-1])), nil
	case lexer.TypeMultilineBasicString:
		s, err := unescapeMultilineBasic(string(tok.Raw[3 : len(tok.Raw)-3]))
		if err != nil {
			return Value{}, err
		}
		return stringValue(s), nil
	case lexer.TypeMultilineLiteralString:
		body := string(tok.Raw[3 : len(tok.Raw)-3])
		body = strings.TrimPrefix(body, "\n")
		return stringValue(body), nil
	default:
		return Value{}, &InvalidElementError{Reason: fmt.Sprintf("cannot deserialize token of type %s", tok.Type)}
	}
}

func deserializeInteger(tok lexer.Token) (Value, error) {
	clean := strings.ReplaceAll(string(tok.Raw), "_", "")
	if i, err := strconv.ParseInt(clean, 10, 64); err == nil {
		return intValue(i), nil
	}
	d, _, err := apd.NewFromString(clean)
	if err != nil {
		return Value{}, fmt.Errorf("invalid integer literal %q: %w", tok.Raw, err)
	}
	return bigValue(d), nil
}

func deserializeFloat(tok lexer.Token) (Value, error) {
	clean := strings.ReplaceAll(string(tok.Raw), "_", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		d, _, derr := apd.NewFromString(clean)
		if derr != nil {
			return Value{}, fmt.Errorf("invalid float literal %q: %w", tok.Raw, err)
		}
		return bigValue(d), nil
	}
	return floatValue(f), nil
}

// rfc3339Layouts covers the subset of RFC 3339 the lexer's matchDate
// recognizes: date-only, full datetime with optional fractional seconds,
// and with either a 'Z' or a numeric UTC offset.
var rfc3339Layouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
}

func deserializeDate(tok lexer.Token) (Value, error) {
	raw := string(tok.Raw)
	normalized := strings.Replace(raw, " ", "T", 1)
	normalized = strings.Replace(normalized, "t", "T", 1)
	var lastErr error
	for _, layout := range rfc3339Layouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return dateValue(t), nil
		} else {
			lastErr = err
		}
	}
	return Value{}, fmt.Errorf("invalid date/time literal %q: %w", raw, lastErr)
}

// unescapeBasic processes the backslash escapes of a single-line basic
// string body: \" \\ \t \n \r \b \f \uXXXX \UXXXXXXXX. Unknown escapes error,
// per §4.4 and scenario S6.
func unescapeBasic(body string) (string, error) {
	var b strings.Builder
	r := []rune(body)
	for i := 0; i < len(r); i++ {
		c := r[i]
		if c != '\\' {
			b.WriteRune(c)
			continue
		}
		if i+1 >= len(r) {
			return "", fmt.Errorf("dangling escape at end of string")
		}
		i++
		n, err := decodeEscape(r, i)
		if err != nil {
			return "", err
		}
		b.WriteRune(n.value)
		i = n.nextIndex - 1
	}
	return b.String(), nil
}

type escapeResult struct {
	value     rune
	nextIndex int
}

func decodeEscape(r []rune, i int) (escapeResult, error) {
	switch r[i] {
	case '"':
		return escapeResult{'"', i + 1}, nil
	case '\\':
		return escapeResult{'\\', i + 1}, nil
	case 't':
		return escapeResult{'\t', i + 1}, nil
	case 'n':
		return escapeResult{'\n', i + 1}, nil
	case 'r':
		return escapeResult{'\r', i + 1}, nil
	case 'b':
		return escapeResult{'\b', i + 1}, nil
	case 'f':
		return escapeResult{'\f', i + 1}, nil
	case 'u':
		return decodeUnicodeEscape(r, i+1, 4)
	case 'U':
		return decodeUnicodeEscape(r, i+1, 8)
	default:
		return escapeResult{}, fmt.Errorf("unknown escape sequence \\%c", r[i])
	}
}

func decodeUnicodeEscape(r []rune, start, width int) (escapeResult, error) {
	if start+width > len(r) {
		return escapeResult{}, fmt.Errorf("truncated unicode escape")
	}
	hex := string(r[start : start+width])
	v, err := strconv.ParseInt(hex, 16, 64)
	if err != nil {
		return escapeResult{}, fmt.Errorf("invalid unicode escape \\u%s: %w", hex, err)
	}
	return escapeResult{rune(v), start + width}, nil
}

// unescapeMultilineBasic processes a multiline basic string body: the
// opening-newline trim, backslash escapes as in unescapeBasic, plus
// backslash-at-end-of-line folding (a trailing '\' followed by a run of
// whitespace/newlines is elided entirely).
func unescapeMultilineBasic(body string) (string, error) {
	body = strings.TrimPrefix(body, "\n")
	var b strings.Builder
	r := []rune(body)
	for i := 0; i < len(r); i++ {
		c := r[i]
		if c != '\\' {
			b.WriteRune(c)
			continue
		}
		if i+1 >= len(r) {
			return "", fmt.Errorf("dangling escape at end of string")
		}
		// Line-ending backslash: fold it and all following whitespace.
		j := i + 1
		for j < len(r) && (r[j] == ' ' || r[j] == '\t' || r[j] == '\n' || r[j] == '\r') {
			j++
		}
		if j > i+1 && containsNewline(r[i+1:j]) {
			i = j - 1
			continue
		}
		n, err := decodeEscape(r, i+1)
		if err != nil {
			return "", err
		}
		b.WriteRune(n.value)
		i = n.nextIndex - 1
	}
	return b.String(), nil
}

func containsNewline(r []rune) bool {
	for _, c := range r {
		if c == '\n' {
			return true
		}
	}
	return false
}
