package element

import (
	"fmt"
	"strings"

	"github.com/oarkflow/tomldoc/lexer"
)

// TableBody is a dict-like container of key '=' value lines: either the
// anonymous table at the top of a file, or the body following a
// TableHeader. Unlike InlineTable, entries are newline-terminated rather
// than comma-separated, and may be interspersed with blank lines and
// comments.
type TableBody struct {
	sub []Element
}

func (*TableBody) IsMetadata() bool { return false }

func (b *TableBody) Serialized() string {
	var out strings.Builder
	for _, e := range b.sub {
		out.WriteString(e.Serialized())
	}
	return out.String()
}

// NewTableBody wraps sub as a TableBody with no shape validation beyond
// "container of elements" — its lines are validated by the grammar that
// constructs it, not by this constructor.
func NewTableBody(sub []Element) *TableBody {
	return &TableBody{sub: sub}
}

func (b *TableBody) pairs() []kvPair {
	idx := enumerateNonMetadata(b.sub)
	var out []kvPair
	for i := 0; i+1 < len(idx); i += 2 {
		out = append(out, kvPair{idx[i], idx[i+1]})
	}
	return out
}

// Len returns the number of key-value lines.
func (b *TableBody) Len() int { return len(b.pairs()) }

// Keys returns the body's keys, in source order.
func (b *TableBody) Keys() ([]string, error) {
	pairs := b.pairs()
	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		k, err := keyText(b.sub[p.keyIdx])
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (b *TableBody) find(key string) (kvPair, bool, error) {
	for _, p := range b.pairs() {
		k, err := keyText(b.sub[p.keyIdx])
		if err != nil {
			return kvPair{}, false, err
		}
		if k == key {
			return p, true, nil
		}
	}
	return kvPair{}, false, nil
}

// Contains reports whether key is bound in this body.
func (b *TableBody) Contains(key string) (bool, error) {
	_, ok, err := b.find(key)
	return ok, err
}

// Get returns the element bound to key.
func (b *TableBody) Get(key string) (Element, error) {
	p, ok, err := b.find(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("key %q not found", key)
	}
	return b.sub[p.valIdx], nil
}

// indentationOf returns the whitespace element immediately preceding index,
// if any, so a newly inserted line can copy it.
func (b *TableBody) indentationOf(index int) (Element, bool) {
	if index-1 < 0 {
		return nil, false
	}
	if ws, ok := b.sub[index-1].(*Whitespace); ok {
		return ws, true
	}
	return nil, false
}

// Set replaces the value bound to key, or appends a fresh "key = value\n"
// line — copying the indentation of the last existing line, if any — when
// the key does not already exist.
func (b *TableBody) Set(key string, valueElem Element) error {
	p, ok, err := b.find(key)
	if err != nil {
		return err
	}
	if ok {
		b.sub[p.valIdx] = valueElem
		return nil
	}

	keyTok, err := CreatePrimitiveToken(key)
	if err != nil {
		return err
	}
	keyElem, err := NewAtomic(keyTok)
	if err != nil {
		return err
	}
	assign, err := NewPunctuationElement(lexer.TypeAssign)
	if err != nil {
		return err
	}
	newline, err := NewNewlineElement()
	if err != nil {
		return err
	}

	newLine := []Element{keyElem, assign, valueElem, newline}
	insertAt := len(b.sub)
	pairs := b.pairs()
	if len(pairs) > 0 {
		last := pairs[len(pairs)-1]
		if indent, found := b.indentationOf(last.keyIdx); found {
			wsCopy, err := NewWhitespace(append([]lexer.Token{}, indent.(*Whitespace).Tokens()...))
			if err != nil {
				return err
			}
			newLine = append([]Element{wsCopy}, newLine...)
		}
		// Insert right after the newline terminating the last existing
		// line, so any blank lines or comments that trail it in the
		// source stay after the freshly appended line instead of before.
		if nlIdx := findFollowingNewline(b.sub, last.valIdx); nlIdx != NotFound {
			insertAt = nlIdx + 1
			// Consecutive newlines lex as one token; split it so that the
			// blank lines it carries move after the new line.
			raw := b.sub[nlIdx].Serialized()
			if cut := strings.IndexByte(raw, '\n') + 1; cut > 0 && cut < len(raw) {
				first, err := NewNewline([]lexer.Token{{Raw: []byte(raw[:cut]), Type: lexer.TypeNewline}})
				if err != nil {
					return err
				}
				rest, err := NewNewline([]lexer.Token{{Raw: []byte(raw[cut:]), Type: lexer.TypeNewline}})
				if err != nil {
					return err
				}
				b.sub[nlIdx] = first
				newLine = append(newLine, rest)
			}
		}
	}

	b.sub = spliceElements(b.sub, insertAt, insertAt, newLine)
	return nil
}

// Delete removes key's line in its entirety: the indentation that preceded
// it, the pair itself, any trailing whitespace, and the newline or trailing
// comment that terminated it. Comments on other lines are left in place.
func (b *TableBody) Delete(key string) error {
	p, ok, err := b.find(key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}

	begin, end := p.keyIdx, p.valIdx+1
	if indent, found := b.indentationOf(begin); found {
		_ = indent
		begin--
	}
	if end < len(b.sub) {
		if _, isWS := b.sub[end].(*Whitespace); isWS {
			end++
		}
	}
	if end < len(b.sub) {
		switch b.sub[end].(type) {
		case *Newline, *Comment:
			end++
		}
	}

	b.sub = append(append([]Element{}, b.sub[:begin]...), b.sub[end:]...)
	return nil
}

// Items returns the raw (key, value-element) pairs in source order.
func (b *TableBody) Items() ([]KV, error) {
	pairs := b.pairs()
	out := make([]KV, 0, len(pairs))
	for _, p := range pairs {
		k, err := keyText(b.sub[p.keyIdx])
		if err != nil {
			return nil, err
		}
		out = append(out, KV{Key: k, Value: b.sub[p.valIdx]})
	}
	return out, nil
}

// KV is a single key/value-element pair as returned by TableBody.Items.
type KV struct {
	Key   string
	Value Element
}
