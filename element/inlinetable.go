package element

import (
	"fmt"
	"strings"

	"github.com/oarkflow/tomldoc/lexer"
)

// InlineTable is a dict-like container: '{' key '=' value (',' key '=' value)* '}'.
type InlineTable struct {
	sub []Element
}

func (t *InlineTable) IsMetadata() bool { return false }

func (t *InlineTable) Serialized() string {
	var b strings.Builder
	for _, e := range t.sub {
		b.WriteString(e.Serialized())
	}
	return b.String()
}

// NewInlineTable validates that sub opens with '{' and closes with '}'.
func NewInlineTable(sub []Element) (*InlineTable, error) {
	if len(sub) < 2 || !isPunctuation(sub[0], lexer.TypeCurlyLeft) || !isPunctuation(sub[len(sub)-1], lexer.TypeCurlyRight) {
		return nil, &InvalidElementError{Reason: "InlineTable element must open with '{' and close with '}'"}
	}
	return &InlineTable{sub: sub}, nil
}

// kvPair is a (key index, value index) pair into the non-metadata
// sub-elements of an InlineTable, mirroring the Python implementation's
// _enumerate_items pairing of consecutive non-metadata elements.
type kvPair struct {
	keyIdx, valIdx int
}

func (t *InlineTable) pairs() []kvPair {
	idx := enumerateNonMetadata(t.sub)
	var out []kvPair
	for i := 0; i+1 < len(idx); i += 2 {
		out = append(out, kvPair{idx[i], idx[i+1]})
	}
	return out
}

// Len returns the number of key-value pairs.
func (t *InlineTable) Len() int { return len(t.pairs()) }

// Keys returns the table's keys, in source order.
func (t *InlineTable) Keys() ([]string, error) {
	pairs := t.pairs()
	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		k, err := keyText(t.sub[p.keyIdx])
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func keyText(e Element) (string, error) {
	a, ok := e.(*Atomic)
	if !ok {
		return "", &InvalidElementError{Reason: "table key must be an atomic element"}
	}
	v, err := a.Value()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func (t *InlineTable) find(key string) (kvPair, bool, error) {
	for _, p := range t.pairs() {
		k, err := keyText(t.sub[p.keyIdx])
		if err != nil {
			return kvPair{}, false, err
		}
		if k == key {
			return p, true, nil
		}
	}
	return kvPair{}, false, nil
}

// Contains reports whether key is present.
func (t *InlineTable) Contains(key string) (bool, error) {
	_, ok, err := t.find(key)
	return ok, err
}

// Get returns the element bound to key.
func (t *InlineTable) Get(key string) (Element, error) {
	p, ok, err := t.find(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("key %q not found", key)
	}
	return t.sub[p.valIdx], nil
}

// Set replaces the value bound to key, or appends a fresh "key = value"
// entry (preceded by a ", " separator if the table is non-empty) when the
// key does not already exist.
func (t *InlineTable) Set(key string, valueElem Element) error {
	p, ok, err := t.find(key)
	if err != nil {
		return err
	}
	if ok {
		t.sub[p.valIdx] = valueElem
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
	newEntry := []Element{keyElem, assign, valueElem}

	if t.Len() > 0 {
		commaElem, err := NewPunctuationElement(lexer.TypeComma)
		if err != nil {
			return err
		}
		ws, err := NewWhitespace([]lexer.Token{{Raw: []byte(" "), Type: lexer.TypeWhitespace}})
		if err != nil {
			return err
		}
		newEntry = append([]Element{commaElem, ws}, newEntry...)
	}

	insertAt := findClosingCurlyBracket(t.sub)
	if pairs := t.pairs(); len(pairs) > 0 {
		// Right after the last value, so spacing before '}' stays there.
		insertAt = pairs[len(pairs)-1].valIdx + 1
	}
	t.sub = spliceElements(t.sub, insertAt, insertAt, newEntry)
	return nil
}

// Delete removes key and its value, folding away the associated comma.
func (t *InlineTable) Delete(key string) error {
	p, ok, err := t.find(key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}

	begin, end := p.keyIdx, p.valIdx+1

	preceding := findPrecedingComma(t.sub, begin)
	foundPreceding := preceding != NotFound
	if foundPreceding {
		begin = preceding
	}

	following := findFollowingComma(t.sub, p.valIdx)
	switch {
	case following != NotFound && !foundPreceding:
		end = findFollowingNonMetadata(t.sub, following)
	case following != NotFound:
		end = following
	default:
		end = findClosingCurlyBracket(t.sub)
	}

	t.sub = append(append([]Element{}, t.sub[:begin]...), t.sub[end:]...)
	return nil
}
