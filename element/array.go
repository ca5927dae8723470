package element

import (
	"fmt"
	"strings"

	"github.com/oarkflow/tomldoc/lexer"
)

// Array is a sequence-like container: '[' entry (',' entry)* ']', where
// each entry is itself an Element (an Atomic, or a nested Array/InlineTable
// for arrays of arrays/tables). Metadata sub-elements (brackets, commas,
// whitespace, newlines, comments) are preserved but skipped by the
// list-like interface below.
type Array struct {
	sub []Element
}

func (a *Array) IsMetadata() bool { return false }

func (a *Array) Serialized() string {
	var b strings.Builder
	for _, e := range a.sub {
		b.WriteString(e.Serialized())
	}
	return b.String()
}

// NewArray validates that sub opens with '[' and closes with ']', and wraps
// it as an Array element.
func NewArray(sub []Element) (*Array, error) {
	if len(sub) < 2 || !isPunctuation(sub[0], lexer.TypeSquareLeft) || !isPunctuation(sub[len(sub)-1], lexer.TypeSquareRight) {
		return nil, &InvalidElementError{Reason: "Array element must open with '[' and close with ']'"}
	}
	return &Array{sub: sub}, nil
}

// entries returns the indexes into sub of the non-metadata entries, in
// order.
func (a *Array) entries() []int { return enumerateNonMetadata(a.sub) }

// Len returns the number of entries in the array.
func (a *Array) Len() int { return len(a.entries()) }

// Get returns the element of the ith entry: an *Atomic, an *Array, or an
// *InlineTable, depending on the entry's own kind.
func (a *Array) Get(i int) (Element, error) {
	idx := a.entries()
	if i < 0 || i >= len(idx) {
		return nil, fmt.Errorf("array index %d out of range (len %d)", i, len(idx))
	}
	return a.sub[idx[i]], nil
}

// Set replaces the ith entry's element in place.
func (a *Array) Set(i int, elem Element) error {
	idx := a.entries()
	if i < 0 || i >= len(idx) {
		return fmt.Errorf("array index %d out of range (len %d)", i, len(idx))
	}
	a.sub[idx[i]] = elem
	return nil
}

// Append inserts elem as a new last entry, synthesizing a preceding
// ", " separator when the array is already non-empty.
func (a *Array) Append(elem Element) error {
	closing := findClosingSquareBracket(a.sub)
	var newEntry []Element
	if a.Len() > 0 {
		commaElem, err := NewPunctuationElement(lexer.TypeComma)
		if err != nil {
			return err
		}
		ws, err := NewWhitespace([]lexer.Token{{Raw: []byte(" "), Type: lexer.TypeWhitespace}})
		if err != nil {
			return err
		}
		newEntry = append(newEntry, commaElem, ws)
	}
	newEntry = append(newEntry, elem)
	a.sub = spliceElements(a.sub, closing, closing, newEntry)
	return nil
}

// Delete removes the ith entry, folding away its associated comma: the
// preceding comma is removed if present, otherwise the following one is.
func (a *Array) Delete(i int) error {
	idx := a.entries()
	if i < 0 || i >= len(idx) {
		return fmt.Errorf("array index %d out of range (len %d)", i, len(idx))
	}
	valueIdx := idx[i]
	begin, end := valueIdx, valueIdx+1

	preceding := findPrecedingComma(a.sub, valueIdx)
	foundPreceding := preceding != NotFound
	if foundPreceding {
		begin = preceding
	}

	following := findFollowingComma(a.sub, valueIdx)
	switch {
	case following != NotFound && !foundPreceding:
		end = findFollowingNonMetadata(a.sub, following)
	case following != NotFound:
		end = following
	default:
		end = findClosingSquareBracket(a.sub)
	}

	a.sub = append(append([]Element{}, a.sub[:begin]...), a.sub[end:]...)
	return nil
}

// spliceElements inserts insert into elems between indexes [from, to).
func spliceElements(elems []Element, from, to int, insert []Element) []Element {
	out := make([]Element, 0, len(elems)+len(insert))
	out = append(out, elems[:from]...)
	out = append(out, insert...)
	out = append(out, elems[to:]...)
	return out
}
