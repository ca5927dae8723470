package element

import (
	"strings"

	"github.com/oarkflow/tomldoc/lexer"
)

// TableHeader is a '[' name ('.' name)* ']' (or doubled-bracket array-of-
// tables) line, including its trailing whitespace and newline. It starts at
// the opening bracket: any indentation before it belongs to the preceding
// table body. It is not metadata: a TOMLFile's non-metadata children alternate
// table-header/table-body pairs, and a header carries the name that pair is
// indexed under.
type TableHeader struct {
	sub             []Element
	IsArrayOfTables bool
}

func (*TableHeader) IsMetadata() bool { return false }

func (h *TableHeader) Serialized() string {
	var b strings.Builder
	for _, e := range h.sub {
		b.WriteString(e.Serialized())
	}
	return b.String()
}

// NewTableHeader validates that sub opens with '[' (or '[[') and closes
// with ']' (or ']]') and wraps it as a TableHeader element.
func NewTableHeader(sub []Element) (*TableHeader, error) {
	if len(sub) < 3 {
		return nil, &InvalidElementError{Reason: "TableHeader element is too short"}
	}
	first, ok := sub[0].(*Punctuation)
	if !ok {
		return nil, &InvalidElementError{Reason: "TableHeader element must open with '[' or '[['"}
	}
	isArray := first.Type() == lexer.TypeDoubleSquareLeft
	if !isArray && first.Type() != lexer.TypeSquareLeft {
		return nil, &InvalidElementError{Reason: "TableHeader element must open with '[' or '[['"}
	}

	closeIdx := -1
	for i := len(sub) - 1; i >= 0; i-- {
		if p, ok := sub[i].(*Punctuation); ok {
			if isArray && p.Type() == lexer.TypeDoubleSquareRight {
				closeIdx = i
				break
			}
			if !isArray && p.Type() == lexer.TypeSquareRight {
				closeIdx = i
				break
			}
		}
		if _, ok := sub[i].(*Newline); ok {
			continue
		}
	}
	if closeIdx < 0 {
		return nil, &InvalidElementError{Reason: "TableHeader element is missing its closing bracket"}
	}

	return &TableHeader{sub: sub, IsArrayOfTables: isArray}, nil
}

// Names returns the header's dotted name segments, e.g. ["a", "b", "c"]
// for "[a.b.c]".
func (h *TableHeader) Names() ([]string, error) {
	var names []string
	for _, e := range h.sub {
		a, ok := e.(*Atomic)
		if !ok {
			continue
		}
		v, err := a.Value()
		if err != nil {
			return nil, err
		}
		names = append(names, v.String())
	}
	return names, nil
}

// IsNamed reports whether this header's full dotted name equals names.
func (h *TableHeader) IsNamed(names []string) bool {
	own, err := h.Names()
	if err != nil || len(own) != len(names) {
		return false
	}
	for i := range own {
		if own[i] != names[i] {
			return false
		}
	}
	return true
}

// HasNamePrefix reports whether prefix is a strict prefix of this header's
// dotted name (the header names a deeper table than prefix).
func (h *TableHeader) HasNamePrefix(prefix []string) bool {
	own, err := h.Names()
	if err != nil || len(prefix) >= len(own) {
		return false
	}
	for i := range prefix {
		if own[i] != prefix[i] {
			return false
		}
	}
	return true
}
