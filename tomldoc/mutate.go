package tomldoc

import (
	"sort"
	"strings"

	"github.com/oarkflow/tomldoc/element"
	"github.com/oarkflow/tomldoc/lexer"
)

// Set binds value to the dotted name. If the enclosing table does not
// exist yet (array-of-tables segments are never created here — use
// AppendTableEntry for those), a "[a.b]" header and body for it are
// appended at the end of the document once value has been converted;
// no headers are written for its parent tables. An existing key's value
// is replaced in place, preserving its surrounding formatting; a new key
// is appended to its table, copying the indentation of that table's last
// existing line.
func (f *File) Set(name []string, value any) error {
	if len(name) == 0 {
		return &KeyNotFoundError{Name: ""}
	}
	valElem, err := valueToElement(value)
	if err != nil {
		return err
	}
	body, err := f.ensureTableBody(name[:len(name)-1])
	if err != nil {
		return err
	}
	return body.Set(name[len(name)-1], valElem)
}

// Delete removes the key named by the last segment of name from its
// enclosing table, leaving the rest of the document untouched. name must
// resolve to an existing key within an existing table.
func (f *File) Delete(name []string) error {
	if len(name) == 0 {
		return &KeyNotFoundError{Name: ""}
	}
	parent, ok := f.lookupExact(name[:len(name)-1])
	if !ok || parent.body == nil {
		return &KeyNotFoundError{Name: strings.Join(name, ".")}
	}
	return parent.body.Delete(name[len(name)-1])
}

// ensureTableBody returns the TableBody backing the table named by path,
// materializing a fresh "[a.b.c]" header and empty body at the end of the
// document if it doesn't exist yet. An empty path refers to the anonymous
// table, materialized (if missing) by prepending an empty body rather
// than appending a header.
func (f *File) ensureTableBody(path []string) (*element.TableBody, error) {
	if len(path) == 0 {
		if f.root.body == nil {
			body := element.NewTableBody(nil)
			f.elems = append([]element.Element{body}, f.elems...)
			f.root.body = body
		}
		return f.root.body, nil
	}

	cur := f.root
	for _, seg := range path {
		child, ok := cur.children[seg]
		if !ok {
			child = newNameNode()
			cur.children[seg] = child
		}
		cur = child
	}

	if cur.body == nil {
		header, err := buildTableHeaderElement(path, false)
		if err != nil {
			return nil, err
		}
		body := element.NewTableBody(nil)
		trailingBlank, err := element.NewNewlineElement()
		if err != nil {
			return nil, err
		}
		f.elems = append(f.elems, header, body, trailingBlank)
		cur.body = body
	}
	return cur.body, nil
}

// AppendTableEntry appends a new "[[name]]" occurrence at the end of the
// document, populated from values (applied in sorted key order for
// deterministic output), and registers it as a new entry of the array of
// tables at name.
func (f *File) AppendTableEntry(name []string, values map[string]any) error {
	if len(name) == 0 {
		return &KeyNotFoundError{Name: ""}
	}
	header, err := buildTableHeaderElement(name, true)
	if err != nil {
		return err
	}
	body := element.NewTableBody(nil)
	trailingBlank, err := element.NewNewlineElement()
	if err != nil {
		return err
	}
	f.elems = append(f.elems, header, body, trailingBlank)

	cur := f.root
	for _, seg := range name[:len(name)-1] {
		child, ok := cur.children[seg]
		if !ok {
			child = newNameNode()
			cur.children[seg] = child
		}
		cur = child
	}
	last := name[len(name)-1]
	child, ok := cur.children[last]
	if !ok {
		child = newNameNode()
		cur.children[last] = child
	}
	entry := newNameNode()
	entry.body = body
	child.arrayEntries = append(child.arrayEntries, entry)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		elem, err := valueToElement(values[k])
		if err != nil {
			return err
		}
		if err := body.Set(k, elem); err != nil {
			return err
		}
	}
	return nil
}

func buildTableHeaderElement(names []string, isArray bool) (*element.TableHeader, error) {
	openType, closeType := lexer.TypeSquareLeft, lexer.TypeSquareRight
	if isArray {
		openType, closeType = lexer.TypeDoubleSquareLeft, lexer.TypeDoubleSquareRight
	}

	open, err := element.NewPunctuationElement(openType)
	if err != nil {
		return nil, err
	}
	sub := []element.Element{open}

	for i, n := range names {
		if i > 0 {
			dot, err := element.NewPunctuationElement(lexer.TypeDot)
			if err != nil {
				return nil, err
			}
			sub = append(sub, dot)
		}
		tok, err := element.CreatePrimitiveToken(n)
		if err != nil {
			return nil, err
		}
		atom, err := element.NewAtomic(tok)
		if err != nil {
			return nil, err
		}
		sub = append(sub, atom)
	}

	closeElem, err := element.NewPunctuationElement(closeType)
	if err != nil {
		return nil, err
	}
	sub = append(sub, closeElem)

	nl, err := element.NewNewlineElement()
	if err != nil {
		return nil, err
	}
	sub = append(sub, nl)

	return element.NewTableHeader(sub)
}

// valueToElement converts a native Go value (scalar, []any, or
// map[string]any) into the Element it would be represented by in source
// text, for use as a fresh Set/Append argument.
func valueToElement(value any) (element.Element, error) {
	switch v := value.(type) {
	case []any:
		return buildArrayElement(v)
	case map[string]any:
		return buildInlineTableElement(v)
	default:
		return element.CreateAtomicElement(value)
	}
}

func buildArrayElement(items []any) (*element.Array, error) {
	open, err := element.NewPunctuationElement(lexer.TypeSquareLeft)
	if err != nil {
		return nil, err
	}
	closeElem, err := element.NewPunctuationElement(lexer.TypeSquareRight)
	if err != nil {
		return nil, err
	}
	arr, err := element.NewArray([]element.Element{open, closeElem})
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		elem, err := valueToElement(it)
		if err != nil {
			return nil, err
		}
		if err := arr.Append(elem); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

func buildInlineTableElement(m map[string]any) (*element.InlineTable, error) {
	open, err := element.NewPunctuationElement(lexer.TypeCurlyLeft)
	if err != nil {
		return nil, err
	}
	closeElem, err := element.NewPunctuationElement(lexer.TypeCurlyRight)
	if err != nil {
		return nil, err
	}
	tbl, err := element.NewInlineTable([]element.Element{open, closeElem})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		elem, err := valueToElement(m[k])
		if err != nil {
			return nil, err
		}
		if err := tbl.Set(k, elem); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
