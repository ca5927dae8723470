package tomldoc

import (
	"strings"

	"github.com/oarkflow/tomldoc/element"
	"github.com/oarkflow/tomldoc/lexer"
	"github.com/oarkflow/tomldoc/parser"
)

// File is a parsed, navigable, mutable, format-preserving TOML document.
// It is not safe for concurrent use.
type File struct {
	elems []element.Element
	root  *nameNode
}

// nameNode is one node of the navigable name tree built from a File's
// table headers: a non-owning index into the element sequence, not a
// copy of it. body holds the direct key-value table at this exact dotted
// name, if any; children holds sub-tables nested one name segment
// deeper; arrayEntries holds one nameNode per occurrence of an array of
// tables at this exact name, in source order. A node can have both body
// and children set simultaneously (a table that itself has sub-tables),
// mirroring the reference implementation's CascadeDict borrowing view —
// here realized as a single merged node instead of a separate borrowing
// wrapper type.
type nameNode struct {
	body         *element.TableBody
	arrayEntries []*nameNode
	children     map[string]*nameNode
}

func newNameNode() *nameNode { return &nameNode{children: map[string]*nameNode{}} }

// Parse lexes and parses text into a navigable File.
func Parse(text []byte) (*File, error) {
	toks, err := lexer.Tokenize(text)
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			return nil, &LexerError{Err: lexErr}
		}
		return nil, err
	}
	elems, err := parser.Parse(toks)
	if err != nil {
		return nil, &ParsingError{Err: err}
	}
	if err := validateShape(elems); err != nil {
		return nil, err
	}
	root, err := buildIndex(elems)
	if err != nil {
		return nil, err
	}
	return &File{elems: elems, root: root}, nil
}

// New returns an empty document with no keys or tables.
func New() *File {
	return &File{root: newNameNode()}
}

// validateShape checks that the non-metadata top-level elements are an
// optional TableBody followed by zero or more (TableHeader, TableBody)
// pairs — the grammar already guarantees this by construction, so this is
// a defensive re-check against hand-built element slices.
func validateShape(elems []element.Element) error {
	var nonMeta []element.Element
	for _, e := range elems {
		if !e.IsMetadata() {
			nonMeta = append(nonMeta, e)
		}
	}
	i := 0
	if len(nonMeta) > 0 {
		if _, ok := nonMeta[0].(*element.TableBody); ok {
			i = 1
		}
	}
	for i < len(nonMeta) {
		if _, ok := nonMeta[i].(*element.TableHeader); !ok {
			return &InvalidTOMLFileError{Reason: "expected a table header"}
		}
		i++
		if i >= len(nonMeta) {
			return &InvalidTOMLFileError{Reason: "table header not followed by a table body"}
		}
		if _, ok := nonMeta[i].(*element.TableBody); !ok {
			return &InvalidTOMLFileError{Reason: "table header not followed by a table body"}
		}
		i++
	}
	return nil
}

// buildIndex walks the flat element sequence once, constructing the name
// tree described on nameNode. It tracks, per dotted path, the most
// recently opened array-of-tables entry so that a header nested under an
// array of tables (e.g. "[items.meta]" following "[[items]]") attaches to
// the latest entry rather than a table shared by every entry.
func buildIndex(elems []element.Element) (*nameNode, error) {
	root := newNameNode()
	activeArrayEntry := map[string]*nameNode{}

	i := 0
	if len(elems) > 0 {
		if body, ok := elems[0].(*element.TableBody); ok {
			if err := checkDuplicateKeys(body); err != nil {
				return nil, err
			}
			root.body = body
			i = 1
		}
	}

	for i < len(elems) {
		header, ok := elems[i].(*element.TableHeader)
		if !ok {
			i++
			continue
		}
		if i+1 >= len(elems) {
			return nil, &InvalidTOMLFileError{Reason: "table header not followed by a table body"}
		}
		body, ok := elems[i+1].(*element.TableBody)
		if !ok {
			return nil, &InvalidTOMLFileError{Reason: "table header not followed by a table body"}
		}
		if err := checkDuplicateKeys(body); err != nil {
			return nil, err
		}
		names, err := header.Names()
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, &InvalidTOMLFileError{Reason: "table header has no name"}
		}

		container := resolveContainer(root, activeArrayEntry, names[:len(names)-1])
		last := names[len(names)-1]
		child, ok := container.children[last]
		if !ok {
			child = newNameNode()
			container.children[last] = child
		}

		fullPath := strings.Join(names, ".")
		if header.IsArrayOfTables {
			entry := newNameNode()
			entry.body = body
			child.arrayEntries = append(child.arrayEntries, entry)
			activeArrayEntry[fullPath] = entry
		} else {
			if child.body != nil {
				return nil, &DuplicateTablesError{Name: fullPath}
			}
			child.body = body
			delete(activeArrayEntry, fullPath)
		}

		i += 2
	}

	return root, nil
}

// checkDuplicateKeys reports the first key bound twice within a single
// table body; TOML forbids rebinding a key within the same table.
func checkDuplicateKeys(body *element.TableBody) error {
	keys, err := body.Keys()
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return &DuplicateKeysError{Key: k}
		}
		seen[k] = true
	}
	return nil
}

// resolveContainer walks path from root, descending into the active array
// entry at each prefix when one exists, so that nested headers land on
// the right array-of-tables occurrence.
func resolveContainer(root *nameNode, activeArrayEntry map[string]*nameNode, path []string) *nameNode {
	cur := root
	var accumulated []string
	for _, seg := range path {
		accumulated = append(accumulated, seg)
		key := strings.Join(accumulated, ".")
		child, ok := cur.children[seg]
		if !ok {
			child = newNameNode()
			cur.children[seg] = child
		}
		if entry, active := activeArrayEntry[key]; active {
			cur = entry
		} else {
			cur = child
		}
	}
	return cur
}

// Dump serializes the document back to its exact source bytes (modulo any
// mutations applied since parsing).
func (f *File) Dump() []byte {
	var b strings.Builder
	for _, e := range f.elems {
		b.WriteString(e.Serialized())
	}
	return []byte(b.String())
}

func (f *File) lookupExact(names []string) (*nameNode, bool) {
	cur := f.root
	for _, seg := range names {
		child, ok := cur.children[seg]
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}
