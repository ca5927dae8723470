package tomldoc

import (
	"strings"

	"github.com/oarkflow/tomldoc/element"
)

// Get resolves a dotted name (given as separate segments) to its scalar
// value. The last segment must name a key within a table; to reach a
// whole table or array of tables use Contains/Keys/Array instead.
func (f *File) Get(name ...string) (element.Value, error) {
	if len(name) == 0 {
		return element.Value{}, &KeyNotFoundError{Name: ""}
	}
	parent, ok := f.lookupExact(name[:len(name)-1])
	if !ok || parent.body == nil {
		return element.Value{}, &KeyNotFoundError{Name: strings.Join(name, ".")}
	}
	key := name[len(name)-1]
	elem, err := parent.body.Get(key)
	if err != nil {
		return element.Value{}, &KeyNotFoundError{Name: strings.Join(name, ".")}
	}
	atomic, ok := elem.(*element.Atomic)
	if !ok {
		return element.Value{}, &NotPrimitiveError{Value: elem}
	}
	return atomic.Value()
}

// Contains reports whether name resolves to a key, a table, or an array
// of tables anywhere in the document.
func (f *File) Contains(name ...string) bool {
	if len(name) == 0 {
		return false
	}
	if node, ok := f.lookupExact(name); ok {
		if node.body != nil || len(node.arrayEntries) > 0 || len(node.children) > 0 {
			return true
		}
	}
	parent, ok := f.lookupExact(name[:len(name)-1])
	if !ok || parent.body == nil {
		return false
	}
	has, _ := parent.body.Contains(name[len(name)-1])
	return has
}

// Keys returns the keys and sub-table names directly at name (the
// anonymous table, if name is empty).
func (f *File) Keys(name ...string) ([]string, error) {
	node, ok := f.lookupExact(name)
	if !ok {
		return nil, &KeyNotFoundError{Name: strings.Join(name, ".")}
	}
	var keys []string
	if node.body != nil {
		bodyKeys, err := node.body.Keys()
		if err != nil {
			return nil, err
		}
		keys = append(keys, bodyKeys...)
	}
	for k := range node.children {
		keys = append(keys, k)
	}
	return keys, nil
}

// Items returns the key/value pairs directly in the table at name, in
// source order. Values are returned as elements, not deserialized.
func (f *File) Items(name ...string) ([]element.KV, error) {
	node, ok := f.lookupExact(name)
	if !ok || node.body == nil {
		return nil, &KeyNotFoundError{Name: strings.Join(name, ".")}
	}
	return node.body.Items()
}

// ArrayOfTables is a navigable view over one "[[name]]" sequence: each
// entry is itself independently navigable, the way a nested nameNode
// supports Get/Keys/Items/Contains for its own sub-tables.
type ArrayOfTables struct {
	entries []*nameNode
}

// Len returns the number of entries in the array of tables.
func (a *ArrayOfTables) Len() int { return len(a.entries) }

// Entry returns a *File-like view over the ith entry's own table body and
// nested sub-tables, so the same Get/Keys/Items calls work on it.
func (a *ArrayOfTables) Entry(i int) *File {
	return &File{root: a.entries[i]}
}

// Array resolves name to an array of tables.
func (f *File) Array(name ...string) (*ArrayOfTables, error) {
	if len(name) == 0 {
		return nil, &NoArrayFound{Name: ""}
	}
	parent, ok := f.lookupExact(name[:len(name)-1])
	if !ok {
		return nil, &NoArrayFound{Name: strings.Join(name, ".")}
	}
	child, ok := parent.children[name[len(name)-1]]
	if !ok || len(child.arrayEntries) == 0 {
		return nil, &NoArrayFound{Name: strings.Join(name, ".")}
	}
	return &ArrayOfTables{entries: child.arrayEntries}, nil
}
