package tomldoc

import "github.com/oarkflow/tomldoc/element"

// Primitive projects the whole document to native Go values: maps,
// slices, and scalars, with no formatting metadata attached. The
// anonymous table's keys are merged directly into the returned map.
func (f *File) Primitive() (map[string]any, error) {
	return nodePrimitive(f.root)
}

func nodePrimitive(n *nameNode) (map[string]any, error) {
	out := map[string]any{}
	if n.body != nil {
		items, err := n.body.Items()
		if err != nil {
			return nil, err
		}
		for _, kv := range items {
			v, err := elementPrimitive(kv.Value)
			if err != nil {
				return nil, err
			}
			out[kv.Key] = v
		}
	}
	for name, child := range n.children {
		if len(child.arrayEntries) > 0 {
			seq := make([]any, 0, len(child.arrayEntries))
			for _, entry := range child.arrayEntries {
				m, err := nodePrimitive(entry)
				if err != nil {
					return nil, err
				}
				seq = append(seq, m)
			}
			out[name] = seq
			continue
		}
		m, err := nodePrimitive(child)
		if err != nil {
			return nil, err
		}
		out[name] = m
	}
	return out, nil
}

// elementPrimitive projects a single value-shaped Element (Atomic, Array,
// or InlineTable) to its native Go value.
func elementPrimitive(e element.Element) (any, error) {
	switch v := e.(type) {
	case *element.Atomic:
		val, err := v.Value()
		if err != nil {
			return nil, err
		}
		return scalarPrimitive(val), nil
	case *element.Array:
		out := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			entry, err := v.Get(i)
			if err != nil {
				return nil, err
			}
			p, err := elementPrimitive(entry)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	case *element.InlineTable:
		keys, err := v.Keys()
		if err != nil {
			return nil, err
		}
		out := map[string]any{}
		for _, k := range keys {
			entry, err := v.Get(k)
			if err != nil {
				return nil, err
			}
			p, err := elementPrimitive(entry)
			if err != nil {
				return nil, err
			}
			out[k] = p
		}
		return out, nil
	default:
		return nil, &InvalidElementError{Reason: "element has no primitive projection"}
	}
}

func scalarPrimitive(v element.Value) any {
	switch v.Kind() {
	case element.KindString:
		return v.String()
	case element.KindInt64:
		return v.Int64()
	case element.KindBigDecimal:
		return v.BigDecimal()
	case element.KindFloat64:
		return v.Float64()
	case element.KindBool:
		return v.Bool()
	case element.KindDate:
		return v.Date()
	default:
		return nil
	}
}
