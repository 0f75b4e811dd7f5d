package tree

import (
	"sort"
	"strings"

	"locale-manager/core/utils"
)

// Node is an internal tree element mapping segments to nested Nodes or leaf values.
type Node map[string]any

// AsNode reports whether v is a mapping node. Plain map[string]any values produced by
// decoders are accepted as well.
func AsNode(v any) (Node, bool) {
	switch n := v.(type) {
	case Node:
		return n, true
	case map[string]any:
		return Node(n), true
	default:
		return nil, false
	}
}

// Root wraps n under the locale segment.
func Root(locale string, n Node) Node {
	if n == nil {
		n = Node{}
	}
	return Node{locale: n}
}

// Subtree returns the subtree stored under locale. A document without the locale yields
// an empty Node; a locale mapped to a leaf is a structural conflict.
func Subtree(doc Node, locale string) (Node, error) {
	v, ok := doc[locale]
	if !ok || v == nil {
		return Node{}, nil
	}
	n, ok := AsNode(v)
	if !ok {
		return nil, conflict(locale, "locale root is a leaf")
	}
	return n, nil
}

// Set places value at key, creating intermediate nodes as needed. Replacing a leaf with
// a leaf is allowed; descending through a leaf or overwriting a node is a conflict.
// n must not be nil.
func Set(n Node, key Key, value any) error {
	if key.IsZero() {
		return ErrInvalidKey
	}

	cur := n
	last := len(key.segments) - 1
	for i, seg := range key.segments[:last] {
		child, ok := cur[seg]
		if !ok {
			next := Node{}
			cur[seg] = next
			cur = next
			continue
		}
		next, ok := AsNode(child)
		if !ok {
			return conflict(strings.Join(key.segments[:i+1], Delimiter), "leaf can not hold children")
		}
		cur = next
	}

	seg := key.segments[last]
	if existing, ok := cur[seg]; ok {
		if _, isNode := AsNode(existing); isNode {
			return conflict(key.String(), "node can not be replaced by a leaf")
		}
	}
	cur[seg] = value
	return nil
}

// Clone returns a deep copy of the node structure. Leaves are copied by value.
func Clone(n Node) Node {
	out := make(Node, len(n))
	for k, v := range n {
		if child, ok := AsNode(v); ok {
			out[k] = Clone(child)
			continue
		}
		out[k] = v
	}
	return out
}

// Merge deep-merges src into a copy of dst. Nested nodes are merged recursively; any
// other collision takes the value from src.
func Merge(dst, src Node) Node {
	out := Clone(dst)
	for k, v := range src {
		if srcChild, ok := AsNode(v); ok {
			if dstChild, ok := AsNode(out[k]); ok {
				out[k] = Merge(dstChild, srcChild)
				continue
			}
			out[k] = Clone(srcChild)
			continue
		}
		out[k] = v
	}
	return out
}

// SortedKeys returns the segments of n in lexicographic order.
func SortedKeys(n Node) []string {
	keys := make([]string, 0, len(n))
	for k := range n {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromMap deep-converts decoded data into a Node. Keys of any type are stringified so
// that trees compare and flatten the same way regardless of how the decoder typed them.
func FromMap(v any) (Node, bool) {
	switch m := v.(type) {
	case Node:
		return fromStringMap(m), true
	case map[string]any:
		return fromStringMap(m), true
	case map[any]any:
		out := make(Node, len(m))
		for k, child := range m {
			out[utils.ToString(k)] = normalize(child)
		}
		return out, true
	default:
		return nil, false
	}
}

func fromStringMap(m map[string]any) Node {
	out := make(Node, len(m))
	for k, child := range m {
		out[k] = normalize(child)
	}
	return out
}

func normalize(v any) any {
	if n, ok := FromMap(v); ok {
		return n
	}
	if list, ok := v.([]any); ok {
		out := make([]any, len(list))
		for i, item := range list {
			out[i] = normalize(item)
		}
		return out
	}
	return v
}
