package tree

import (
	"fmt"
	"sort"
	"strings"
)

// FlatMap maps dotted paths to leaf values.
type FlatMap map[string]any

// Keys returns the keys of f in lexicographic order.
func (f FlatMap) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeySet returns the key space of f.
func (f FlatMap) KeySet() KeySet {
	set := make(KeySet, len(f))
	for k := range f {
		set[k] = struct{}{}
	}
	return set
}

// Clone returns a shallow copy of f.
func (f FlatMap) Clone() FlatMap {
	out := make(FlatMap, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Prefixes returns every proper path prefix of the keys in f, i.e. the paths that are
// nodes in the unflattened tree.
func (f FlatMap) Prefixes() KeySet {
	set := make(KeySet)
	for k := range f {
		for i := strings.LastIndex(k, Delimiter); i > 0; i = strings.LastIndex(k[:i], Delimiter) {
			set[k[:i]] = struct{}{}
		}
	}
	return set
}

// KeySet is a set of dotted paths.
type KeySet map[string]struct{}

// NewKeySet builds a set from keys.
func NewKeySet(keys ...string) KeySet {
	set := make(KeySet, len(keys))
	set.Add(keys...)
	return set
}

// Add inserts keys into s.
func (s KeySet) Add(keys ...string) {
	for _, k := range keys {
		s[k] = struct{}{}
	}
}

// Has reports whether key is in s.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys in s.
func (s KeySet) Len() int {
	return len(s)
}

// Union returns a new set holding the keys of s and other.
func (s KeySet) Union(other KeySet) KeySet {
	out := make(KeySet, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// Sorted returns the keys of s in lexicographic order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flatten produces one entry per leaf reachable from n, keyed by the dotted path from n.
// Empty nodes contribute nothing.
func Flatten(n Node) (FlatMap, error) {
	flat := make(FlatMap)
	if err := flattenInto(flat, n, ""); err != nil {
		return nil, err
	}
	return flat, nil
}

// FlattenLocale flattens the subtree stored under locale, so keys exclude the locale
// segment itself.
func FlattenLocale(doc Node, locale string) (FlatMap, error) {
	sub, err := Subtree(doc, locale)
	if err != nil {
		return nil, err
	}
	return Flatten(sub)
}

func flattenInto(flat FlatMap, n Node, prefix string) error {
	for seg, v := range n {
		if err := validateSegment(seg); err != nil {
			return fmt.Errorf("%w under %q", err, prefix)
		}
		path := joinPath(prefix, seg)
		if child, ok := AsNode(v); ok {
			if err := flattenInto(flat, child, path); err != nil {
				return err
			}
			continue
		}
		flat[path] = v
	}
	return nil
}

// Unflatten rebuilds a nested Node from a FlatMap. Keys are applied in sorted order so
// conflicts are reported deterministically.
func Unflatten(flat FlatMap) (Node, error) {
	root := Node{}
	for _, k := range flat.Keys() {
		key, err := ParseKey(k)
		if err != nil {
			return nil, err
		}
		if err := Set(root, key, flat[k]); err != nil {
			return nil, err
		}
	}
	return root, nil
}
