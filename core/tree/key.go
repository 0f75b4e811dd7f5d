package tree

import (
	"fmt"
	"strings"
)

// Delimiter joins key segments in the flat representation.
const Delimiter = "."

// Key is a validated, immutable sequence of path segments.
// The zero Key has no segments and is not a valid lookup key.
type Key struct {
	segments []string
}

// ParseKey splits a dotted path into a Key.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	return NewKey(strings.Split(s, Delimiter)...)
}

// NewKey builds a Key from individual segments.
func NewKey(segments ...string) (Key, error) {
	if len(segments) == 0 {
		return Key{}, fmt.Errorf("%w: no segments", ErrInvalidKey)
	}
	for _, seg := range segments {
		if err := validateSegment(seg); err != nil {
			return Key{}, fmt.Errorf("%w in %q", err, strings.Join(segments, Delimiter))
		}
	}
	return Key{segments: append([]string(nil), segments...)}, nil
}

// String returns the dotted representation.
func (k Key) String() string {
	return strings.Join(k.segments, Delimiter)
}

// Segments returns a copy of the key segments.
func (k Key) Segments() []string {
	return append([]string(nil), k.segments...)
}

// Len returns the number of segments.
func (k Key) Len() int {
	return len(k.segments)
}

// IsZero reports whether k has no segments.
func (k Key) IsZero() bool {
	return len(k.segments) == 0
}

// Child returns a new Key with segment appended.
func (k Key) Child(segment string) (Key, error) {
	if err := validateSegment(segment); err != nil {
		return Key{}, err
	}
	segs := make([]string, 0, len(k.segments)+1)
	segs = append(segs, k.segments...)
	return Key{segments: append(segs, segment)}, nil
}

func validateSegment(seg string) error {
	if seg == "" {
		return fmt.Errorf("%w: empty segment", ErrInvalidKey)
	}
	if strings.Contains(seg, Delimiter) {
		return fmt.Errorf("%w: segment %q contains %q", ErrInvalidKey, seg, Delimiter)
	}
	return nil
}

func joinPath(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + Delimiter + seg
}
