package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrStructuralConflict is returned when a path is used both as a leaf and as the
	// parent of other paths.
	ErrStructuralConflict = errors.New("tree: structural conflict")
	// ErrInvalidKey is returned for empty keys, empty segments and segments containing
	// the delimiter.
	ErrInvalidKey = errors.New("tree: invalid key")
)

// ConflictError describes a structural conflict at a specific path.
type ConflictError struct {
	// Path is the dotted path where the conflict was detected.
	Path string
	// Reason is a short human readable description.
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s at %q: %s", ErrStructuralConflict, e.Path, e.Reason)
}

// Is reports ErrStructuralConflict so callers can use errors.Is.
func (e *ConflictError) Is(target error) bool {
	return target == ErrStructuralConflict
}

func conflict(path, reason string) error {
	return &ConflictError{Path: path, Reason: reason}
}
