package localefile

import "errors"

var (
	// ErrNotFound is returned when a required locale file does not exist.
	ErrNotFound = errors.New("localefile: not found")
	// ErrInvalidFile is returned when a file cannot be decoded into a locale tree.
	ErrInvalidFile = errors.New("localefile: invalid locale file")
	// ErrUnknownFormat is returned for formats without a codec.
	ErrUnknownFormat = errors.New("localefile: unknown format")
	// ErrUnknownBackend is returned for store backends that are not supported.
	ErrUnknownBackend = errors.New("localefile: unknown backend")
)
