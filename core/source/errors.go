package source

import "errors"

var (
	// ErrUnknownKind is returned by New for source kinds that do not exist.
	ErrUnknownKind = errors.New("source: unknown kind")
	// ErrNoDatabase is returned when the database source has no connection.
	ErrNoDatabase = errors.New("source: database not configured")
)
