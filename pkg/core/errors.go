package core

import "errors"

// Common errors.
var (
	// ErrValidation is returned when a title or body is blank after trimming.
	ErrValidation = errors.New("title and body are required")
	// ErrNotFound is returned by id-addressed operations on a missing note.
	ErrNotFound = errors.New("note not found")
	// ErrReadOnly is returned by storage adapters opened in read-only mode.
	ErrReadOnly = errors.New("storage is in read-only mode")
	// ErrClosed is returned when a removal is requested on a closed store.
	ErrClosed = errors.New("store is closed")
)
