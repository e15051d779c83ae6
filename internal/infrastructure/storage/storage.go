// Package storage holds the error vocabulary shared by durable store implementations.
package storage

import "errors"

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("storage: not found")
	// ErrConflict is returned when a uniqueness constraint is violated.
	ErrConflict = errors.New("storage: unique constraint conflict")
	// ErrUnavailable is returned when the store cannot be reached or timed out.
	ErrUnavailable = errors.New("storage: unavailable")
)
