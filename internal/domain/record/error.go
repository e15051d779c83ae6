package record

import (
	"errors"

	"securenest/internal/domain/validation"
	"securenest/internal/infrastructure/storage"
)

var (
	// ErrNotFound covers both a missing record and a record owned by someone
	// else. Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("record not found")

	ErrValidation       = validation.ErrInvalid
	ErrStoreUnavailable = storage.ErrUnavailable
)
