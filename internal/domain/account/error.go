package account

import (
	"errors"

	"securenest/internal/infrastructure/storage"
)

var (
	ErrNotFound  = errors.New("account not found")
	ErrDuplicate = errors.New("account already exists")

	// ErrStoreUnavailable is the store outage sentinel, re-exported for callers.
	ErrStoreUnavailable = storage.ErrUnavailable
)
