// Package identity verifies bearer credentials issued by the external identity
// provider and yields the verified subject.
package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrExpiredCredential = errors.New("credential expired")
)

// Identity is the verified result of a credential check.
type Identity struct {
	Subject string
	Email   string
}

type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
