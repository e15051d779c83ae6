package crypto

import "errors"

var (
	// ErrKeyUnavailable is returned when the encryption key is absent or unusable.
	ErrKeyUnavailable = errors.New("encryption key unavailable")
	// ErrAuthenticationFailed is returned when a blob fails the GCM integrity check.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")
	// ErrMalformedBlob is returned when a stored blob cannot be parsed.
	ErrMalformedBlob = errors.New("malformed encrypted blob")
)
