package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// NonceSize is the per-encryption random nonce length.
	NonceSize = 16
	// TagSize is the GCM authentication tag length.
	TagSize = 16
)

// ServerEncryptor handles server-side encryption of secrets at rest.
// It is safe for concurrent use: the AEAD is immutable after construction.
type ServerEncryptor struct {
	aead cipher.AEAD
	rand io.Reader
}

// Option configures a ServerEncryptor.
type Option func(*ServerEncryptor)

// WithRandom overrides the nonce source.
func WithRandom(r io.Reader) Option {
	return func(e *ServerEncryptor) {
		e.rand = r
	}
}

// NewServerEncryptor creates an AES-256-GCM encryptor bound to key.
func NewServerEncryptor(key Key, opts ...Option) (*ServerEncryptor, error) {
	if key.IsZero() {
		return nil, ErrKeyUnavailable
	}

	block, err := aes.NewCipher(key.material[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	e := &ServerEncryptor{
		aead: aead,
		rand: rand.Reader,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (e *ServerEncryptor) Encrypt(plaintext string) (Blob, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(e.rand, nonce); err != nil {
		return Blob{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := e.aead.Seal(nil, nonce, []byte(plaintext), nil)
	split := len(sealed) - TagSize

	return Blob{
		Nonce:      nonce,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}, nil
}

// Decrypt verifies and opens a blob. Unverified plaintext is never returned.
func (e *ServerEncryptor) Decrypt(blob Blob) (string, error) {
	if len(blob.Nonce) != NonceSize || len(blob.Tag) != TagSize {
		return "", ErrMalformedBlob
	}

	sealed := make([]byte, 0, len(blob.Ciphertext)+TagSize)
	sealed = append(sealed, blob.Ciphertext...)
	sealed = append(sealed, blob.Tag...)

	plaintext, err := e.aead.Open(nil, blob.Nonce, sealed, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

// Seal encrypts plaintext and returns the serialized blob.
func (e *ServerEncryptor) Seal(plaintext string) (string, error) {
	blob, err := e.Encrypt(plaintext)
	if err != nil {
		return "", err
	}
	return blob.String(), nil
}

// Open parses a serialized blob and decrypts it.
func (e *ServerEncryptor) Open(serialized string) (string, error) {
	blob, err := ParseBlob(serialized)
	if err != nil {
		return "", err
	}
	return e.Decrypt(blob)
}
