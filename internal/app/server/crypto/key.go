package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slog"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

const redacted = "[REDACTED]"

// Key is the server-wide data encryption key. The zero value is not usable.
// Key never prints its material: fmt, %v and slog all render it redacted.
type Key struct {
	material [KeySize]byte
	set      bool
}

// ParseKey decodes a 64-character hex string into a Key.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, ErrKeyUnavailable
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return Key{}, fmt.Errorf("%w: key is not valid hex", ErrKeyUnavailable)
	}
	if len(raw) != KeySize {
		return Key{}, fmt.Errorf("%w: key must be %d bytes, got %d", ErrKeyUnavailable, KeySize, len(raw))
	}

	var k Key
	copy(k.material[:], raw)
	k.set = true
	return k, nil
}

// GenerateKey returns a fresh random key, used by the keygen command.
func GenerateKey(r io.Reader) (Key, error) {
	if r == nil {
		r = rand.Reader
	}

	var k Key
	if _, err := io.ReadFull(r, k.material[:]); err != nil {
		return Key{}, fmt.Errorf("failed to read random key: %w", err)
	}
	k.set = true
	return k, nil
}

// IsZero reports whether the key was never initialised.
func (k Key) IsZero() bool {
	return !k.set
}

// Hex returns the key in its configuration encoding. Only keygen should call it.
func (k Key) Hex() string {
	return hex.EncodeToString(k.material[:])
}

func (k Key) String() string {
	return redacted
}

func (k Key) GoString() string {
	return redacted
}

func (k Key) LogValue() slog.Value {
	return slog.StringValue(redacted)
}
