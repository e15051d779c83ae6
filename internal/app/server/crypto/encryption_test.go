package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestEncryptor(t *testing.T) *ServerEncryptor {
	t.Helper()
	key, err := ParseKey(testKeyHex)
	require.NoError(t, err)
	e, err := NewServerEncryptor(key)
	require.NoError(t, err)
	return e
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: testKeyHex},
		{name: "valid with whitespace", input: "  " + testKeyHex + "\n"},
		{name: "empty", input: "", wantErr: true},
		{name: "not hex", input: strings.Repeat("zz", 32), wantErr: true},
		{name: "too short", input: testKeyHex[:62], wantErr: true},
		{name: "too long", input: testKeyHex + "00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrKeyUnavailable)
				assert.True(t, key.IsZero())
				return
			}
			require.NoError(t, err)
			assert.False(t, key.IsZero())
			assert.Equal(t, testKeyHex, key.Hex())
		})
	}
}

func TestKey_NeverPrinted(t *testing.T) {
	key, err := ParseKey(testKeyHex)
	require.NoError(t, err)

	for _, s := range []string{
		key.String(),
		fmt.Sprintf("%v", key),
		fmt.Sprintf("%+v", key),
		fmt.Sprintf("%#v", key),
	} {
		assert.NotContains(t, s, testKeyHex)
		assert.Contains(t, s, "REDACTED")
	}

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	log.Info("config", "key", key)
	assert.NotContains(t, buf.String(), testKeyHex)
}

func TestGenerateKey(t *testing.T) {
	k1, err := GenerateKey(nil)
	require.NoError(t, err)
	k2, err := GenerateKey(nil)
	require.NoError(t, err)

	assert.Len(t, k1.Hex(), 2*KeySize)
	assert.NotEqual(t, k1.Hex(), k2.Hex())

	parsed, err := ParseKey(k1.Hex())
	require.NoError(t, err)
	assert.Equal(t, k1.Hex(), parsed.Hex())
}

func TestGenerateKey_RandomFailure(t *testing.T) {
	_, err := GenerateKey(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestNewServerEncryptor_ZeroKey(t *testing.T) {
	_, err := NewServerEncryptor(Key{})
	assert.ErrorIs(t, err, ErrKeyUnavailable)
}

func TestServerEncryptor_RoundTrip(t *testing.T) {
	e := newTestEncryptor(t)

	for _, plaintext := range []string{
		"",
		"p@ss1",
		"пароль с пробелами и юникодом 🔐",
		strings.Repeat("x", 4096),
		"a:b:c",
	} {
		blob, err := e.Encrypt(plaintext)
		require.NoError(t, err)
		assert.Len(t, blob.Nonce, NonceSize)
		assert.Len(t, blob.Tag, TagSize)
		assert.Len(t, blob.Ciphertext, len(plaintext))

		got, err := e.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)

		// через сериализацию
		sealed, err := e.Seal(plaintext)
		require.NoError(t, err)
		opened, err := e.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	}
}

func TestServerEncryptor_FreshNonce(t *testing.T) {
	e := newTestEncryptor(t)

	b1, err := e.Encrypt("same")
	require.NoError(t, err)
	b2, err := e.Encrypt("same")
	require.NoError(t, err)

	assert.NotEqual(t, b1.Nonce, b2.Nonce)
	assert.NotEqual(t, b1.String(), b2.String())
}

func TestServerEncryptor_TamperDetection(t *testing.T) {
	e := newTestEncryptor(t)

	blob, err := e.Encrypt("correct horse battery staple")
	require.NoError(t, err)

	flip := func(src []byte, bit int) []byte {
		dst := append([]byte(nil), src...)
		dst[bit/8] ^= 1 << (bit % 8)
		return dst
	}

	for bit := 0; bit < len(blob.Ciphertext)*8; bit++ {
		tampered := Blob{Nonce: blob.Nonce, Tag: blob.Tag, Ciphertext: flip(blob.Ciphertext, bit)}
		_, err := e.Decrypt(tampered)
		require.ErrorIs(t, err, ErrAuthenticationFailed, "ciphertext bit %d", bit)
	}

	for bit := 0; bit < TagSize*8; bit++ {
		tampered := Blob{Nonce: blob.Nonce, Tag: flip(blob.Tag, bit), Ciphertext: blob.Ciphertext}
		_, err := e.Decrypt(tampered)
		require.ErrorIs(t, err, ErrAuthenticationFailed, "tag bit %d", bit)
	}

	tampered := Blob{Nonce: flip(blob.Nonce, 0), Tag: blob.Tag, Ciphertext: blob.Ciphertext}
	_, err = e.Decrypt(tampered)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestServerEncryptor_WrongKey(t *testing.T) {
	e := newTestEncryptor(t)
	blob, err := e.Encrypt("secret")
	require.NoError(t, err)

	other, err := GenerateKey(nil)
	require.NoError(t, err)
	e2, err := NewServerEncryptor(other)
	require.NoError(t, err)

	_, err = e2.Decrypt(blob)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestServerEncryptor_NonceFailure(t *testing.T) {
	key, err := ParseKey(testKeyHex)
	require.NoError(t, err)
	e, err := NewServerEncryptor(key, WithRandom(bytes.NewReader(nil)))
	require.NoError(t, err)

	_, err = e.Encrypt("secret")
	assert.Error(t, err)
}

func TestServerEncryptor_DecryptMalformed(t *testing.T) {
	e := newTestEncryptor(t)

	_, err := e.Decrypt(Blob{Nonce: make([]byte, 12), Tag: make([]byte, TagSize)})
	assert.ErrorIs(t, err, ErrMalformedBlob)

	_, err = e.Decrypt(Blob{Nonce: make([]byte, NonceSize), Tag: make([]byte, 8)})
	assert.ErrorIs(t, err, ErrMalformedBlob)
}

func TestParseBlob(t *testing.T) {
	e := newTestEncryptor(t)
	blob, err := e.Encrypt("hello")
	require.NoError(t, err)

	parsed, err := ParseBlob(blob.String())
	require.NoError(t, err)
	assert.Equal(t, blob.Nonce, parsed.Nonce)
	assert.Equal(t, blob.Tag, parsed.Tag)
	assert.Equal(t, blob.Ciphertext, parsed.Ciphertext)
	assert.Equal(t, blob.String(), parsed.String())

	nonce := strings.Repeat("ab", NonceSize)
	tag := strings.Repeat("cd", TagSize)

	malformed := []string{
		"",
		"deadbeef",
		nonce + ":" + tag,
		nonce + ":" + tag + ":00:00",
		"zz" + nonce[2:] + ":" + tag + ":00",
		nonce + ":" + tag + ":0",
		nonce[2:] + ":" + tag + ":00",
		nonce + ":" + tag[2:] + ":00",
	}
	for _, s := range malformed {
		_, err := ParseBlob(s)
		assert.True(t, errors.Is(err, ErrMalformedBlob), "input %q", s)
	}

	_, err = e.Open("not-a-blob")
	assert.ErrorIs(t, err, ErrMalformedBlob)
}
