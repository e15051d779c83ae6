package crypto

import (
	"encoding/hex"
	"strings"
)

const blobSeparator = ":"

// Blob is the unit of encrypted storage: nonce, authentication tag and ciphertext.
type Blob struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// String serializes the blob as hex(nonce):hex(tag):hex(ciphertext).
// The separator never occurs in hex, so the encoding is unambiguous.
func (b Blob) String() string {
	return strings.Join([]string{
		hex.EncodeToString(b.Nonce),
		hex.EncodeToString(b.Tag),
		hex.EncodeToString(b.Ciphertext),
	}, blobSeparator)
}

// ParseBlob is the inverse of Blob.String. Anything other than exactly three
// hex parts with the expected nonce and tag sizes is ErrMalformedBlob.
func ParseBlob(s string) (Blob, error) {
	parts := strings.Split(s, blobSeparator)
	if len(parts) != 3 {
		return Blob{}, ErrMalformedBlob
	}

	decoded := make([][]byte, len(parts))
	for i, p := range parts {
		raw, err := hex.DecodeString(p)
		if err != nil {
			return Blob{}, ErrMalformedBlob
		}
		decoded[i] = raw
	}

	b := Blob{Nonce: decoded[0], Tag: decoded[1], Ciphertext: decoded[2]}
	if len(b.Nonce) != NonceSize || len(b.Tag) != TagSize {
		return Blob{}, ErrMalformedBlob
	}
	return b, nil
}
