package record

import (
	"time"

	"github.com/google/uuid"
)

// Record is a stored credential. EncryptedSecret is a serialized cipher blob
// and is opaque to everything but the cipher.
type Record struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Title           string
	Username        *string
	EncryptedSecret string
	URL             *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Summary is the listing view of a record. It never carries the secret.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Username  *string   `json:"username,omitempty"`
	URL       *string   `json:"url,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Detail is a Summary plus the decrypted secret.
type Detail struct {
	Summary
	Secret string `json:"password"`
}

// CreateInput carries the fields of a new record. Empty optional fields are
// stored as absent.
type CreateInput struct {
	Title    string
	Username string
	Secret   string
	URL      string
	Notes    string
}

// Patch is a partial update. Unset fields are left unchanged; an empty value
// clears Username, URL and Notes.
type Patch struct {
	Title    Optional[string]
	Username Optional[string]
	Secret   Optional[string]
	URL      Optional[string]
	Notes    Optional[string]
}

// IsEmpty reports whether the patch sets no field.
func (p Patch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.Username.IsSet() && !p.Secret.IsSet() &&
		!p.URL.IsSet() && !p.Notes.IsSet()
}

func (r *Record) Summary() Summary {
	return Summary{
		ID:        r.ID,
		Title:     r.Title,
		Username:  r.Username,
		URL:       r.URL,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
