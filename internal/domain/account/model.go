// Package account resolves verified identity subjects to local accounts.
package account

import (
	"time"

	"github.com/google/uuid"
)

// timePrecision matches the store's timestamp resolution.
const timePrecision = time.Microsecond

// Account is the local principal bound to an external identity subject.
type Account struct {
	ID          uuid.UUID
	Subject     string // subject id issued by the identity provider, immutable
	Email       string
	DisplayName *string
	CreatedAt   time.Time
}
