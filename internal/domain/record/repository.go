package record

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns the owner's records ordered by UpdatedAt descending.
	List(ctx context.Context, ownerID uuid.UUID) ([]Record, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
