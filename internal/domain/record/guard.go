package record

import (
	"context"
	"errors"
	"fmt"

	"securenest/internal/domain/account"
	"securenest/internal/infrastructure/storage"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Guard is the single place where record ownership is checked.
type Guard struct {
	repo Repository
	log  *slog.Logger
}

func NewGuard(repo Repository, log *slog.Logger) *Guard {
	return &Guard{
		repo: repo,
		log:  log.With("component", "record_guard"),
	}
}

// Authorize loads the record and confirms owner holds it. A missing record and
// a record owned by another account both yield ErrNotFound.
func (g *Guard) Authorize(ctx context.Context, owner account.Account, id uuid.UUID) (*Record, error) {
	rec, err := g.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load record: %w", err)
	}

	if rec.OwnerID != owner.ID {
		g.log.Debug("record access denied", "account_id", owner.ID, "record_id", id)
		return nil, ErrNotFound
	}

	return rec, nil
}
