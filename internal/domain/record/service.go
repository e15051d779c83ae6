package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"securenest/internal/domain/account"
	"securenest/internal/infrastructure/storage"
	"securenest/internal/utils/clock"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// timePrecision matches the store's timestamp resolution.
const timePrecision = time.Microsecond

// Cipher seals and opens secrets. The serialized form is opaque to this package.
type Cipher interface {
	Seal(plaintext string) (string, error)
	Open(serialized string) (string, error)
}

type Servicer interface {
	List(ctx context.Context, owner account.Account) ([]Summary, error)
	Create(ctx context.Context, owner account.Account, in CreateInput) (Summary, error)
	Get(ctx context.Context, owner account.Account, id uuid.UUID) (Detail, error)
	Update(ctx context.Context, owner account.Account, id uuid.UUID, patch Patch) (Summary, error)
	Delete(ctx context.Context, owner account.Account, id uuid.UUID) error
}

// Service implements the record lifecycle: every read or mutation of an
// existing record passes through the Guard first.
type Service struct {
	repo   Repository
	guard  *Guard
	cipher Cipher
	clock  clock.Clock
	log    *slog.Logger
}

// NewService creates a new record service
func NewService(repo Repository, cipher Cipher, clk clock.Clock, log *slog.Logger) *Service {
	if clk == nil {
		clk = clock.Real()
	}
	return &Service{
		repo:   repo,
		guard:  NewGuard(repo, log),
		cipher: cipher,
		clock:  clk,
		log:    log.With("component", "record_service"),
	}
}

// List returns all records of owner, most recently updated first.
func (s *Service) List(ctx context.Context, owner account.Account) ([]Summary, error) {
	records, err := s.repo.List(ctx, owner.ID)
	if err != nil {
		s.log.Error("failed to list records", "account_id", owner.ID, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}

	out := make([]Summary, 0, len(records))
	for i := range records {
		out = append(out, records[i].Summary())
	}
	return out, nil
}

// Create validates, encrypts and stores a new record.
func (s *Service) Create(ctx context.Context, owner account.Account, in CreateInput) (Summary, error) {
	if err := validateCreate(in); err != nil {
		s.log.Debug("validation failed", "account_id", owner.ID, "error", err)
		return Summary{}, err
	}

	sealed, err := s.cipher.Seal(in.Secret)
	if err != nil {
		s.log.Error("failed to encrypt secret", "account_id", owner.ID, "error", err)
		return Summary{}, fmt.Errorf("encrypt secret: %w", err)
	}

	now := s.now()
	rec := &Record{
		ID:              uuid.New(),
		OwnerID:         owner.ID,
		Title:           in.Title,
		Username:        optionalString(in.Username),
		EncryptedSecret: sealed,
		URL:             optionalString(in.URL),
		Notes:           optionalString(in.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.Error("failed to create record", "account_id", owner.ID, "error", err)
		return Summary{}, fmt.Errorf("create record: %w", err)
	}

	s.log.Info("record created", "account_id", owner.ID, "record_id", rec.ID)
	return rec.Summary(), nil
}

// Get returns the record with its secret decrypted.
func (s *Service) Get(ctx context.Context, owner account.Account, id uuid.UUID) (Detail, error) {
	rec, err := s.guard.Authorize(ctx, owner, id)
	if err != nil {
		return Detail{}, err
	}

	secret, err := s.cipher.Open(rec.EncryptedSecret)
	if err != nil {
		// stored data was altered or the key changed
		s.log.Error("stored secret failed integrity check", "record_id", rec.ID, "error", err)
		return Detail{}, fmt.Errorf("decrypt secret: %w", err)
	}

	return Detail{Summary: rec.Summary(), Secret: secret}, nil
}

// Update applies patch to the record. Only fields present in patch change;
// a new secret is encrypted under a fresh nonce.
func (s *Service) Update(ctx context.Context, owner account.Account, id uuid.UUID, patch Patch) (Summary, error) {
	rec, err := s.guard.Authorize(ctx, owner, id)
	if err != nil {
		return Summary{}, err
	}

	if err := validatePatch(patch); err != nil {
		s.log.Debug("validation failed", "record_id", id, "error", err)
		return Summary{}, err
	}

	if v, ok := patch.Title.Get(); ok {
		rec.Title = v
	}
	if v, ok := patch.Username.Get(); ok {
		rec.Username = optionalString(v)
	}
	if v, ok := patch.URL.Get(); ok {
		rec.URL = optionalString(v)
	}
	if v, ok := patch.Notes.Get(); ok {
		rec.Notes = optionalString(v)
	}
	if v, ok := patch.Secret.Get(); ok {
		sealed, err := s.cipher.Seal(v)
		if err != nil {
			s.log.Error("failed to encrypt secret", "record_id", id, "error", err)
			return Summary{}, fmt.Errorf("encrypt secret: %w", err)
		}
		rec.EncryptedSecret = sealed
	}

	now := s.now()
	if !now.After(rec.UpdatedAt) {
		now = rec.UpdatedAt.Add(timePrecision)
	}
	rec.UpdatedAt = now

	if err := s.repo.Update(ctx, rec); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// deleted between the guard check and the write
			return Summary{}, ErrNotFound
		}
		s.log.Error("failed to update record", "record_id", id, "error", err)
		return Summary{}, fmt.Errorf("update record: %w", err)
	}

	s.log.Info("record updated", "account_id", owner.ID, "record_id", id)
	return rec.Summary(), nil
}

// Delete removes the record permanently.
func (s *Service) Delete(ctx context.Context, owner account.Account, id uuid.UUID) error {
	rec, err := s.guard.Authorize(ctx, owner, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, rec.OwnerID, rec.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete record", "record_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted", "account_id", owner.ID, "record_id", id)
	return nil
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(timePrecision)
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
