package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"securenest/internal/domain/validation"
	"securenest/internal/infrastructure/storage"
	"securenest/internal/utils/clock"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const maxDisplayNameLen = 128

type Servicer interface {
	Resolve(ctx context.Context, subject string) (Account, error)
	Create(ctx context.Context, subject, email string, displayName *string) (Account, error)
}

// Service maps verified identity subjects to local accounts.
type Service struct {
	repo  Repository
	clock clock.Clock
	log   *slog.Logger
}

func NewService(repo Repository, clk clock.Clock, log *slog.Logger) *Service {
	if clk == nil {
		clk = clock.Real()
	}
	return &Service{
		repo:  repo,
		clock: clk,
		log:   log.With("component", "account_service"),
	}
}

// Resolve returns the account bound to subject or ErrNotFound.
func (s *Service) Resolve(ctx context.Context, subject string) (Account, error) {
	acc, err := s.repo.FindBySubject(ctx, subject)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Account{}, ErrNotFound
		}
		s.log.Error("failed to resolve account", "subject", subject, "error", err)
		return Account{}, fmt.Errorf("resolve account: %w", err)
	}
	return acc, nil
}

// Create registers a new account for subject. Uniqueness of subject and email
// is enforced by the store; a conflict surfaces as ErrDuplicate.
func (s *Service) Create(ctx context.Context, subject, email string, displayName *string) (Account, error) {
	email = strings.TrimSpace(email)
	displayName = normalizeName(displayName)

	verr := &validation.Error{}
	if strings.TrimSpace(subject) == "" {
		verr.Add("subject", "Subject is required")
	}
	if email == "" {
		verr.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		verr.Add("email", "Invalid email format")
	}
	if displayName != nil && len([]rune(*displayName)) > maxDisplayNameLen {
		verr.Add("name", fmt.Sprintf("Name must be at most %d characters", maxDisplayNameLen))
	}
	if err := verr.Err(); err != nil {
		s.log.Debug("validation failed", "subject", subject, "error", err)
		return Account{}, err
	}

	acc := Account{
		ID:          uuid.New(),
		Subject:     subject,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   s.clock.Now().UTC().Truncate(timePrecision),
	}

	if err := s.repo.Create(ctx, &acc); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return Account{}, ErrDuplicate
		}
		s.log.Error("failed to create account", "subject", subject, "error", err)
		return Account{}, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("account created", "account_id", acc.ID)
	return acc, nil
}

func normalizeName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
