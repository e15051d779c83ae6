package postgres

import (
	"context"
	"database/sql"
	"time"

	"securenest/internal/domain/account"

	"golang.org/x/exp/slog"
)

type AccountRepository struct {
	db      DBTX
	timeout time.Duration
	log     *slog.Logger
}

func NewAccountRepository(db DBTX, timeout time.Duration, log *slog.Logger) *AccountRepository {
	return &AccountRepository{
		db:      db,
		timeout: timeout,
		log:     log.With("component", "account_repository"),
	}
}

func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	const query = `
		INSERT INTO accounts (id, subject, email, display_name, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, acc.ID, acc.Subject, acc.Email, acc.DisplayName, acc.CreatedAt)
	if err != nil {
		r.log.Debug("insert account failed", "account_id", acc.ID, "error", err)
		return classify(err)
	}
	return nil
}

func (r *AccountRepository) FindBySubject(ctx context.Context, subject string) (account.Account, error) {
	const query = `
		SELECT id, subject, email, display_name, created_at
		FROM accounts
		WHERE subject = $1`

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var (
		acc  account.Account
		name sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, subject).
		Scan(&acc.ID, &acc.Subject, &acc.Email, &name, &acc.CreatedAt)
	if err != nil {
		return account.Account{}, classify(err)
	}

	acc.DisplayName = fromNull(name)
	return acc, nil
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
