package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"securenest/internal/domain/account"
	"securenest/internal/infrastructure/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newAccountRepoWithMock(t *testing.T) (*AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAccountRepository(db, time.Second, slog.Default()), mock
}

const (
	insertAccountQ = `(?s)^\s*INSERT\s+INTO\s+accounts\s*\(id,\s*subject,\s*email,\s*display_name,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*$`
	selectAccountQ = `(?s)^\s*SELECT\s+id,\s*subject,\s*email,\s*display_name,\s*created_at\s+FROM\s+accounts\s+WHERE\s+subject\s*=\s*\$1\s*$`
)

func TestAccountRepository_Create(t *testing.T) {
	repo, mock := newAccountRepoWithMock(t)

	name := "Alice"
	acc := &account.Account{
		ID:          uuid.New(),
		Subject:     "uid-1",
		Email:       "alice@example.com",
		DisplayName: &name,
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec(insertAccountQ).
		WithArgs(acc.ID, "uid-1", "alice@example.com", "Alice", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), acc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_NullName(t *testing.T) {
	repo, mock := newAccountRepoWithMock(t)

	acc := &account.Account{ID: uuid.New(), Subject: "uid-1", Email: "alice@example.com"}

	mock.ExpectExec(insertAccountQ).
		WithArgs(acc.ID, "uid-1", "alice@example.com", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), acc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newAccountRepoWithMock(t)

	mock.ExpectExec(insertAccountQ).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

	err := repo.Create(context.Background(), &account.Account{ID: uuid.New()})
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestAccountRepository_FindBySubject(t *testing.T) {
	repo, mock := newAccountRepoWithMock(t)

	id := uuid.New()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(selectAccountQ).
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "subject", "email", "display_name", "created_at"}).
			AddRow(id.String(), "uid-1", "alice@example.com", nil, created))

	got, err := repo.FindBySubject(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Nil(t, got.DisplayName)
	assert.Equal(t, created, got.CreatedAt)
}

func TestAccountRepository_FindBySubject_NotFound(t *testing.T) {
	repo, mock := newAccountRepoWithMock(t)

	mock.ExpectQuery(selectAccountQ).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindBySubject(context.Background(), "ghost")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAccountRepository_FindBySubject_Timeout(t *testing.T) {
	repo, mock := newAccountRepoWithMock(t)

	mock.ExpectQuery(selectAccountQ).
		WithArgs("uid-1").
		WillReturnError(context.DeadlineExceeded)

	_, err := repo.FindBySubject(context.Background(), "uid-1")
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "no rows", in: sql.ErrNoRows, want: storage.ErrNotFound},
		{name: "unique", in: &pgconn.PgError{Code: "23505"}, want: storage.ErrConflict},
		{name: "connection failure", in: &pgconn.PgError{Code: "08006"}, want: storage.ErrUnavailable},
		{name: "too many connections", in: &pgconn.PgError{Code: "53300"}, want: storage.ErrUnavailable},
		{name: "admin shutdown", in: &pgconn.PgError{Code: "57P01"}, want: storage.ErrUnavailable},
		{name: "deadline", in: context.DeadlineExceeded, want: storage.ErrUnavailable},
		{name: "bad conn", in: sql.ErrConnDone, want: storage.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.in), tt.want)
		})
	}

	assert.NoError(t, classify(nil))

	other := classify(errors.New("syntax error"))
	for _, sentinel := range []error{storage.ErrNotFound, storage.ErrConflict, storage.ErrUnavailable} {
		assert.NotErrorIs(t, other, sentinel)
	}
	assert.Contains(t, other.Error(), "db error")
}
