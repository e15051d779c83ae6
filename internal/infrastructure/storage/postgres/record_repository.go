package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"securenest/internal/domain/record"
	"securenest/internal/infrastructure/storage"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type RecordRepository struct {
	db      DBTX
	timeout time.Duration
	log     *slog.Logger
}

func NewRecordRepository(db DBTX, timeout time.Duration, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		db:      db,
		timeout: timeout,
		log:     log.With("component", "record_repository"),
	}
}

// List never selects encrypted_secret: listings carry no secret material.
func (r *RecordRepository) List(ctx context.Context, ownerID uuid.UUID) ([]record.Record, error) {
	const query = `
		SELECT id, owner_id, title, username, url, notes, created_at, updated_at
		FROM records
		WHERE owner_id = $1
		ORDER BY updated_at DESC, id`

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []record.Record
	for rows.Next() {
		var (
			rec                  record.Record
			username, url, notes sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &username, &url, &notes,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Username = fromNull(username)
		rec.URL = fromNull(url)
		rec.Notes = fromNull(notes)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return out, nil
}

func (r *RecordRepository) Get(ctx context.Context, id uuid.UUID) (*record.Record, error) {
	const query = `
		SELECT id, owner_id, title, username, encrypted_secret, url, notes, created_at, updated_at
		FROM records
		WHERE id = $1`

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var (
		rec                  record.Record
		username, url, notes sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.OwnerID, &rec.Title, &username,
		&rec.EncryptedSecret, &url, &notes, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, classify(err)
	}

	rec.Username = fromNull(username)
	rec.URL = fromNull(url)
	rec.Notes = fromNull(notes)
	return &rec, nil
}

func (r *RecordRepository) Create(ctx context.Context, rec *record.Record) error {
	const query = `
		INSERT INTO records (id, owner_id, title, username, encrypted_secret, url, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.OwnerID, rec.Title, rec.Username,
		rec.EncryptedSecret, rec.URL, rec.Notes, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		r.log.Debug("insert record failed", "record_id", rec.ID, "error", err)
		return classify(err)
	}
	return nil
}

func (r *RecordRepository) Update(ctx context.Context, rec *record.Record) error {
	const query = `
		UPDATE records
		SET title = $3, username = $4, encrypted_secret = $5, url = $6, notes = $7, updated_at = $8
		WHERE id = $1 AND owner_id = $2`

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, rec.ID, rec.OwnerID, rec.Title, rec.Username,
		rec.EncryptedSecret, rec.URL, rec.Notes, rec.UpdatedAt)
	if err != nil {
		return classify(err)
	}
	return expectOneRow(res)
}

func (r *RecordRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM records WHERE id = $1 AND owner_id = $2`

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return classify(err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
