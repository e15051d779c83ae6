package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"securenest/internal/app/server/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Storage struct {
	pool         *pgxpool.Pool
	db           *sql.DB
	queryTimeout time.Duration
}

// New opens a pgx pool and exposes it through database/sql.
func New(ctx context.Context, cfg config.DB) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("parse database uri: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", classify(err))
	}

	return &Storage{
		pool:         pool,
		db:           stdlib.OpenDBFromPool(pool),
		queryTimeout: cfg.QueryTimeout,
	}, nil
}

func (s *Storage) Close() error {
	err := s.db.Close()
	s.pool.Close()
	return err
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) QueryTimeout() time.Duration {
	return s.queryTimeout
}

// Ping reports whether the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	return classify(s.pool.Ping(ctx))
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
