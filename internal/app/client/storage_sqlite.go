package client

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache - локальная копия списка записей для офлайн-просмотра.
// Секреты в кэш не попадают.
type Cache struct {
	db *sql.DB
}

func NewCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	cache := &Cache{db: db}

	// Создаем таблицы
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return cache, nil
}

func (c *Cache) initTables() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS summaries (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			username TEXT,
			url TEXT,
			notes TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cache_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// Replace заменяет содержимое кэша свежим списком с сервера
func (c *Cache) Replace(ctx context.Context, items []Summary, at time.Time) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM summaries`); err != nil {
		return fmt.Errorf("ошибка очистки кэша: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO summaries (id, title, username, url, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("ошибка подготовки запроса: %w", err)
	}
	defer stmt.Close()

	for _, s := range items {
		if _, err := stmt.ExecContext(ctx, s.ID, s.Title, s.Username, s.URL, s.Notes,
			s.CreatedAt.UTC(), s.UpdatedAt.UTC()); err != nil {
			return fmt.Errorf("ошибка сохранения записи %s: %w", s.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO cache_meta (key, value) VALUES ('refreshed_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, at.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("ошибка сохранения метаданных: %w", err)
	}

	return tx.Commit()
}

// Remove убирает запись из кэша после удаления на сервере
func (c *Cache) Remove(ctx context.Context, id string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM summaries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("ошибка удаления из кэша: %w", err)
	}
	return nil
}

// List возвращает записи в порядке последнего изменения
func (c *Cache) List(ctx context.Context) ([]Summary, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, title, username, url, notes, created_at, updated_at
		FROM summaries
		ORDER BY updated_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения кэша: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			s                    Summary
			username, url, notes sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Title, &username, &url, &notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения записи: %w", err)
		}
		s.Username = nullToPtr(username)
		s.URL = nullToPtr(url)
		s.Notes = nullToPtr(notes)
		out = append(out, s)
	}
	return out, rows.Err()
}

// RefreshedAt - время последнего обновления кэша; ok=false если кэш пуст
func (c *Cache) RefreshedAt(ctx context.Context) (time.Time, bool, error) {
	var raw string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM cache_meta WHERE key = 'refreshed_at'`).Scan(&raw)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("ошибка чтения метаданных: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("повреждённые метаданные кэша: %w", err)
	}
	return t, true, nil
}

// Clear очищает кэш, например при выходе из аккаунта
func (c *Cache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM summaries; DELETE FROM cache_meta;`)
	return err
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
