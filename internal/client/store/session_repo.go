package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/collegecupid/cupid-cli/internal/common"
	"github.com/collegecupid/cupid-cli/internal/dbx"
)

// SessionRepository is the persistence surface for session fields, keyed by
// field name exactly like the browser client's local storage.
type SessionRepository interface {
	Get(ctx context.Context, key string) (string, error)
	SetAll(ctx context.Context, fields map[string]string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}

type SQLiteSessionRepository struct {
	db *sql.DB
}

func NewSQLiteSessionRepository(db *sql.DB) *SQLiteSessionRepository {
	return &SQLiteSessionRepository{db: db}
}

// Get returns the value stored under key, or common.ErrNotFound when the key
// has never been written.
func (r *SQLiteSessionRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

// SetAll upserts every given field inside a single transaction. Either the
// whole set of fields lands or none of it does.
func (r *SQLiteSessionRepository) SetAll(ctx context.Context, fields map[string]string) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range fields {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO session (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, key, value)
			if err != nil {
				return fmt.Errorf("failed to set session[%s]: %w", key, err)
			}
		}
		return nil
	})
}

// List returns every stored field.
func (r *SQLiteSessionRepository) List(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM session`)
	if err != nil {
		return nil, fmt.Errorf("failed to list session fields: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	return result, nil
}

// Clear wipes every stored field.
func (r *SQLiteSessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
