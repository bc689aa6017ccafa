// Package session owns the durable client session: the auth token and the
// serialized user profile, persisted in the local sqlite store. The session
// is written only on successful authentication and cleared on logout; every
// other component receives it read-only through the Manager.
package session

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avryabov/eventhub-cli/internal/dbx"
)

// Storage keys. The same names the web client used in localStorage.
const (
	keyAuthToken = "auth_token"
	keyUser      = "user"
)

// Repository is a small key-value store backing the session.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}

// SQLiteRepository stores session keys in the `session` table. It accepts a
// dbx.DBTX so it can run against either the database or a transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns the stored value for key, or nil when absent.
func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	return err
}
