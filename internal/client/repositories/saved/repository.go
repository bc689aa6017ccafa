// Package saved persists the locally held set of event keys the user has
// registered for. The set is populated optimistically when a payment wizard
// completes; it is not reconciled against server-side registration records
// except via the explicit registrations sync on login.
package saved

import (
	"context"

	"github.com/avryabov/eventhub-cli/internal/dbx"
)

type Repository interface {
	Add(ctx context.Context, eventKey string) error
	Remove(ctx context.Context, eventKey string) error
	List(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, eventKey string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saved_events (event_key) VALUES (?)
		ON CONFLICT(event_key) DO NOTHING
	`, eventKey)
	return err
}

func (r *SQLiteRepository) Remove(ctx context.Context, eventKey string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM saved_events WHERE event_key = ?`, eventKey)
	return err
}

func (r *SQLiteRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT event_key FROM saved_events ORDER BY added_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM saved_events`)
	return err
}
