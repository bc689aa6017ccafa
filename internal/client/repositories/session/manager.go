package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/avryabov/eventhub-cli/internal/client/models"
	"github.com/avryabov/eventhub-cli/internal/dbx"
)

// Session is the durable proof of authentication held by the client between
// runs: the bearer token plus the user profile it belongs to.
type Session struct {
	Token string
	User  models.UserProfile
}

// Manager loads, saves, and clears the persisted session. It is the only
// writer; other components read the current session through it.
type Manager struct {
	db      *sql.DB
	current *Session
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// Load reads the persisted session at startup. Returns nil (and no error)
// when no session is stored. A stored token without a decodable profile is
// treated as absent rather than surfacing a half-usable session.
func (m *Manager) Load(ctx context.Context) (*Session, error) {
	repo := NewSQLiteRepository(m.db)

	token, err := repo.Get(ctx, keyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("loading session token: %w", err)
	}
	if len(token) == 0 {
		m.current = nil
		return nil, nil
	}

	rawUser, err := repo.Get(ctx, keyUser)
	if err != nil {
		return nil, fmt.Errorf("loading session user: %w", err)
	}

	var user models.UserProfile
	if err := json.Unmarshal(rawUser, &user); err != nil {
		m.current = nil
		return nil, nil
	}

	m.current = &Session{Token: string(token), User: user}
	return m.current, nil
}

// Save persists the session atomically: token and profile are written in a
// single transaction so a crash cannot leave one without the other.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	rawUser, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encoding session user: %w", err)
	}

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAuthToken, []byte(s.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, rawUser)
	})
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	m.current = s
	return nil
}

// Clear removes the persisted session (logout).
func (m *Manager) Clear(ctx context.Context) error {
	repo := NewSQLiteRepository(m.db)
	if err := repo.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	m.current = nil
	return nil
}

// Current returns the in-memory session, or nil when not authenticated.
func (m *Manager) Current() *Session {
	return m.current
}
