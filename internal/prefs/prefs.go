// Package prefs persists per-user durable preferences, currently just
// the skin choice. Durable means it survives across sessions; the
// session-scoped boot record deliberately lives elsewhere.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"prism-terminal/internal/db"
)

// Store is the sqlite-backed preference store. One row per user key,
// written on every theme change.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Theme returns the raw stored theme for a user key, or "" when the
// user has no stored preference.
func (s *Store) Theme(ctx context.Context, userKey string) (string, error) {
	row := s.db.QueryRowContext(ctx, `SELECT theme FROM theme_prefs WHERE user_key = ?`, userKey)

	var theme string
	if err := row.Scan(&theme); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("reading theme preference: %w", err)
	}
	return theme, nil
}

// SetTheme stores the theme for a user key, replacing any prior value.
func (s *Store) SetTheme(ctx context.Context, userKey, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO theme_prefs (user_key, theme, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(user_key) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at`,
		userKey, name,
	)
	if err != nil {
		return fmt.Errorf("writing theme preference: %w", err)
	}
	return nil
}

// MemoryStore is an in-process preference store, used in tests and when
// no data directory is configured.
type MemoryStore struct {
	mu     sync.Mutex
	themes map[string]string
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{themes: map[string]string{}}
}

// Theme returns the stored theme for a user key, or "".
func (m *MemoryStore) Theme(_ context.Context, userKey string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.themes[userKey], nil
}

// SetTheme stores the theme for a user key.
func (m *MemoryStore) SetTheme(_ context.Context, userKey, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.themes[userKey] = name
	return nil
}
