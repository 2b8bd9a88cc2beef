package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"prism-terminal/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestThemeRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	theme, err := store.Theme(ctx, "ben")
	require.NoError(t, err)
	require.Empty(t, theme, "missing row should read as empty, not error")

	require.NoError(t, store.SetTheme(ctx, "ben", "terminal"))

	theme, err = store.Theme(ctx, "ben")
	require.NoError(t, err)
	require.Equal(t, "terminal", theme)
}

func TestSetThemeReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetTheme(ctx, "ben", "win31"))
	require.NoError(t, store.SetTheme(ctx, "ben", "retro"))

	theme, err := store.Theme(ctx, "ben")
	require.NoError(t, err)
	require.Equal(t, "retro", theme)
}

func TestUsersAreIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetTheme(ctx, "ben", "starship"))
	require.NoError(t, store.SetTheme(ctx, "guest", "mcdu"))

	theme, err := store.Theme(ctx, "ben")
	require.NoError(t, err)
	require.Equal(t, "starship", theme)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	theme, err := store.Theme(ctx, "ben")
	require.NoError(t, err)
	require.Empty(t, theme)

	require.NoError(t, store.SetTheme(ctx, "ben", "holographic"))

	theme, err = store.Theme(ctx, "ben")
	require.NoError(t, err)
	require.Equal(t, "holographic", theme)
}
