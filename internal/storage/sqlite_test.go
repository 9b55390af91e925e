package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) *SQLiteStore {
	t.Helper()
	store, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteSetGetRemove(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "kv.db"))

	_, ok := store.Get("wishlist_events")
	assert.False(t, ok)

	require.NoError(t, store.Set("wishlist_events", `[{"id":"E1"}]`))
	value, ok := store.Get("wishlist_events")
	require.True(t, ok)
	assert.Equal(t, `[{"id":"E1"}]`, value)

	// Overwrite replaces, never appends.
	require.NoError(t, store.Set("wishlist_events", `[]`))
	value, ok = store.Get("wishlist_events")
	require.True(t, ok)
	assert.Equal(t, `[]`, value)

	require.NoError(t, store.Remove("wishlist_events"))
	_, ok = store.Get("wishlist_events")
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, store.Remove("wishlist_events"))
}

func TestSQLiteKeysAreIndependent(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "kv.db"))

	require.NoError(t, store.Set("wishlist_events", "events"))
	require.NoError(t, store.Set("wishlist_venues", "venues"))
	require.NoError(t, store.Remove("wishlist_events"))

	value, ok := store.Get("wishlist_venues")
	require.True(t, ok)
	assert.Equal(t, "venues", value)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("username", "Ola Nordmann"))
	require.NoError(t, store.Close())

	reopened := newTestStore(t, path)
	value, ok := reopened.Get("username")
	require.True(t, ok)
	assert.Equal(t, "Ola Nordmann", value)
}

func TestSQLiteCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "kv.db")
	store := newTestStore(t, path)

	require.NoError(t, store.Set("k", "v"))
	value, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", value)
}
