package snapcache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPutAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put("bootstrap", []byte(`{"events":[]}`)))

	payload, ok := store.Get("bootstrap", time.Hour)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"events":[]}`), payload)
}

func TestGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Get("nope", time.Hour)
	assert.False(t, ok)
}

func TestGetExpired(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put("bootstrap", []byte("old")))

	_, ok := store.Get("bootstrap", 0)
	assert.False(t, ok)
}

func TestPutReplaces(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put("fixtures", []byte("v1")))
	require.NoError(t, store.Put("fixtures", []byte("v2")))

	payload, ok := store.Get("fixtures", time.Hour)
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), payload)

	entries, _, err := store.Status()
	require.NoError(t, err)
	assert.Equal(t, 1, entries)
}

func TestStatusAndClear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put("a", []byte("1")))
	require.NoError(t, store.Put("b", []byte("2")))

	entries, lastFetch, err := store.Status()
	require.NoError(t, err)
	assert.Equal(t, 2, entries)
	assert.WithinDuration(t, time.Now(), lastFetch, time.Minute)

	require.NoError(t, store.Clear())

	entries, _, err = store.Status()
	require.NoError(t, err)
	assert.Zero(t, entries)
}

func TestNilStoreIsNoop(t *testing.T) {
	var store *Store

	assert.NoError(t, store.Put("a", []byte("1")))
	_, ok := store.Get("a", time.Hour)
	assert.False(t, ok)
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())

	_, _, err := store.Status()
	assert.Error(t, err)
}
