package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	now := time.Now().UTC()
	sess := &Session{ID: "abc", UserID: 1, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(context.Background(), sess))

	got, err := store.Get(context.Background(), "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.UserID)

	require.NoError(t, store.Delete(context.Background(), "abc"))
	got, err = store.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreExpiredEntry(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	now := time.Now().UTC()
	sess := &Session{ID: "old", UserID: 1, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, store.Save(context.Background(), sess))

	got, err := store.Get(context.Background(), "old")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreAbsent(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	got, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}
