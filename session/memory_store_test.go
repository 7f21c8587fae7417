package session

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore(zerolog.Nop())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewSession(t *testing.T) {
	sess := New(7, "editor", "wordpress_logged_in_x=tok", time.Hour)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 7, sess.UserID)
	assert.Equal(t, "editor", sess.Username)
	assert.False(t, sess.IsExpired())
	assert.InDelta(t, time.Hour.Seconds(), sess.TTL().Seconds(), 1)

	// Ids are unique per mint
	other := New(7, "editor", "wordpress_logged_in_x=tok", time.Hour)
	assert.NotEqual(t, sess.ID, other.ID)
}

func TestMemoryStoreSaveGet(t *testing.T) {
	store := newTestStore(t)

	sess := New(1, "admin", "cookies", time.Hour)
	require.NoError(t, store.Save(sess))

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, "cookies", got.Cookies)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Get("no-such-id")
	assert.False(t, ok)
}

func TestMemoryStoreLazyExpiry(t *testing.T) {
	store := newTestStore(t)

	sess := New(1, "admin", "cookies", -time.Second)
	require.NoError(t, store.Save(sess))

	// First read finds the expired entry, reports absent and removes it
	_, ok := store.Get(sess.ID)
	assert.False(t, ok)

	// Second read is absent without any re-insertion having happened
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)
	_, stillStored := store.sessions.Load(sess.ID)
	assert.False(t, stillStored, "expired entry must be removed on first read")
}

func TestMemoryStoreDelete(t *testing.T) {
	store := newTestStore(t)

	sess := New(1, "admin", "cookies", time.Hour)
	require.NoError(t, store.Save(sess))

	store.Delete(sess.ID)
	_, ok := store.Get(sess.ID)
	assert.False(t, ok)

	// Deleting an absent id is a no-op
	store.Delete(sess.ID)
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	store := newTestStore(t)

	sess := New(1, "admin", "old", time.Hour)
	require.NoError(t, store.Save(sess))

	updated := *sess
	updated.Cookies = "new"
	require.NoError(t, store.Save(&updated))

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, "new", got.Cookies)
}
