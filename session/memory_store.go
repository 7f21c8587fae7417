package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCleanupInterval is how often the memory store's janitor sweeps
// expired sessions.
const DefaultCleanupInterval = 5 * time.Minute

// MemoryStore keeps sessions in a process-local map. Expiry is checked lazily
// on every read; an optional janitor sweeps entries nothing reads anymore.
type MemoryStore struct {
	sessions sync.Map
	logger   zerolog.Logger
	done     chan struct{}
	once     sync.Once
}

// NewMemoryStore creates an in-memory session store and starts its janitor.
func NewMemoryStore(logger zerolog.Logger) *MemoryStore {
	store := &MemoryStore{
		logger: logger,
		done:   make(chan struct{}),
	}
	go store.cleanupLoop(DefaultCleanupInterval)
	return store
}

// Save stores the session, replacing any entry with the same id.
func (st *MemoryStore) Save(session *Session) error {
	st.sessions.Store(session.ID, session)
	st.logger.Debug().Str("session_id", session.ID).Int("user_id", session.UserID).
		Msg("Saved session")
	return nil
}

// Get returns the session for id. An expired entry is deleted and reported
// absent.
func (st *MemoryStore) Get(id string) (*Session, bool) {
	val, ok := st.sessions.Load(id)
	if !ok {
		return nil, false
	}
	session := val.(*Session)
	if session.IsExpired() {
		st.sessions.Delete(id)
		st.logger.Debug().Str("session_id", id).Msg("Session expired on read")
		return nil, false
	}
	return session, true
}

// Delete removes the session for id. Deleting an absent id is a no-op.
func (st *MemoryStore) Delete(id string) {
	st.sessions.Delete(id)
}

// Close stops the janitor.
func (st *MemoryStore) Close() error {
	st.once.Do(func() { close(st.done) })
	return nil
}

func (st *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-st.done:
			return
		case <-ticker.C:
			st.sessions.Range(func(key, value any) bool {
				if value.(*Session).IsExpired() {
					st.sessions.Delete(key)
					st.logger.Debug().Str("session_id", key.(string)).
						Msg("Swept expired session")
				}
				return true
			})
		}
	}
}
