package session

import (
	"time"

	"github.com/google/uuid"
)

// Session maps an opaque local token onto the upstream credential material it
// was minted from.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Cookies   string    `json:"cookies"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New mints a session with a random id expiring ttl from now.
func New(userID int, username, cookies string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Cookies:   cookies,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the session's TTL has elapsed.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// TTL returns the remaining lifetime, zero when already expired.
func (s *Session) TTL() time.Duration {
	remaining := time.Until(s.ExpiresAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Store is the key-value abstraction session state lives behind. Reads of
// expired entries report absence and remove the entry (lazy expiry).
type Store interface {
	Save(session *Session) error
	Get(id string) (*Session, bool)
	Delete(id string)
	Close() error
}
