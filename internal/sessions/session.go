package sessions

import "time"

// Identity is the small payload a session carries. It is resolved from an
// account at login and handed to protected handlers by the gate; the client
// only ever holds the opaque session id.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is an ephemeral server-side record bound to an opaque id.
// Expiry is absolute: ExpiresAt = CreatedAt + TTL, never refreshed by activity.
type Session struct {
	ID        string    `json:"id"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExpiredAt reports whether the session is past its TTL at the given instant.
func (s *Session) ExpiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
