package sessions

import "context"

// Store provides session persistence operations. Implementations must be
// safe for concurrent use; lookups dominate writes once users are logged in.
type Store interface {
	Create(ctx context.Context, s *Session) error
	// Get returns the session, or nil when absent or already expired.
	// Expired entries are removed on the way out (lazy eviction).
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
