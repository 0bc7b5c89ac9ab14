package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Service owns the session lifecycle: create on login, lookup on every
// protected request, destroy on logout. The TTL is fixed at construction.
type Service struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewService(store Store, ttl time.Duration) *Service {
	return &Service{store: store, ttl: ttl, now: time.Now}
}

// TTL returns the configured session lifetime; the cookie max-age is aligned with it.
func (s *Service) TTL() time.Duration { return s.ttl }

// Create stores a new session for the identity and returns its opaque id.
// The id is 32 bytes of crypto/rand, hex-encoded: unguessable and safe in a cookie.
func (s *Service) Create(ctx context.Context, id Identity) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	now := s.now().UTC()
	sess := &Session{
		ID:        token,
		Identity:  id,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return "", err
	}
	return token, nil
}

// Lookup returns the session if it exists and has not expired, nil otherwise.
// An expired entry is deleted on the way out. Absent and expired are
// indistinguishable to the caller; both mean Deny.
func (s *Service) Lookup(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if sess.ExpiredAt(s.now().UTC()) {
		// cleanup expired session
		_ = s.store.Delete(ctx, id)
		return nil, nil
	}
	return sess, nil
}

// Destroy removes the session unconditionally. Destroying an unknown id is a no-op.
func (s *Service) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.store.Delete(ctx, id)
}
