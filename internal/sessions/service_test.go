package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedClock lets tests move time forward without sleeping.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time          { return c.t }
func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestService(ttl time.Duration) (*Service, *MemoryStore, *fixedClock) {
	clock := &fixedClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = clock.Now
	svc := NewService(store, ttl)
	svc.now = clock.Now
	return svc, store, clock
}

func TestCreateAndLookup(t *testing.T) {
	svc, _, _ := newTestService(30 * time.Second)
	ctx := context.Background()

	id, err := svc.Create(ctx, Identity{Email: "a@x.com", Name: "Alice"})
	require.NoError(t, err)
	require.Len(t, id, 64, "32 random bytes hex-encoded")

	sess, err := svc.Lookup(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, "a@x.com", sess.Identity.Email)
	require.Equal(t, "Alice", sess.Identity.Name)
	require.Equal(t, sess.CreatedAt.Add(30*time.Second), sess.ExpiresAt)
}

func TestLookupTTLBoundary(t *testing.T) {
	svc, _, clock := newTestService(30 * time.Second)
	ctx := context.Background()

	id, err := svc.Create(ctx, Identity{Email: "a@x.com", Name: "Alice"})
	require.NoError(t, err)

	// still valid just inside the TTL
	clock.Advance(29 * time.Second)
	sess, err := svc.Lookup(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, sess)

	// gone just past it
	clock.Advance(2 * time.Second)
	sess, err = svc.Lookup(ctx, id)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestLookupEvictsExpired(t *testing.T) {
	svc, store, clock := newTestService(time.Second)
	ctx := context.Background()

	id, err := svc.Create(ctx, Identity{Email: "a@x.com"})
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	clock.Advance(2 * time.Second)
	sess, err := svc.Lookup(ctx, id)
	require.NoError(t, err)
	require.Nil(t, sess)
	require.Equal(t, 0, store.Len(), "expired entry should be lazily evicted")
}

func TestDestroy(t *testing.T) {
	svc, _, _ := newTestService(30 * time.Second)
	ctx := context.Background()

	id, err := svc.Create(ctx, Identity{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(ctx, id))
	sess, err := svc.Lookup(ctx, id)
	require.NoError(t, err)
	require.Nil(t, sess)

	// destroying again, or destroying garbage, is a no-op
	require.NoError(t, svc.Destroy(ctx, id))
	require.NoError(t, svc.Destroy(ctx, "no-such-session"))
}

func TestLookupAbsent(t *testing.T) {
	svc, _, _ := newTestService(30 * time.Second)
	ctx := context.Background()

	sess, err := svc.Lookup(ctx, "")
	require.NoError(t, err)
	require.Nil(t, sess)

	sess, err = svc.Lookup(ctx, "deadbeef")
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestTokensAreUnique(t *testing.T) {
	svc, _, _ := newTestService(30 * time.Second)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := svc.Create(ctx, Identity{Email: "a@x.com"})
		require.NoError(t, err)
		require.False(t, seen[id], "session ids must not repeat")
		seen[id] = true
	}
}
