package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a process-wide map guarded by an RWMutex.
// This is the default store: sessions do not survive a restart, which is the
// intended lifecycle. There is no background sweep; expired entries are
// dropped when looked up.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*Session
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*Session), now: time.Now}
}

func (m *MemoryStore) Create(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.items[s.ID] = &cp
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.items[id]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if s.ExpiredAt(m.now()) {
		m.mu.Lock()
		// recheck under the write lock; a concurrent Create could have
		// replaced the entry in the meantime
		if cur, ok := m.items[id]; ok && cur.ExpiredAt(m.now()) {
			delete(m.items, id)
		}
		m.mu.Unlock()
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

// Len reports the number of stored sessions, expired entries included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
