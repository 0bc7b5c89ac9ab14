package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository used by unit tests and by
// handler tests that don't want a running MongoDB.
type MemoryRepository struct {
	mu       sync.RWMutex
	byEmail  map[string]*Account
	sequence int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]*Account)}
}

func (m *MemoryRepository) Insert(ctx context.Context, a *Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[a.Email]; ok {
		return ErrDuplicateAccount
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	m.sequence++
	if a.ID == "" {
		a.ID = fmt.Sprintf("acct_%d", m.sequence)
	}
	cp := *a
	m.byEmail[a.Email] = &cp
	return nil
}

func (m *MemoryRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
