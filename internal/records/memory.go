package records

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository collects records in slices; used by unit and handler tests.
type MemoryRepository struct {
	mu       sync.Mutex
	Bookings []*Booking
	Payments []*Payment
	Reviews  []*Review
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) InsertBooking(ctx context.Context, b *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	cp := *b
	m.Bookings = append(m.Bookings, &cp)
	return nil
}

func (m *MemoryRepository) InsertPayment(ctx context.Context, p *Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	cp := *p
	m.Payments = append(m.Payments, &cp)
	return nil
}

func (m *MemoryRepository) InsertReview(ctx context.Context, r *Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	cp := *r
	m.Reviews = append(m.Reviews, &cp)
	return nil
}
