package records

import (
	"context"
	"fmt"
	"time"
)

// Service validates submissions before handing them to the repository.
// Validation is presence checks and the schema-level minimums only; anything
// richer belongs to the presentation layer.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(r Repository) *Service {
	return &Service{repo: r, now: time.Now}
}

// CreateBooking enforces the storage-schema constraints: a travel date,
// duration >= 1, numPersons >= 1 and a contact number.
func (s *Service) CreateBooking(ctx context.Context, b *Booking) error {
	if b.TravelDate.IsZero() {
		return fmt.Errorf("%w: travelDate is required", ErrValidation)
	}
	if b.Duration < 1 {
		return fmt.Errorf("%w: duration must be at least 1", ErrValidation)
	}
	if b.NumPersons < 1 {
		return fmt.Errorf("%w: numPersons must be at least 1", ErrValidation)
	}
	if b.ContactNo == "" {
		return fmt.Errorf("%w: contactNo is required", ErrValidation)
	}
	if err := s.repo.InsertBooking(ctx, b); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// CreatePayment persists the payment as-is; the source schema has no
// required fields here.
func (s *Service) CreatePayment(ctx context.Context, p *Payment) error {
	if err := s.repo.InsertPayment(ctx, p); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// CreateReview requires name, email and review text, and defaults the date.
func (s *Service) CreateReview(ctx context.Context, r *Review) error {
	if r.Name == "" || r.Email == "" || r.Review == "" {
		return fmt.Errorf("%w: name, email and review are required", ErrValidation)
	}
	if r.Date.IsZero() {
		r.Date = s.now().UTC()
	}
	if err := s.repo.InsertReview(ctx, r); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}
