package records

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is a create-only sink for booking, payment and review records.
type Repository interface {
	InsertBooking(ctx context.Context, b *Booking) error
	InsertPayment(ctx context.Context, p *Payment) error
	InsertReview(ctx context.Context, r *Review) error
}

// MongoRepository persists records in one collection per kind.
type MongoRepository struct {
	bookings *mongo.Collection
	payments *mongo.Collection
	reviews  *mongo.Collection
}

func NewMongoRepository(bookings, payments, reviews *mongo.Collection) *MongoRepository {
	return &MongoRepository{bookings: bookings, payments: payments, reviews: reviews}
}

func (m *MongoRepository) InsertBooking(ctx context.Context, b *Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	_, err := m.bookings.InsertOne(ctx, b)
	return err
}

func (m *MongoRepository) InsertPayment(ctx context.Context, p *Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := m.payments.InsertOne(ctx, p)
	return err
}

func (m *MongoRepository) InsertReview(ctx context.Context, r *Review) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := m.reviews.InsertOne(ctx, r)
	return err
}
