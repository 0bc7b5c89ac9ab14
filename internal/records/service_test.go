package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validBooking() *Booking {
	return &Booking{
		FullName:        "Alice",
		Country:         "NL",
		Email:           "a@x.com",
		TourDescription: "City walk",
		TravelDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Duration:        3,
		NumPersons:      2,
		ContactNo:       "555-0100",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.CreateBooking(ctx, validBooking()))
	require.Len(t, repo.Bookings, 1)
	require.NotEmpty(t, repo.Bookings[0].ID)
	require.False(t, repo.Bookings[0].CreatedAt.IsZero())
}

func TestCreateBookingValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	cases := map[string]func(*Booking){
		"zero duration":    func(b *Booking) { b.Duration = 0 },
		"zero persons":     func(b *Booking) { b.NumPersons = 0 },
		"missing date":     func(b *Booking) { b.TravelDate = time.Time{} },
		"missing contact":  func(b *Booking) { b.ContactNo = "" },
		"negative persons": func(b *Booking) { b.NumPersons = -2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			b := validBooking()
			mutate(b)
			err := svc.CreateBooking(ctx, b)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateReview(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	r := &Review{Name: "Alice", Email: "a@x.com", Review: "Lovely trip"}
	require.NoError(t, svc.CreateReview(ctx, r))
	require.Len(t, repo.Reviews, 1)
	require.False(t, repo.Reviews[0].Date.IsZero(), "date defaults to now")

	err := svc.CreateReview(ctx, &Review{Name: "Bob", Email: "b@x.com"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreatePayment(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	p := &Payment{
		Destination: "Rome",
		Days:        4,
		NumPeople:   2,
		TotalPrice:  899.50,
		Passengers:  []Passenger{{Name: "Alice", Age: 31}, {Name: "Bob", Age: 33}},
	}
	require.NoError(t, svc.CreatePayment(ctx, p))
	require.Len(t, repo.Payments, 1)
	require.Len(t, repo.Payments[0].Passengers, 2)
}

type failingRepo struct{}

func (failingRepo) InsertBooking(ctx context.Context, b *Booking) error { return errors.New("down") }
func (failingRepo) InsertPayment(ctx context.Context, p *Payment) error { return errors.New("down") }
func (failingRepo) InsertReview(ctx context.Context, r *Review) error { return errors.New("down") }

func TestPersistenceFailureIsNotValidation(t *testing.T) {
	svc := NewService(failingRepo{})
	ctx := context.Background()

	err := svc.CreateBooking(ctx, validBooking())
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrValidation))
}
