package accounts

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the site has always used for stored hashes.
const bcryptCost = 10

// Service encapsulates credential verification and account creation
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Signup creates a new account with a bcrypt-hashed password. Returns
// ErrDuplicateAccount when the email is already registered. The pre-check
// gives the common case a friendly error; the repository's unique constraint
// is the authoritative guard.
func (s *Service) Signup(ctx context.Context, name, phone, email, password string) (*Account, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &Account{
		Name:         name,
		PhoneNumber:  phone,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Login verifies the credentials and returns the matching account.
// bcrypt.CompareHashAndPassword is the same primitive family that produced
// the hash and compares in constant time.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return nil, ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}
