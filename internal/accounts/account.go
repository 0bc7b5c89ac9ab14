package accounts

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateAccount is returned when an account with the same email already exists.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrAccountNotFound is returned when no account matches the given email.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCredentials is returned when the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account is a persisted user identity. The email is the lookup key and is
// unique at the collection level. The password is stored as a bcrypt hash,
// never as plaintext.
type Account struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	PhoneNumber  string    `bson:"phone_number" json:"phone_number"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
