package accounts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides account persistence operations
type Repository interface {
	// Insert stores a new account. Returns ErrDuplicateAccount when the email
	// is already taken, also under concurrent inserts.
	Insert(ctx context.Context, a *Account) error
	// GetByEmail returns the account for the email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

// MongoRepository implements Repository using a Mongo collection
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a repository for the given collection and
// ensures the unique index on email. The index is what closes the
// duplicate-signup race: two concurrent inserts can both pass the handler's
// pre-check, but only one insert wins.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, a *Account) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateAccount
		}
		return err
	}
	return nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
