package registration

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAccountRepository struct {
	collection *mongo.Collection
}

// NewMongoAccountRepository ensures the unique index on email before
// returning the store. The index is what makes CreateIfAbsent atomic:
// a losing concurrent insert surfaces as a duplicate key error.
func NewMongoAccountRepository(ctx context.Context, c *mongo.Collection) (AccountStore, error) {
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &mongoAccountRepository{collection: c}, nil
}

func (m *mongoAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var acc Account
	sr := m.collection.FindOne(ctx, bson.M{"email": email})
	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err := sr.Decode(&acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (m *mongoAccountRepository) CreateIfAbsent(ctx context.Context, acc *Account) error {
	_, err := m.collection.InsertOne(ctx, acc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return err
}

func (m *mongoAccountRepository) Count(ctx context.Context) (int64, error) {
	return m.collection.CountDocuments(ctx, bson.D{})
}
