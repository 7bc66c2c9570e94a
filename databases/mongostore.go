package databases

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/storefront-api/models"
)

const storefrontName = "storefront"

// MongoStore keeps one document per key in the storefront collection
type MongoStore struct {
	db  DatabaseHelper
	now func() time.Time
}

// NewMongoStore initializes a new key/value store with the provided db connection
func NewMongoStore(db DatabaseHelper) *MongoStore {
	return &MongoStore{
		db:  db,
		now: time.Now,
	}
}

// Get returns the raw value stored under key
func (m *MongoStore) Get(ctx context.Context, key string) ([]byte, error) {
	stored := &models.StoredValue{}
	err := m.db.Collection(storefrontName).FindOne(ctx, bson.M{"_id": key}).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(stored.Value), nil
}

// Set upserts the value stored under key
func (m *MongoStore) Set(ctx context.Context, key string, value []byte) error {
	doc := models.StoredValue{
		Key:       key,
		Value:     string(value),
		UpdatedAt: m.now().UTC(),
	}
	return m.db.Collection(storefrontName).ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
}

// Delete removes key, deleting a missing key is not an error
func (m *MongoStore) Delete(ctx context.Context, key string) error {
	return m.db.Collection(storefrontName).DeleteOne(ctx, bson.M{"_id": key})
}
