// Package mongo provides the document-database storage backend using the
// official MongoDB driver. Each key becomes one document keyed by _id.
package mongo

import (
	"context"
	"errors"

	"foodhub/internal/core/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "kv_records"

type record struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// Backend implements ports.Backend on a Mongo collection.
type Backend struct {
	collection *mongo.Collection
}

// NewBackend creates a backend over the given database.
func NewBackend(db *mongo.Database) *Backend {
	return &Backend{
		collection: db.Collection(collectionName),
	}
}

// Get returns the value stored under key, or ports.ErrKeyNotFound.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var rec record
	err := b.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ports.ErrKeyNotFound
		}
		return nil, err
	}
	return rec.Value, nil
}

// Put stores value under key, overwriting any previous value.
func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	_, err := b.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		record{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes key and reports whether it existed.
func (b *Backend) Delete(ctx context.Context, key string) (bool, error) {
	result, err := b.collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return false, err
	}
	return result.DeletedCount == 1, nil
}

// ListKeys returns every stored key with the given prefix.
func (b *Backend) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	filter := bson.M{}
	if prefix != "" {
		filter["_id"] = bson.M{"$regex": "^" + prefix}
	}

	cursor, err := b.collection.Find(ctx, filter,
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var keys []string
	for cursor.Next(ctx) {
		var rec record
		if err := cursor.Decode(&rec); err != nil {
			return nil, err
		}
		keys = append(keys, rec.Key)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
