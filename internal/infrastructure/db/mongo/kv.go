package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultKVCollection = "club_kv"

// KV keeps each collection value in its own document, keyed by _id.
type KV struct {
	coll *mongo.Collection
}

// NewKV returns a KV backed by the named collection of db. An empty name
// selects the default collection.
func NewKV(db *mongo.Database, collection string) *KV {
	if collection == "" {
		collection = defaultKVCollection
	}
	return &KV{coll: db.Collection(collection)}
}

type kvDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kvDoc
	if err := k.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("find %s: %w", key, err)
	}
	return doc.Value, true, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := k.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDoc{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := k.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity with the server hosting the collection.
func (k *KV) Ping(ctx context.Context) error {
	return k.coll.Database().Client().Ping(ctx, nil)
}
