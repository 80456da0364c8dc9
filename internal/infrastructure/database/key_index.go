package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photoshare/internal/domain/apperror"
)

// blobKeyFields maps each collection to the field holding its object-store key.
var blobKeyFields = map[string]string{
	PostCollection: "blobKey",
	UserCollection: "profileBlobKey",
}

type KeyIndex struct {
	db *Database
}

func NewKeyIndex(db *Database) *KeyIndex {
	return &KeyIndex{db: db}
}

func (k *KeyIndex) IsReferenced(ctx context.Context, blobKey string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, k.db.QueryTimeout)
	defer cancel()

	for collection, field := range blobKeyFields {
		coll, err := k.db.collection(collection)
		if err != nil {
			return false, err
		}

		n, err := coll.CountDocuments(ctx, bson.M{field: blobKey}, options.Count().SetLimit(1))
		if err != nil {
			return false, fmt.Errorf("%w: count %s by %s: %w", apperror.ErrRepository, collection, field, err)
		}
		if n > 0 {
			return true, nil
		}
	}

	return false, nil
}

func (k *KeyIndex) ReferencedKeys(ctx context.Context) (map[string]struct{}, error) {
	ctx, cancel := context.WithTimeout(ctx, k.db.QueryTimeout)
	defer cancel()

	keys := make(map[string]struct{})
	for collection, field := range blobKeyFields {
		coll, err := k.db.collection(collection)
		if err != nil {
			return nil, err
		}

		values, err := coll.Distinct(ctx, field, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("%w: distinct %s.%s: %w", apperror.ErrRepository, collection, field, err)
		}

		for _, v := range values {
			if key, ok := v.(string); ok && key != "" {
				keys[key] = struct{}{}
			}
		}
	}

	return keys, nil
}
