package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/model"
)

type Lister struct {
	db *Database
}

func NewLister(db *Database) *Lister {
	return &Lister{db: db}
}

// AllPosts is a full collection scan, newest first.
func (l *Lister) AllPosts(ctx context.Context) ([]model.Post, error) {
	posts := make([]model.Post, 0)
	if err := findAll(ctx, l.db, PostCollection, bson.M{}, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (l *Lister) AllUsers(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := findAll(ctx, l.db, UserCollection, bson.M{}, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func findAll(ctx context.Context, db *Database, collection string, filter bson.M, out any) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	coll, err := db.collection(collection)
	if err != nil {
		return err
	}

	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return fmt.Errorf("%w: find %s: %w", apperror.ErrRepository, collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", apperror.ErrRepository, collection, err)
	}

	return nil
}
