package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/model"
)

type Retriever struct {
	db *Database
}

func NewRetriever(db *Database) *Retriever {
	return &Retriever{db: db}
}

func (r *Retriever) PostByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	found, err := r.findByID(ctx, PostCollection, id, &post)
	if err != nil || !found {
		return nil, err
	}

	return &post, nil
}

func (r *Retriever) UserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	found, err := r.findByID(ctx, UserCollection, id, &user)
	if err != nil || !found {
		return nil, err
	}

	return &user, nil
}

func (r *Retriever) findByID(ctx context.Context, collection, id string, out any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll, err := r.db.collection(collection)
	if err != nil {
		return false, err
	}

	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: find %s %s: %w", apperror.ErrRepository, collection, id, err)
	}

	return true, nil
}
