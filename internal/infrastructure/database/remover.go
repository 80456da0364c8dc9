package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"photoshare/internal/domain/apperror"
)

type Remover struct {
	db *Database
}

func NewRemover(db *Database) *Remover {
	return &Remover{db: db}
}

func (r *Remover) DeletePost(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll, err := r.db.collection(PostCollection)
	if err != nil {
		return 0, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("%w: delete post %s: %w", apperror.ErrRepository, id, err)
	}

	return res.DeletedCount, nil
}
