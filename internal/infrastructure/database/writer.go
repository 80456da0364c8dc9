package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/model"
)

type Writer struct {
	db *Database
}

func NewWriter(db *Database) *Writer {
	return &Writer{db: db}
}

func (w *Writer) InsertPost(ctx context.Context, post *model.Post) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll, err := w.db.collection(PostCollection)
	if err != nil {
		return err
	}

	if _, err := coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("%w: insert post %s: %w", apperror.ErrRepository, post.ID, err)
	}

	return nil
}

func (w *Writer) InsertUser(ctx context.Context, user *model.User) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll, err := w.db.collection(UserCollection)
	if err != nil {
		return err
	}

	_, err = coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: username %q already exists", apperror.ErrConflict, user.Username)
	}
	if err != nil {
		return fmt.Errorf("%w: insert user %s: %w", apperror.ErrRepository, user.ID, err)
	}

	return nil
}
