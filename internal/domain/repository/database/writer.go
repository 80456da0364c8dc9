package database

import (
	"context"

	"photoshare/internal/domain/model"
)

type PostWriter interface {
	InsertPost(ctx context.Context, post *model.Post) error
}

// UserWriter fails with apperror.ErrConflict when the username is already taken.
type UserWriter interface {
	InsertUser(ctx context.Context, user *model.User) error
}
