package database

import (
	"context"

	"photoshare/internal/domain/model"
)

type PostLister interface {
	AllPosts(ctx context.Context) ([]model.Post, error)
}

type UserLister interface {
	AllUsers(ctx context.Context) ([]model.User, error)
}
