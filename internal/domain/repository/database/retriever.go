package database

import (
	"context"

	"photoshare/internal/domain/model"
)

// PostRetriever returns (nil, nil) when no post has the given id.
type PostRetriever interface {
	PostByID(ctx context.Context, id string) (*model.Post, error)
}

// UserRetriever returns (nil, nil) when no user has the given id.
type UserRetriever interface {
	UserByID(ctx context.Context, id string) (*model.User, error)
}
