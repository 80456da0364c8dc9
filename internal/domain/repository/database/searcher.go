package database

import (
	"context"

	"photoshare/internal/domain/model"
)

// PostSearcher matches term as a literal, case-sensitive substring of the post search term.
type PostSearcher interface {
	SearchPosts(ctx context.Context, term string) ([]model.Post, error)
}
