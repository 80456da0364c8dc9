package abstraction

import (
	"context"

	"photoshare/internal/domain/dto"
)

// PostUploader stores a normalized image and records a post pointing at it.
type PostUploader interface {
	Upload(ctx context.Context, post dto.NewPost) (string, error)
}

// UserUploader stores a normalized profile picture and records a user pointing at it.
type UserUploader interface {
	Upload(ctx context.Context, user dto.NewUser) (string, error)
}
