package abstraction

import (
	"context"

	"photoshare/internal/domain/dto"
)

type PostLister interface {
	List(ctx context.Context) ([]dto.PostView, error)
}

type UserLister interface {
	List(ctx context.Context) ([]dto.UserView, error)
}
