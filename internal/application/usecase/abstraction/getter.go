package abstraction

import (
	"context"

	"photoshare/internal/domain/dto"
)

type PostGetter interface {
	Get(ctx context.Context, id string) (dto.PostView, error)
}

type UserGetter interface {
	Get(ctx context.Context, id string) (dto.UserView, error)
}
