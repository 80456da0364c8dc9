package abstraction

import (
	"context"

	"photoshare/internal/domain/dto"
)

type PostSearcher interface {
	Search(ctx context.Context, term string) ([]dto.PostView, error)
}
