package minio

import (
	"context"

	"photoshare/internal/domain/entity"
)

type Lister interface {
	ListBlobs(ctx context.Context) ([]entity.StoredBlob, error)
}
