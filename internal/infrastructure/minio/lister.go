package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/entity"
)

type Lister struct {
	minioClient *minio.Client
	cfg         BucketConfig
	observer    Observer
}

func NewLister(minioClient *minio.Client, cfg BucketConfig, observer Observer) *Lister {
	return &Lister{
		minioClient: minioClient,
		cfg:         cfg,
		observer:    observerOrNop(observer),
	}
}

// ListBlobs returns every object in the bucket. It has no timeout of its own;
// callers bound it with ctx.
func (l *Lister) ListBlobs(ctx context.Context) (_ []entity.StoredBlob, err error) {
	start := time.Now()
	defer func() { l.observer.RecordOperation(opList, time.Since(start), err) }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	blobs := make([]entity.StoredBlob, 0)
	for obj := range l.minioClient.ListObjects(ctx, l.cfg.Bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("%w: list bucket %s: %w", apperror.ErrStorage, l.cfg.Bucket, obj.Err)
		}

		blobs = append(blobs, entity.StoredBlob{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	return blobs, nil
}
