package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"photoshare/internal/domain/apperror"
)

type Remover struct {
	minioClient *minio.Client
	cfg         BucketConfig
	observer    Observer
}

func NewRemover(minioClient *minio.Client, cfg BucketConfig, observer Observer) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
		observer:    observerOrNop(observer),
	}
}

func (r *Remover) Remove(ctx context.Context, key string) (err error) {
	start := time.Now()
	defer func() { r.observer.RecordOperation(opRemove, time.Since(start), err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	err = r.minioClient.RemoveObject(ctx, r.cfg.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}

		return fmt.Errorf("%w: remove object %s: %w", apperror.ErrStorage, key, err)
	}

	return nil
}
