package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"photoshare/internal/domain/apperror"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         BucketConfig
	observer    Observer
}

func NewUploader(minioClient *minio.Client, cfg BucketConfig, observer Observer) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
		observer:    observerOrNop(observer),
	}
}

// Put writes data under key, replacing any previous object with that key.
func (u *Uploader) Put(ctx context.Context, key string, data []byte, contentType string) (err error) {
	start := time.Now()
	defer func() { u.observer.RecordPut(time.Since(start), len(data), err) }()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	_, err = u.minioClient.PutObject(ctx, u.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return fmt.Errorf("%w: put object %s: %w", apperror.ErrStorage, key, err)
	}

	return nil
}
