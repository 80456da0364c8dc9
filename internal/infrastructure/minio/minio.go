package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"photoshare/internal/domain/apperror"
	"photoshare/pkg/logger"
)

type Client struct {
	MinioClient *minio.Client
	region      string
}

// New builds a client for any S3-compatible endpoint. Setting Region avoids a
// bucket-location lookup before every presign.
func New(cfg ClientConfig) (*Client, error) {
	logger.Info("connecting to object store", "endpoint", cfg.Endpoint, "region", cfg.Region)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: object store client: %w", apperror.ErrConnection, err)
	}

	return &Client{
		MinioClient: client,
		region:      cfg.Region,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := c.MinioClient.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("%w: check bucket %s: %w", apperror.ErrConnection, bucket, err)
	}
	if exists {
		return nil
	}

	if err := c.MinioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: c.region}); err != nil {
		return fmt.Errorf("%w: create bucket %s: %w", apperror.ErrConnection, bucket, err)
	}

	logger.Info("bucket created", "bucket", bucket)

	return nil
}
