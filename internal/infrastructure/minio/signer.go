package minio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"photoshare/internal/domain/apperror"
)

const DefaultSignedURLTTL = time.Hour

type Signer struct {
	minioClient *minio.Client
	cfg         BucketConfig
	observer    Observer
}

func NewSigner(minioClient *minio.Client, cfg BucketConfig, observer Observer) *Signer {
	return &Signer{
		minioClient: minioClient,
		cfg:         cfg,
		observer:    observerOrNop(observer),
	}
}

// DefaultTTL is the configured expiry, or one hour when unset.
func (s *Signer) DefaultTTL() time.Duration {
	if s.cfg.SignedURLTTL <= 0 {
		return DefaultSignedURLTTL
	}

	return time.Duration(s.cfg.SignedURLTTL) * time.Second
}

// SignedGetURL presigns a GET for key. A non-positive ttl uses DefaultTTL.
// Expiry is enforced by the object store.
func (s *Signer) SignedGetURL(ctx context.Context, key string, ttl time.Duration) (_ string, err error) {
	start := time.Now()
	defer func() { s.observer.RecordOperation(opSign, time.Since(start), err) }()

	if key == "" {
		return "", fmt.Errorf("%w: sign: %w", apperror.ErrStorage, errors.New("empty object key"))
	}
	if ttl <= 0 {
		ttl = s.DefaultTTL()
	}

	u, err := s.minioClient.PresignedGetObject(ctx, s.cfg.Bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("%w: sign object %s: %w", apperror.ErrStorage, key, err)
	}

	return u.String(), nil
}
