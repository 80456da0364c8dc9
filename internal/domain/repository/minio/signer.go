package minio

import (
	"context"
	"time"
)

// Signer mints a presigned GET URL for key. It does not check that the object exists.
type Signer interface {
	SignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
