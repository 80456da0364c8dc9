package minio

import "context"

type Uploader interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}
