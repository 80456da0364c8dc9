package minio

import "context"

// Remover deletes an object. Removing a missing key is not an error.
type Remover interface {
	Remove(ctx context.Context, key string) error
}
