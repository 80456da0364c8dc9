package database

import "context"

// KeyIndex answers which object-store keys are still referenced by a record.
type KeyIndex interface {
	IsReferenced(ctx context.Context, blobKey string) (bool, error)
	ReferencedKeys(ctx context.Context) (map[string]struct{}, error)
}
