package database

import "context"

type PostRemover interface {
	DeletePost(ctx context.Context, id string) (int64, error)
}
