package abstraction

import "context"

// PostDeleter removes a post's image and then its record.
type PostDeleter interface {
	Delete(ctx context.Context, id string) error
}
