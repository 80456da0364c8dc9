package usecase

import (
	"context"
	"fmt"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/repository/database"
	"photoshare/internal/domain/repository/minio"
)

// PostDeleter implements the PostDeleter abstraction.
type PostDeleter struct {
	dbRetriever  database.PostRetriever
	dbRemover    database.PostRemover
	minioRemover minio.Remover
}

func NewPostDeleter(dbRetriever database.PostRetriever, dbRemover database.PostRemover,
	minioRemover minio.Remover,
) *PostDeleter {
	return &PostDeleter{
		dbRetriever:  dbRetriever,
		dbRemover:    dbRemover,
		minioRemover: minioRemover,
	}
}

// Delete removes the image before the record, so a failed image delete keeps the
// record and its URL valid. Unknown ids never reach the object store.
func (d *PostDeleter) Delete(ctx context.Context, id string) error {
	post, err := d.dbRetriever.PostByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find post: %w", err)
	}
	if post == nil {
		return fmt.Errorf("%w: post %s", apperror.ErrNotFound, id)
	}

	if err := d.minioRemover.Remove(ctx, post.BlobKey); err != nil {
		return fmt.Errorf("remove post image: %w", err)
	}

	deleted, err := d.dbRemover.DeletePost(ctx, id)
	if err != nil {
		return fmt.Errorf("remove post record: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: post %s", apperror.ErrNotFound, id)
	}

	return nil
}
