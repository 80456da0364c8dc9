package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/dto"
	"photoshare/internal/domain/model"
	"photoshare/internal/domain/repository/broker"
	"photoshare/internal/domain/repository/database"
	"photoshare/internal/domain/repository/image"
	"photoshare/internal/domain/repository/minio"
)

type blobStore struct {
	normalizer    image.Normalizer
	minioUploader minio.Uploader
	orphans       orphanReporter
}

// put normalizes data and writes it under a fresh key.
func (b blobStore) put(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image file is required", apperror.ErrInvalidInput)
	}

	img, err := b.normalizer.Normalize(data)
	if err != nil {
		return "", err
	}

	key := newBlobKey(img.ContentType)
	if err := b.minioUploader.Put(ctx, key, img.Data, img.ContentType); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	return key, nil
}

type PostUploader struct {
	blobs  blobStore
	writer database.PostWriter
	now    func() time.Time
}

func NewPostUploader(normalizer image.Normalizer, minioUploader minio.Uploader, writer database.PostWriter,
	publisher broker.Publisher,
) *PostUploader {
	return &PostUploader{
		blobs: blobStore{
			normalizer:    normalizer,
			minioUploader: minioUploader,
			orphans:       orphanReporter{publisher: publisher},
		},
		writer: writer,
		now:    time.Now,
	}
}

// Upload writes the image first and the record second. If the record cannot be
// written the image key is reported as an orphan.
func (u *PostUploader) Upload(ctx context.Context, in dto.NewPost) (string, error) {
	key, err := u.blobs.put(ctx, in.File)
	if err != nil {
		return "", err
	}

	post := &model.Post{
		ID:         uuid.NewString(),
		Caption:    in.Caption,
		SearchTerm: in.SearchTerm,
		BlobKey:    key,
		PostedBy:   in.PostedBy,
		CreatedAt:  u.now().UTC(),
	}

	if err := u.writer.InsertPost(ctx, post); err != nil {
		u.blobs.orphans.report(ctx, key)

		return "", fmt.Errorf("save post: %w", err)
	}

	return post.ID, nil
}

type UserUploader struct {
	blobs  blobStore
	writer database.UserWriter
	now    func() time.Time
}

func NewUserUploader(normalizer image.Normalizer, minioUploader minio.Uploader, writer database.UserWriter,
	publisher broker.Publisher,
) *UserUploader {
	return &UserUploader{
		blobs: blobStore{
			normalizer:    normalizer,
			minioUploader: minioUploader,
			orphans:       orphanReporter{publisher: publisher},
		},
		writer: writer,
		now:    time.Now,
	}
}

// Upload creates a user. A taken username surfaces as apperror.ErrConflict from the
// unique index; the profile picture written before it is reported as an orphan.
func (u *UserUploader) Upload(ctx context.Context, in dto.NewUser) (string, error) {
	if strings.TrimSpace(in.Username) == "" {
		return "", fmt.Errorf("%w: username is required", apperror.ErrInvalidInput)
	}

	key, err := u.blobs.put(ctx, in.File)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:             uuid.NewString(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Username:       in.Username,
		ProfileBlobKey: key,
		CreatedAt:      u.now().UTC(),
	}

	if err := u.writer.InsertUser(ctx, user); err != nil {
		u.blobs.orphans.report(ctx, key)

		return "", fmt.Errorf("save user: %w", err)
	}

	return user.ID, nil
}
