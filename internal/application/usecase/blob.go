package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"photoshare/internal/domain/dto"
	"photoshare/internal/domain/model"
	"photoshare/internal/domain/repository/broker"
	"photoshare/internal/domain/repository/minio"
	"photoshare/pkg/logger"
	"photoshare/pkg/utils"
)

// newBlobKey is independent of any record id.
func newBlobKey(contentType string) string {
	return uuid.NewString() + utils.GetExtensionFromMimeType(contentType)
}

// orphanReporter hands blobs without a record to the reclaim queue.
type orphanReporter struct {
	publisher broker.Publisher
}

func (o orphanReporter) report(ctx context.Context, key string) {
	if o.publisher == nil {
		logger.Error("orphaned blob left in object store, no reclaim queue configured", "key", key)

		return
	}

	// the request may already be cancelled; the key must still be queued.
	if err := o.publisher.Publish(context.WithoutCancel(ctx), key); err != nil {
		logger.Error("failed to publish orphaned blob", "key", key, "err", err)

		return
	}

	logger.Warn("orphaned blob queued for reclaim", "key", key)
}

// urlSigner signs every blob key of a result set. One failure fails the whole set.
type urlSigner struct {
	signer minio.Signer
	ttl    time.Duration
}

func (s urlSigner) post(ctx context.Context, post model.Post) (dto.PostView, error) {
	url, err := s.signer.SignedGetURL(ctx, post.BlobKey, s.ttl)
	if err != nil {
		return dto.PostView{}, err
	}

	return dto.PostView{Post: post, ImageURL: url}, nil
}

func (s urlSigner) posts(ctx context.Context, posts []model.Post) ([]dto.PostView, error) {
	views := make([]dto.PostView, 0, len(posts))
	for i := range posts {
		view, err := s.post(ctx, posts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (s urlSigner) user(ctx context.Context, user model.User) (dto.UserView, error) {
	url, err := s.signer.SignedGetURL(ctx, user.ProfileBlobKey, s.ttl)
	if err != nil {
		return dto.UserView{}, err
	}

	return dto.UserView{User: user, ProfilePictureURL: url}, nil
}

func (s urlSigner) users(ctx context.Context, users []model.User) ([]dto.UserView, error) {
	views := make([]dto.UserView, 0, len(users))
	for i := range users {
		view, err := s.user(ctx, users[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}
