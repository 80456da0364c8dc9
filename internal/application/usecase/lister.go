package usecase

import (
	"context"
	"fmt"
	"time"

	"photoshare/internal/domain/dto"
	"photoshare/internal/domain/repository/database"
	"photoshare/internal/domain/repository/minio"
)

type PostLister struct {
	lister database.PostLister
	signer urlSigner
}

func NewPostLister(lister database.PostLister, signer minio.Signer, ttl time.Duration) *PostLister {
	return &PostLister{
		lister: lister,
		signer: urlSigner{signer: signer, ttl: ttl},
	}
}

// List returns every post, newest first, each with a signed image URL.
func (l *PostLister) List(ctx context.Context) ([]dto.PostView, error) {
	posts, err := l.lister.AllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	views, err := l.signer.posts(ctx, posts)
	if err != nil {
		return nil, fmt.Errorf("sign post images: %w", err)
	}

	return views, nil
}

type UserLister struct {
	lister database.UserLister
	signer urlSigner
}

func NewUserLister(lister database.UserLister, signer minio.Signer, ttl time.Duration) *UserLister {
	return &UserLister{
		lister: lister,
		signer: urlSigner{signer: signer, ttl: ttl},
	}
}

func (l *UserLister) List(ctx context.Context) ([]dto.UserView, error) {
	users, err := l.lister.AllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	views, err := l.signer.users(ctx, users)
	if err != nil {
		return nil, fmt.Errorf("sign profile pictures: %w", err)
	}

	return views, nil
}
