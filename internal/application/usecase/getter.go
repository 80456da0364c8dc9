package usecase

import (
	"context"
	"fmt"
	"time"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/dto"
	"photoshare/internal/domain/repository/database"
	"photoshare/internal/domain/repository/minio"
)

type PostGetter struct {
	retriever database.PostRetriever
	signer    urlSigner
}

func NewPostGetter(retriever database.PostRetriever, signer minio.Signer, ttl time.Duration) *PostGetter {
	return &PostGetter{
		retriever: retriever,
		signer:    urlSigner{signer: signer, ttl: ttl},
	}
}

// Get returns the post with a signed URL for its blob key.
func (g *PostGetter) Get(ctx context.Context, id string) (dto.PostView, error) {
	post, err := g.retriever.PostByID(ctx, id)
	if err != nil {
		return dto.PostView{}, fmt.Errorf("find post: %w", err)
	}
	if post == nil {
		return dto.PostView{}, fmt.Errorf("%w: post %s", apperror.ErrNotFound, id)
	}

	view, err := g.signer.post(ctx, *post)
	if err != nil {
		return dto.PostView{}, fmt.Errorf("sign post image: %w", err)
	}

	return view, nil
}

type UserGetter struct {
	retriever database.UserRetriever
	signer    urlSigner
}

func NewUserGetter(retriever database.UserRetriever, signer minio.Signer, ttl time.Duration) *UserGetter {
	return &UserGetter{
		retriever: retriever,
		signer:    urlSigner{signer: signer, ttl: ttl},
	}
}

func (g *UserGetter) Get(ctx context.Context, id string) (dto.UserView, error) {
	user, err := g.retriever.UserByID(ctx, id)
	if err != nil {
		return dto.UserView{}, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return dto.UserView{}, fmt.Errorf("%w: user %s", apperror.ErrNotFound, id)
	}

	view, err := g.signer.user(ctx, *user)
	if err != nil {
		return dto.UserView{}, fmt.Errorf("sign profile picture: %w", err)
	}

	return view, nil
}
