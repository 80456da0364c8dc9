package usecase

import (
	"context"
	"fmt"
	"time"

	"photoshare/internal/domain/dto"
	"photoshare/internal/domain/repository/database"
	"photoshare/internal/domain/repository/minio"
)

type PostSearcher struct {
	searcher database.PostSearcher
	signer   urlSigner
}

func NewPostSearcher(searcher database.PostSearcher, signer minio.Signer, ttl time.Duration) *PostSearcher {
	return &PostSearcher{
		searcher: searcher,
		signer:   urlSigner{signer: signer, ttl: ttl},
	}
}

// Search matches term literally against each post's search term.
func (s *PostSearcher) Search(ctx context.Context, term string) ([]dto.PostView, error) {
	posts, err := s.searcher.SearchPosts(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}

	views, err := s.signer.posts(ctx, posts)
	if err != nil {
		return nil, fmt.Errorf("sign post images: %w", err)
	}

	return views, nil
}
