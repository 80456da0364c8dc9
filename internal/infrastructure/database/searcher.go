package database

import (
	"context"
	"regexp"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoshare/internal/domain/model"
)

type Searcher struct {
	db *Database
}

func NewSearcher(db *Database) *Searcher {
	return &Searcher{db: db}
}

// SearchPosts treats term as literal text: every regex metacharacter is escaped
// before the $regex filter is built. Matching is case-sensitive. Stored terms
// are valid UTF-8, so a term that is not matches nothing.
func (s *Searcher) SearchPosts(ctx context.Context, term string) ([]model.Post, error) {
	if !utf8.ValidString(term) {
		return []model.Post{}, nil
	}

	filter := bson.M{"searchTerm": primitive.Regex{Pattern: regexp.QuoteMeta(term)}}

	posts := make([]model.Post, 0)
	if err := findAll(ctx, s.db, PostCollection, filter, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}
