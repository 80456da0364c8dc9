package dto

import "photoshare/internal/domain/model"

// NewPost carries the multipart fields of a create-post request.
type NewPost struct {
	Caption    string
	SearchTerm string
	PostedBy   string
	File       []byte
}

// PostView is a post augmented with a signed URL for its image.
type PostView struct {
	model.Post
	ImageURL string `json:"imageUrl"`
}

type PostsResponse struct {
	Posts   []PostView `json:"posts"`
	Message string     `json:"message"`
}

type PostResponse struct {
	Post    PostView `json:"post"`
	Message string   `json:"message"`
}
