package dto

import "photoshare/internal/domain/model"

type NewUser struct {
	FirstName string
	LastName  string
	Username  string
	File      []byte
}

// UserView is a user augmented with a signed URL for the profile picture.
type UserView struct {
	model.User
	ProfilePictureURL string `json:"profilePictureUrl"`
}

type UsersResponse struct {
	Users   []UserView `json:"users"`
	Message string     `json:"message"`
}

type UserResponse struct {
	User    UserView `json:"user"`
	Message string   `json:"message"`
}
