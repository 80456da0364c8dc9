package model

import "time"

type User struct {
	ID             string    `bson:"_id"            json:"id"`
	FirstName      string    `bson:"firstName"      json:"firstName"`
	LastName       string    `bson:"lastName"       json:"lastName"`
	Username       string    `bson:"username"       json:"username"`
	ProfileBlobKey string    `bson:"profileBlobKey" json:"profileBlobKey"`
	CreatedAt      time.Time `bson:"createdAt"      json:"createdAt"`
}
