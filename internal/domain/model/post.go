package model

import "time"

// Post is a photo record. BlobKey is generated independently of ID and names the
// normalized image in the object store.
type Post struct {
	ID         string    `bson:"_id"        json:"id"`
	Caption    string    `bson:"caption"    json:"caption"`
	SearchTerm string    `bson:"searchTerm" json:"searchTerm"`
	BlobKey    string    `bson:"blobKey"    json:"blobKey"`
	PostedBy   string    `bson:"postedBy"   json:"postedBy"`
	CreatedAt  time.Time `bson:"createdAt"  json:"createdAt"`
}
