package entity

import "time"

type StoredBlob struct {
	Key          string
	Size         int64
	LastModified time.Time
}
