package dto

type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned by the upload endpoints.
type CreatedResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	ID      string `json:"id"`
}
