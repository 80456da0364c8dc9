package entity

// Image is the output of the normalizer: re-encoded bytes and their content type.
type Image struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}
