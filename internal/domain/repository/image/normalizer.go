package image

import "photoshare/internal/domain/entity"

// Normalizer converts an uploaded image to the fixed output geometry.
type Normalizer interface {
	Normalize(data []byte) (entity.Image, error)
}
