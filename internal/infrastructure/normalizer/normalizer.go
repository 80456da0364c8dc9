package normalizer

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	// webp has a decoder but no encoder; webp uploads are re-encoded as JPEG.
	_ "golang.org/x/image/webp"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/entity"
)

const (
	DefaultSize           = 1000
	DefaultJPEGQuality    = 90
	DefaultMaxInputPixels = 50_000_000
)

var outputFormats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
	"image/tiff": imaging.TIFF,
	"image/bmp":  imaging.BMP,
	"image/webp": imaging.JPEG,
}

var contentTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
	imaging.TIFF: "image/tiff",
	imaging.BMP:  "image/bmp",
}

// Normalizer cover-fits every image onto a fixed canvas: the image is scaled to
// fill it, preserving aspect ratio, and the overflow is cropped around the center.
type Normalizer struct {
	width     int
	height    int
	quality   int
	maxPixels int64
}

func New(cfg Config) *Normalizer {
	n := &Normalizer{
		width:     cfg.Width,
		height:    cfg.Height,
		quality:   cfg.JPEGQuality,
		maxPixels: cfg.MaxInputPixels,
	}
	if n.width <= 0 {
		n.width = DefaultSize
	}
	if n.height <= 0 {
		n.height = DefaultSize
	}
	if n.quality <= 0 || n.quality > 100 {
		n.quality = DefaultJPEGQuality
	}
	if n.maxPixels <= 0 {
		n.maxPixels = DefaultMaxInputPixels
	}

	return n
}

func (n *Normalizer) Normalize(data []byte) (entity.Image, error) {
	if len(data) == 0 {
		return entity.Image{}, fmt.Errorf("%w: %w", apperror.ErrImage, errors.New("empty upload"))
	}

	detected := mimetype.Detect(data).String()
	format, ok := outputFormats[detected]
	if !ok {
		return entity.Image{}, fmt.Errorf("%w: unsupported content type %s", apperror.ErrImage, detected)
	}

	// only the header is read here; the pixel buffer is never allocated for oversized input.
	header, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return entity.Image{}, fmt.Errorf("%w: decode %s header: %w", apperror.ErrImage, detected, err)
	}
	if pixels := int64(header.Width) * int64(header.Height); pixels > n.maxPixels {
		return entity.Image{}, fmt.Errorf("%w: %dx%d exceeds the %d pixel input limit",
			apperror.ErrImage, header.Width, header.Height, n.maxPixels)
	}

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return entity.Image{}, fmt.Errorf("%w: decode %s: %w", apperror.ErrImage, detected, err)
	}

	dst := imaging.Fill(src, n.width, n.height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, format, imaging.JPEGQuality(n.quality)); err != nil {
		return entity.Image{}, fmt.Errorf("%w: encode %s: %w", apperror.ErrImage, format, err)
	}

	return entity.Image{
		Data:        buf.Bytes(),
		ContentType: contentTypes[format],
		Width:       n.width,
		Height:      n.height,
	}, nil
}
