package utils

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "text/plain; charset=utf-8")
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])

	m := mimetype.Lookup(cleaned)
	if m == nil || m.Extension() == "" {
		return ".bin"
	}

	return m.Extension()
}
