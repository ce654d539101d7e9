package objstore

import (
	"mime"
	"path/filepath"

	"github.com/wailsapp/mimetype"
)

const defaultMimeType = "application/octet-stream"

// MimeType derives the media type of a stored object from its key's
// extension. Keys without a known extension fall back to the default binary
// type.
func MimeType(key string) string {
	mType := mime.TypeByExtension(filepath.Ext(key))
	if mType == "" {
		return defaultMimeType
	}
	return mType
}

// SniffMimeType detects the media type from content when the key's extension
// gives nothing away. Used on upload so S3 objects carry a usable
// Content-Type.
func SniffMimeType(key string, content []byte) string {
	if mType := mime.TypeByExtension(filepath.Ext(key)); mType != "" {
		return mType
	}
	if detected := mimetype.Detect(content); detected != nil {
		return detected.String()
	}
	return defaultMimeType
}
