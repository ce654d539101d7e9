package extract

import "strings"

// Format is the content category a stored file key classifies into.
type Format int

const (
	Unsupported Format = iota
	PlainText
	PdfDocument
	WordDocument
	Image
)

func (f Format) String() string {
	switch f {
	case PlainText:
		return "plain_text"
	case PdfDocument:
		return "pdf_document"
	case WordDocument:
		return "word_document"
	case Image:
		return "image"
	default:
		return "unsupported"
	}
}

// Classify maps a file key to its content category based on the lowercased
// suffix after the last dot. Keys without a dot classify as Unsupported.
// Classify is pure and never fails.
func Classify(key string) Format {
	idx := strings.LastIndex(key, ".")
	if idx < 0 || idx == len(key)-1 {
		return Unsupported
	}
	switch strings.ToLower(key[idx+1:]) {
	case "txt":
		return PlainText
	case "pdf":
		return PdfDocument
	case "docx":
		return WordDocument
	case "png", "jpg", "jpeg", "gif", "webp":
		return Image
	default:
		return Unsupported
	}
}

// ImageMimeType maps a classified image key to its media type. Non-image
// suffixes fall back to the default binary type.
func ImageMimeType(key string) string {
	idx := strings.LastIndex(key, ".")
	if idx < 0 {
		return "application/octet-stream"
	}
	switch strings.ToLower(key[idx+1:]) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
