// Package extract turns stored submission files into reviewable content:
// plain text for textual formats, a bounded base64 payload for images.
package extract

import (
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrUnsupportedFormat is returned when a key classifies as Unsupported.
// No extraction or provider call is ever attempted for such keys.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ExtractionError wraps a parser or provider failure on an otherwise
// supported format.
type ExtractionError struct {
	Format Format
	Reason error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s content: %v", e.Format, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Reason
}

// Result is the outcome of extracting a stored file. Either Text is set, or
// IsImage is true and the image payload fields are populated.
type Result struct {
	Text string

	IsImage    bool
	ImageMime  string
	ImageBytes []byte
}

// DataURI renders an image result as a data URI suitable for embedding in a
// vision-model request.
func (r Result) DataURI() string {
	b64 := base64.StdEncoding.EncodeToString(r.ImageBytes)
	return "data:" + r.ImageMime + ";base64," + b64
}

// Extract produces the reviewable content of a file given its raw bytes and
// the format its key classified into. Image formats perform no text
// extraction here; the result flags that the content must be carried as an
// image payload (see TextViaOCR for the text alternative).
func Extract(content []byte, format Format, key string) (Result, error) {
	switch format {
	case PlainText:
		return extractPlainText(content)
	case PdfDocument:
		text, err := extractPdfText(content)
		if err != nil {
			return Result{}, &ExtractionError{Format: format, Reason: err}
		}
		return Result{Text: text}, nil
	case WordDocument:
		text, err := extractDocxText(content)
		if err != nil {
			return Result{}, &ExtractionError{Format: format, Reason: err}
		}
		return Result{Text: text}, nil
	case Image:
		return extractImagePayload(content, key)
	default:
		return Result{}, ErrUnsupportedFormat
	}
}

func extractPlainText(content []byte) (Result, error) {
	if !utf8.Valid(content) {
		return Result{}, &ExtractionError{
			Format: PlainText,
			Reason: errors.New("content is not valid UTF-8"),
		}
	}
	return Result{Text: string(content)}, nil
}
