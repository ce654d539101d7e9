package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

// maxImageWidth bounds the pixel width of image payloads sent to the vision
// model. Phone photos of handwritten work are routinely 4000px wide; the
// model does not need that and the base64 blob would dominate the request.
const maxImageWidth = 1200

// extractImagePayload prepares an image submission for the vision model: the
// MIME type is derived from the classified suffix, and oversized png/jpeg
// images are downscaled and re-encoded. Formats the image package cannot
// decode (gif, webp) pass through untouched.
func extractImagePayload(content []byte, key string) (Result, error) {
	mimeType := ImageMimeType(key)

	switch mimeType {
	case "image/png", "image/jpeg":
		compressed, changed, err := downscaleImage(content, mimeType, maxImageWidth)
		if err != nil {
			return Result{}, &ExtractionError{Format: Image, Reason: err}
		}
		if changed {
			// re-encoding always yields jpeg
			return Result{IsImage: true, ImageMime: "image/jpeg", ImageBytes: compressed}, nil
		}
	}

	return Result{IsImage: true, ImageMime: mimeType, ImageBytes: content}, nil
}

// downscaleImage resizes an image to at most maxWidth pixels wide, keeping
// the aspect ratio, and re-encodes it as jpeg. It reports false when the
// image is already small enough and the original bytes should be kept.
func downscaleImage(content []byte, mimeType string, maxWidth uint) ([]byte, bool, error) {
	var img image.Image
	var err error

	switch mimeType {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(content))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(content))
	default:
		return nil, false, fmt.Errorf("unsupported image format: %s", mimeType)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image: %w", err)
	}

	if uint(img.Bounds().Dx()) <= maxWidth {
		return nil, false, nil
	}

	resized := resize.Resize(maxWidth, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, false, fmt.Errorf("failed to encode image to JPEG: %w", err)
	}
	return buf.Bytes(), true, nil
}
