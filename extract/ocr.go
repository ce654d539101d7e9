package extract

import "context"

// TextRecognizer is the OCR provider capability the text sub-path depends on.
type TextRecognizer interface {
	RecognizeText(ctx context.Context, imageBytes []byte) (string, error)
}

// TextViaOCR is the alternate image sub-path for pipelines that want text
// instead of vision-model input: the image bytes go to the OCR provider and
// the recognized text comes back as a textual result. Provider failures
// surface as extraction errors carrying the provider's message.
func TextViaOCR(ctx context.Context, recognizer TextRecognizer, content []byte) (Result, error) {
	text, err := recognizer.RecognizeText(ctx, content)
	if err != nil {
		return Result{}, &ExtractionError{Format: Image, Reason: err}
	}
	return Result{Text: text}, nil
}
