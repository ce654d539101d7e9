// Package ocr talks to the Google Vision images:annotate endpoint to
// recognize text in uploaded images.
package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NoTextFound is returned when the provider responds successfully but finds
// no text annotation in the image.
const NoTextFound = "No text found in image."

// ProviderError carries the message the OCR provider reported.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "ocr provider error: " + e.Message
}

type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(endpoint string, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type annotateRequest struct {
	Requests []imageRequest `json:"requests"`
}

type imageRequest struct {
	Image    imageContent `json:"image"`
	Features []feature    `json:"features"`
}

type imageContent struct {
	Content string `json:"content"` // base64
}

type feature struct {
	Type string `json:"type"`
}

type annotateResponse struct {
	Responses []imageResponse `json:"responses"`
}

type imageResponse struct {
	FullTextAnnotation *textAnnotation `json:"fullTextAnnotation"`
	Error              *providerStatus `json:"error"`
}

type textAnnotation struct {
	Text string `json:"text"`
}

type providerStatus struct {
	Message string `json:"message"`
}

// RecognizeText runs TEXT_DETECTION over the image and returns the full text
// annotation. An empty annotation yields the NoTextFound sentinel; an error
// the provider reports for the image surfaces as a ProviderError with the
// provider's message.
func (c *Client) RecognizeText(ctx context.Context, imageBytes []byte) (string, error) {
	reqBody := annotateRequest{
		Requests: []imageRequest{{
			Image:    imageContent{Content: base64.StdEncoding.EncodeToString(imageBytes)},
			Features: []feature{{Type: "TEXT_DETECTION"}},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal annotate request: %w", err)
	}

	url := c.endpoint
	if c.apiKey != "" {
		url += "?key=" + c.apiKey
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create annotate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{
			Message: fmt.Sprintf("unexpected status code %d: %s", resp.StatusCode, responseBody),
		}
	}

	var annotated annotateResponse
	if err := json.Unmarshal(responseBody, &annotated); err != nil {
		return "", &ProviderError{Message: "failed to decode annotate response: " + err.Error()}
	}

	var sb bytes.Buffer
	for _, r := range annotated.Responses {
		if r.Error != nil {
			return "", &ProviderError{Message: r.Error.Message}
		}
		if r.FullTextAnnotation != nil {
			sb.WriteString(r.FullTextAnnotation.Text)
		}
	}

	if sb.Len() == 0 {
		return NoTextFound, nil
	}
	return sb.String(), nil
}
