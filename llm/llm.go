// Package llm invokes an OpenAI-compatible chat-completions endpoint to
// generate review feedback, in text-only or text+image form.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrEmptyGeneration is returned when the provider call succeeds but yields
// zero choices or only empty content. Callers must treat this as a failure,
// never as empty feedback.
var ErrEmptyGeneration = errors.New("provider returned no usable content")

// ProviderError carries the underlying transport or provider failure.
type ProviderError struct {
	Message string
	Wrapped error
}

func (e *ProviderError) Error() string {
	return "llm provider error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Wrapped
}

const (
	generationTemperature = 0.7
	maxTokensText         = 1000
	// image requests carry the full textual prompt plus the embedded payload,
	// responses about richer context get more room
	maxTokensVision = 2000
)

// Generator is the invocation contract the feedback orchestrator depends on.
// imageDataURI is empty for text-only prompts.
type Generator interface {
	Generate(ctx context.Context, prompt string, imageDataURI string) (string, error)
}

type Client struct {
	baseURL     string
	apiKey      string
	textModel   string
	visionModel string
	client      *http.Client
}

// Compile-time check: *Client satisfies the Generator interface.
var _ Generator = (*Client)(nil)

func NewClient(baseURL, apiKey, textModel, visionModel string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		textModel:   textModel,
		visionModel: visionModel,
		client:      &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"` // string, or []contentPart for vision
}

type contentPart struct {
	Type     string    `json:"type"` // "text" or "image_url"
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt and returns the provider's output text. A vision
// model is selected when an image attachment is present. The non-empty
// trimmed contents of all returned choices are joined by a blank line. No
// retry is performed; failures propagate to the caller.
func (c *Client) Generate(ctx context.Context, prompt string, imageDataURI string) (string, error) {
	var message chatMessage
	model := c.textModel
	maxTokens := maxTokensText
	if imageDataURI != "" {
		model = c.visionModel
		maxTokens = maxTokensVision
		message = chatMessage{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &imageURL{URL: imageDataURI}},
			},
		}
	} else {
		message = chatMessage{Role: "user", Content: prompt}
	}

	reqBody := chatRequest{
		Model:       model,
		Messages:    []chatMessage{message},
		Temperature: generationTemperature,
		MaxTokens:   maxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &ProviderError{Message: err.Error(), Wrapped: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Message: err.Error(), Wrapped: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{
			Message: fmt.Sprintf("unexpected status code %d: %s", resp.StatusCode, responseBody),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(responseBody, &chatResp); err != nil {
		return "", &ProviderError{Message: "failed to decode chat response: " + err.Error(), Wrapped: err}
	}

	parts := make([]string, 0, len(chatResp.Choices))
	for _, choice := range chatResp.Choices {
		content := strings.TrimSpace(choice.Message.Content)
		if content != "" {
			parts = append(parts, content)
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyGeneration
	}

	return strings.Join(parts, "\n\n"), nil
}
