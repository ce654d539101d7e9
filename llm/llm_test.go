package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/newmoodle/backend/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatStub(t *testing.T, handler http.HandlerFunc) *llm.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return llm.NewClient(srv.URL, "test-key", "text-model", "vision-model", 5*time.Second)
}

func choicesResponse(contents ...string) map[string]any {
	choices := make([]map[string]any, 0, len(contents))
	for _, c := range contents {
		choices = append(choices, map[string]any{
			"message": map[string]any{"content": c},
		})
	}
	return map[string]any{"choices": choices}
}

func TestGenerateTextOnlySelectsTextModel(t *testing.T) {
	var gotReq map[string]any
	client := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(choicesResponse("  Solid work overall.  "))
	})

	out, err := client.Generate(context.Background(), "review this", "")
	require.NoError(t, err)
	assert.Equal(t, "Solid work overall.", out)
	assert.Equal(t, "text-model", gotReq["model"])
	assert.Equal(t, 0.7, gotReq["temperature"])
	assert.Equal(t, float64(1000), gotReq["max_tokens"])

	messages := gotReq["messages"].([]any)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "review this", msg["content"])
}

func TestGenerateWithImageSelectsVisionModel(t *testing.T) {
	var gotReq map[string]any
	client := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(choicesResponse("Feedback about the image."))
	})

	dataURI := "data:image/png;base64,aGVsbG8="
	out, err := client.Generate(context.Background(), "review the attached image", dataURI)
	require.NoError(t, err)
	assert.Equal(t, "Feedback about the image.", out)
	assert.Equal(t, "vision-model", gotReq["model"])
	assert.Equal(t, float64(2000), gotReq["max_tokens"])

	messages := gotReq["messages"].([]any)
	require.Len(t, messages, 1)
	parts := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	assert.Equal(t, "text", parts[0].(map[string]any)["type"])
	imagePart := parts[1].(map[string]any)
	assert.Equal(t, "image_url", imagePart["type"])
	assert.Equal(t, dataURI, imagePart["image_url"].(map[string]any)["url"])
}

func TestGenerateJoinsNonEmptyChoices(t *testing.T) {
	client := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(choicesResponse("First part. ", "", "  Second part."))
	})

	out, err := client.Generate(context.Background(), "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "First part.\n\nSecond part.", out)
}

func TestGenerateZeroChoicesIsEmptyGeneration(t *testing.T) {
	client := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(choicesResponse())
	})

	_, err := client.Generate(context.Background(), "prompt", "")
	assert.ErrorIs(t, err, llm.ErrEmptyGeneration)
}

func TestGenerateOnlyBlankChoicesIsEmptyGeneration(t *testing.T) {
	client := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(choicesResponse("", "   "))
	})

	_, err := client.Generate(context.Background(), "prompt", "")
	assert.ErrorIs(t, err, llm.ErrEmptyGeneration)
}

func TestGenerateProviderFailure(t *testing.T) {
	client := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), "prompt", "")
	var provErr *llm.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Message, "429")
	assert.Contains(t, provErr.Message, "rate limited")
}
