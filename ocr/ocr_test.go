package ocr_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/newmoodle/backend/ocr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisionStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestRecognizeTextReturnsAnnotation(t *testing.T) {
	srv := newVisionStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "requests")

		json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]any{
				{"fullTextAnnotation": map[string]any{"text": "recognized homework text"}},
			},
		})
	})

	client := ocr.NewClient(srv.URL, "", 5*time.Second)
	text, err := client.RecognizeText(context.Background(), []byte{0x89, 0x50})
	require.NoError(t, err)
	assert.Equal(t, "recognized homework text", text)
}

func TestRecognizeTextNoAnnotation(t *testing.T) {
	srv := newVisionStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]any{{}},
		})
	})

	client := ocr.NewClient(srv.URL, "", 5*time.Second)
	text, err := client.RecognizeText(context.Background(), []byte{1})
	require.NoError(t, err)
	assert.Equal(t, ocr.NoTextFound, text)
}

func TestRecognizeTextProviderReportedError(t *testing.T) {
	srv := newVisionStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]any{
				{"error": map[string]any{"message": "image too large"}},
			},
		})
	})

	client := ocr.NewClient(srv.URL, "", 5*time.Second)
	_, err := client.RecognizeText(context.Background(), []byte{1})
	var provErr *ocr.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "image too large", provErr.Message)
}

func TestRecognizeTextBadStatusCode(t *testing.T) {
	srv := newVisionStub(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	client := ocr.NewClient(srv.URL, "", 5*time.Second)
	_, err := client.RecognizeText(context.Background(), []byte{1})
	var provErr *ocr.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Message, "403")
}
