package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiProviderGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "How do I treat cassava blight?", req.Contents[0].Parts[0].Text)

		_ = json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []*geminiCandidate{
				{Content: &geminiContent{Parts: []*geminiPart{{Text: "Use resistant cultivars."}}}},
			},
		})
	}))
	defer srv.Close()

	provider := NewGeminiProvider("test-key", "gemini-2.5-flash", srv.URL)
	answer, err := provider.Generate(context.Background(), "How do I treat cassava blight?", nil)

	require.NoError(t, err)
	assert.Equal(t, "Use resistant cultivars.", answer)
}

func TestGeminiProviderGenerateWithImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents[0].Parts, 2)

		inline := req.Contents[0].Parts[1].InlineData
		require.NotNil(t, inline)
		assert.Equal(t, "image/png", inline.MimeType)
		assert.NotEmpty(t, inline.Data)

		_ = json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []*geminiCandidate{
				{Content: &geminiContent{Parts: []*geminiPart{{Text: "Looks like leaf spot."}}}},
			},
		})
	}))
	defer srv.Close()

	provider := NewGeminiProvider("test-key", "gemini-2.5-flash", srv.URL)
	answer, err := provider.Generate(context.Background(), "What is wrong with this plant?", &ImageAttachment{
		MimeType: "image/png",
		Data:     []byte{0x89, 0x50, 0x4e, 0x47},
	})

	require.NoError(t, err)
	assert.Equal(t, "Looks like leaf spot.", answer)
}

func TestGeminiProviderGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider := NewGeminiProvider("test-key", "gemini-2.5-flash", srv.URL)
	_, err := provider.Generate(context.Background(), "hello", nil)

	assert.Error(t, err)
}

func TestGeminiProviderGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer srv.Close()

	provider := NewGeminiProvider("test-key", "gemini-2.5-flash", srv.URL)
	_, err := provider.Generate(context.Background(), "hello", nil)

	assert.Error(t, err)
}
