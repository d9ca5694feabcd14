package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agroadvisor-be/pkg/language"
)

// GoogleTranslator uses the unauthenticated translate_a endpoint. It needs no
// API key but offers no SLA, so callers should treat failures as transient.
type GoogleTranslator struct {
	baseURL    string
	httpClient *http.Client
}

func NewGoogleTranslator() *GoogleTranslator {
	return NewGoogleTranslatorWithBaseURL("https://translate.googleapis.com")
}

func NewGoogleTranslatorWithBaseURL(baseURL string) *GoogleTranslator {
	return &GoogleTranslator{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (t *GoogleTranslator) Translate(ctx context.Context, text string, source, target language.Language) (string, error) {
	if source == target || strings.TrimSpace(text) == "" {
		return text, nil
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", string(source))
	params.Set("tl", string(target))
	params.Set("dt", "t")
	params.Set("q", text)

	endpoint := fmt.Sprintf("%s/translate_a/single?%s", t.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}

	res, err := t.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	translated, err := parseTranslateResponse(resBody)
	if err != nil {
		return "", err
	}
	return translated, nil
}

// parseTranslateResponse extracts the translated text from the endpoint's
// nested-array payload: [[["<translated>","<original>",...],...],...].
func parseTranslateResponse(body []byte) (string, error) {
	var raw []interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("decode translation response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	segments, ok := raw[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected translation response shape")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if chunk, ok := parts[0].(string); ok {
			sb.WriteString(chunk)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no translated segments in response")
	}
	return sb.String(), nil
}
