package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MmsEngine synthesizes speech through the Hugging Face inference API. The
// MMS checkpoints return WAV audio.
type MmsEngine struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewMmsEngine(apiKey, model string) *MmsEngine {
	return NewMmsEngineWithBaseURL("https://api-inference.huggingface.co", apiKey, model)
}

func NewMmsEngineWithBaseURL(baseURL, apiKey, model string) *MmsEngine {
	return &MmsEngine{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (e *MmsEngine) Extension() string {
	return "wav"
}

func (e *MmsEngine) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if e.apiKey == "" {
		return nil, fmt.Errorf("hugging face api key is not configured")
	}

	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s", e.baseURL, e.model)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	if len(resBody) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}
	return resBody, nil
}
