package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// gttsMaxChunk is the longest query the translate_tts endpoint accepts.
const gttsMaxChunk = 200

// GttsEngine fetches MP3 audio from Google Translate's text-to-speech
// endpoint. MP3 frames are self-delimiting, so chunked requests can be
// concatenated into a single playable file.
type GttsEngine struct {
	baseURL    string
	lang       string
	httpClient *http.Client
}

func NewGttsEngine(lang string) *GttsEngine {
	return NewGttsEngineWithBaseURL("https://translate.google.com", lang)
}

func NewGttsEngineWithBaseURL(baseURL, lang string) *GttsEngine {
	return &GttsEngine{
		baseURL: baseURL,
		lang:    lang,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (e *GttsEngine) Extension() string {
	return "mp3"
}

func (e *GttsEngine) Synthesize(ctx context.Context, text string) ([]byte, error) {
	var audio []byte
	for _, chunk := range splitChunks(text, gttsMaxChunk) {
		data, err := e.fetchChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		audio = append(audio, data...)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("no audio produced for text")
	}
	return audio, nil
}

func (e *GttsEngine) fetchChunk(ctx context.Context, chunk string) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", e.lang)
	params.Set("q", chunk)

	endpoint := fmt.Sprintf("%s/translate_tts?%s", e.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status error, got status %d", res.StatusCode)
	}

	return io.ReadAll(res.Body)
}

// splitChunks breaks text into pieces no longer than max runes, preferring
// to split after sentence punctuation, then after whitespace.
func splitChunks(text string, max int) []string {
	runes := []rune(text)
	var chunks []string

	for len(runes) > 0 {
		if len(runes) <= max {
			chunks = append(chunks, string(runes))
			break
		}

		cut := lastIndexFunc(runes[:max], func(r rune) bool {
			return r == '.' || r == '!' || r == '?'
		})
		if cut < 0 {
			cut = lastIndexFunc(runes[:max], func(r rune) bool {
				return r == ' ' || r == '\n'
			})
		}
		if cut < 0 {
			cut = max - 1
		}
		cut++

		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}

	return chunks
}

func lastIndexFunc(runes []rune, match func(rune) bool) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if match(runes[i]) {
			return i
		}
	}
	return -1
}
