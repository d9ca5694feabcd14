package speech

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"agroadvisor-be/internal/pkg/logger"
	"agroadvisor-be/pkg/language"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Engine produces raw audio for one language.
type Engine interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Extension() string
}

// AudioWriter persists audio bytes and returns their public URL.
type AudioWriter interface {
	Write(filename string, data []byte) (string, error)
}

// Synthesizer turns advisory text into a fetchable audio URL. Synthesis is
// best effort: any failure yields ok=false and the chat flow carries on
// without audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang language.Language) (string, bool)
}

type synthesizer struct {
	engines map[language.Language]Engine
	store   AudioWriter
	cache   *gocache.Cache
	log     logger.ILogger
}

func NewSynthesizer(engines map[language.Language]Engine, store AudioWriter, log logger.ILogger) Synthesizer {
	return &synthesizer{
		engines: engines,
		store:   store,
		cache:   gocache.New(1*time.Hour, 10*time.Minute),
		log:     log,
	}
}

func (s *synthesizer) Synthesize(ctx context.Context, text string, lang language.Language) (string, bool) {
	cleaned := CleanForSpeech(text)
	if cleaned == "" {
		return "", false
	}

	cacheKey := fmt.Sprintf("%s:%x", lang, sha256.Sum256([]byte(cleaned)))
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(string), true
	}

	engine, ok := s.engines[lang]
	if !ok {
		s.log.Warn("Speech", "No synthesis engine for language", map[string]interface{}{
			"language": string(lang),
		})
		return "", false
	}

	audio, err := engine.Synthesize(ctx, cleaned)
	if err != nil {
		s.log.Warn("Speech", "Audio synthesis failed", map[string]interface{}{
			"language": string(lang),
			"error":    err.Error(),
		})
		return "", false
	}

	filename := audioFilename(lang, engine.Extension())
	url, err := s.store.Write(filename, audio)
	if err != nil {
		s.log.Warn("Speech", "Failed to store synthesized audio", map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		})
		return "", false
	}

	s.cache.Set(cacheKey, url, gocache.DefaultExpiration)
	return url, true
}

// audioFilename includes a random suffix so concurrent requests in the same
// second cannot overwrite each other's files.
func audioFilename(lang language.Language, ext string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("response-%d-%s-%s.%s", time.Now().Unix(), lang, suffix, ext)
}
