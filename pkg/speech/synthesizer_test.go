package speech

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"agroadvisor-be/pkg/language"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	audio []byte
	err   error
	calls int
}

func (e *fakeEngine) Synthesize(ctx context.Context, text string) ([]byte, error) {
	e.calls++
	return e.audio, e.err
}

func (e *fakeEngine) Extension() string { return "mp3" }

type fakeWriter struct {
	filenames []string
}

func (w *fakeWriter) Write(filename string, data []byte) (string, error) {
	w.filenames = append(w.filenames, filename)
	return "/static/audio/" + filename, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestSynthesizeProducesAudioURL(t *testing.T) {
	engine := &fakeEngine{audio: []byte("mp3-bytes")}
	writer := &fakeWriter{}
	s := NewSynthesizer(map[language.Language]Engine{language.English: engine}, writer, nopLogger{})

	url, ok := s.Synthesize(context.Background(), "Water the seedlings daily.", language.English)

	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^/static/audio/response-\d+-en-[0-9a-f]+\.mp3$`), url)
}

func TestSynthesizeCachesRepeatedText(t *testing.T) {
	engine := &fakeEngine{audio: []byte("mp3-bytes")}
	writer := &fakeWriter{}
	s := NewSynthesizer(map[language.Language]Engine{language.English: engine}, writer, nopLogger{})

	first, ok := s.Synthesize(context.Background(), "Rotate your crops.", language.English)
	require.True(t, ok)
	second, ok := s.Synthesize(context.Background(), "Rotate your crops.", language.English)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, engine.calls)
}

func TestSynthesizeEngineFailureIsNotFatal(t *testing.T) {
	engine := &fakeEngine{err: errors.New("upstream down")}
	s := NewSynthesizer(map[language.Language]Engine{language.English: engine}, &fakeWriter{}, nopLogger{})

	url, ok := s.Synthesize(context.Background(), "Harvest in the morning.", language.English)

	assert.False(t, ok)
	assert.Empty(t, url)
}

func TestSynthesizeUnknownLanguage(t *testing.T) {
	s := NewSynthesizer(map[language.Language]Engine{}, &fakeWriter{}, nopLogger{})

	_, ok := s.Synthesize(context.Background(), "Bonjour", language.Language("fr"))

	assert.False(t, ok)
}

func TestSynthesizeEmptyAfterCleaning(t *testing.T) {
	engine := &fakeEngine{audio: []byte("mp3-bytes")}
	s := NewSynthesizer(map[language.Language]Engine{language.English: engine}, &fakeWriter{}, nopLogger{})

	_, ok := s.Synthesize(context.Background(), "** **", language.English)

	assert.False(t, ok)
	assert.Zero(t, engine.calls)
}
