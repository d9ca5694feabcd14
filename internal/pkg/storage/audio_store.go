package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// AudioStore writes synthesized audio under the static audio directory and
// returns the URL path clients fetch it from.
type AudioStore interface {
	Write(filename string, data []byte) (string, error)
}

type audioStore struct {
	dir string
}

func NewAudioStore(dir string) (AudioStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &audioStore{dir: dir}, nil
}

func (s *audioStore) Write(filename string, data []byte) (string, error) {
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return "/static/audio/" + filename, nil
}
