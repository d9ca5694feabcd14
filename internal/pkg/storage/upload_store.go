package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// UploadStore keeps user-submitted images on the local filesystem, referenced
// by filename only. Files accumulate; there is no retention policy.
type UploadStore interface {
	Save(filename string, r io.Reader) (string, error)
	Read(filename string) ([]byte, string, error)
}

type uploadStore struct {
	dir string
}

func NewUploadStore(dir string) (UploadStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &uploadStore{dir: dir}, nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename flattens a client-supplied filename to a safe basename.
func SecureFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

func (s *uploadStore) Save(filename string, r io.Reader) (string, error) {
	safe := SecureFilename(filename)
	if safe == "" {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	dst, err := os.Create(filepath.Join(s.dir, safe))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return safe, nil
}

func (s *uploadStore) Read(filename string) ([]byte, string, error) {
	safe := SecureFilename(filename)
	if safe == "" {
		return nil, "", fmt.Errorf("invalid filename %q", filename)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, safe))
	if err != nil {
		return nil, "", fmt.Errorf("read upload %s: %w", safe, err)
	}
	return data, mimeTypeFor(safe), nil
}

func mimeTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
