package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"leaf.jpg", "leaf.jpg"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureFilename(tt.in))
		})
	}
}

func TestUploadStoreRoundTrip(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("cassava leaf.png", strings.NewReader("fake-png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "cassava_leaf.png", name)

	data, mime, err := store.Read(name)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png-bytes"), data)
	assert.Equal(t, "image/png", mime)
}

func TestUploadStoreRejectsEmptyName(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("..", strings.NewReader("x"))
	assert.Error(t, err)
}
