package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"agroadvisor-be/pkg/language"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTranslateResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "single segment",
			body: `[[["Hello","Bawo ni",null,null,10]],null,"yo"]`,
			want: "Hello",
		},
		{
			name: "multiple segments joined",
			body: `[[["Plant the maize ","Gbin agbado ",null,null],["after the first rains.","lẹhin ojo akọkọ.",null,null]],null,"yo"]`,
			want: "Plant the maize after the first rains.",
		},
		{
			name:    "empty payload",
			body:    `[]`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<html>blocked</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTranslateResponse([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoogleTranslatorTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "yo", r.URL.Query().Get("sl"))
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		assert.Equal(t, "Bawo ni", r.URL.Query().Get("q"))

		_, _ = w.Write([]byte(`[[["How are you","Bawo ni",null,null]],null,"yo"]`))
	}))
	defer srv.Close()

	tr := NewGoogleTranslatorWithBaseURL(srv.URL)
	got, err := tr.Translate(context.Background(), "Bawo ni", language.Yoruba, language.English)

	require.NoError(t, err)
	assert.Equal(t, "How are you", got)
}

func TestGoogleTranslatorSameLanguageSkipsCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not call upstream when source equals target")
	}))
	defer srv.Close()

	tr := NewGoogleTranslatorWithBaseURL(srv.URL)
	got, err := tr.Translate(context.Background(), "hello", language.English, language.English)

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}
