package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		tag     string
		want    Language
		wantErr bool
	}{
		{tag: "", want: English},
		{tag: "en", want: English},
		{tag: "yo", want: Yoruba},
		{tag: "fr", wantErr: true},
		{tag: "EN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("tag_"+tt.tag, func(t *testing.T) {
			got, err := Parse(tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
