package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanForSpeech(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold and italics stripped",
			in:   "Apply **NPK fertilizer** at _planting_ time.",
			want: "Apply NPK fertilizer at planting time.",
		},
		{
			name: "headings and bullets stripped",
			in:   "## Steps\n- Clear the land\n- Plant in rows",
			want: "Steps Clear the land Plant in rows",
		},
		{
			name: "blank lines become pauses",
			in:   "Water daily.\n\nCheck for pests weekly.",
			want: "Water daily.. Check for pests weekly.",
		},
		{
			name: "whitespace collapsed",
			in:   "  Mulch   heavily.  ",
			want: "Mulch heavily.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanForSpeech(tt.in))
		})
	}
}

func TestSplitChunks(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := splitChunks("Plant early.", 200)
		assert.Equal(t, []string{"Plant early."}, chunks)
	})

	t.Run("splits on sentence boundary", func(t *testing.T) {
		first := "Plant the maize after the first rains."
		second := " Weed the farm every two weeks."
		chunks := splitChunks(first+second, 50)

		assert.Equal(t, first, chunks[0])
		assert.Equal(t, second, chunks[1])
	})

	t.Run("no chunk exceeds the limit", func(t *testing.T) {
		long := "Cassava mosaic disease spreads through infected cuttings and whiteflies so always source clean planting material from certified multipliers"
		for _, chunk := range splitChunks(long, 40) {
			assert.LessOrEqual(t, len([]rune(chunk)), 40)
		}
	})
}
