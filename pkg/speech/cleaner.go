package speech

import (
	"regexp"
	"strings"
)

var (
	boldMarkers   = regexp.MustCompile(`\*\*|__`)
	italicMarkers = regexp.MustCompile(`[*_]`)
	headingMarks  = regexp.MustCompile(`(?m)^#+\s*`)
	bulletMarks   = regexp.MustCompile(`(?m)^\s*[-•]\s+`)
	multiNewlines = regexp.MustCompile(`\n{2,}`)
	multiSpaces   = regexp.MustCompile(`[ \t]{2,}`)
)

// CleanForSpeech strips markdown decoration from model output so the
// synthesizer does not read asterisks and pound signs aloud.
func CleanForSpeech(text string) string {
	text = boldMarkers.ReplaceAllString(text, "")
	text = italicMarkers.ReplaceAllString(text, "")
	text = headingMarks.ReplaceAllString(text, "")
	text = bulletMarks.ReplaceAllString(text, "")
	text = multiNewlines.ReplaceAllString(text, ". ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = multiSpaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
