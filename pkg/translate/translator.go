package translate

import (
	"context"

	"agroadvisor-be/pkg/language"
)

// Translator converts text between supported languages. Implementations
// return the input unchanged when source and target match.
type Translator interface {
	Translate(ctx context.Context, text string, source, target language.Language) (string, error)
}
