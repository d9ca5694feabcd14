package genai

import "context"

// ImageAttachment carries raw image bytes alongside their mime type for
// multimodal prompts.
type ImageAttachment struct {
	MimeType string
	Data     []byte
}

// Provider defines the contract for generative model backends.
type Provider interface {
	// Generate produces a completion for prompt. Image may be nil for
	// text-only prompts.
	Generate(ctx context.Context, prompt string, image *ImageAttachment) (string, error)
}
