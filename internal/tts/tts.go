package tts

import "context"

// Synthesizer converts text to spoken audio. Implementations return
// the raw audio bytes and their MIME type.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (audio []byte, contentType string, err error)
}

// PlaceholderSynthesizer is a stub implementation for environments
// without provider credentials.
type PlaceholderSynthesizer struct{}

// Synthesize returns ErrNotConfigured.
func (PlaceholderSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	_ = ctx
	_ = text
	return nil, "", ErrNotConfigured
}
