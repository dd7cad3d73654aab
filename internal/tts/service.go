package tts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"symptoscan-backend/internal/retry"
)

// DefaultMaxLen bounds synthesized text when no limit is configured.
const DefaultMaxLen = 5000

// Service validates synthesis requests and wraps the provider call in
// the retry policy. Length and emptiness are rejected before any
// network traffic.
type Service struct {
	Synth  Synthesizer
	Retry  retry.Policy
	MaxLen int
}

// Synthesize converts text to audio.
func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, "", ErrEmptyInput
	}
	max := s.MaxLen
	if max <= 0 {
		max = DefaultMaxLen
	}
	if len(text) > max {
		return nil, "", fmt.Errorf("%w: %d bytes over %d limit", ErrTextTooLong, len(text), max)
	}

	var audio []byte
	var contentType string
	err := s.Retry.Do(ctx, "tts.synthesize", func(ctx context.Context) error {
		var err error
		audio, contentType, err = s.Synth.Synthesize(ctx, text)
		return err
	})
	if err != nil {
		var exhausted *retry.ExhaustedError
		if errors.As(err, &exhausted) {
			return nil, "", fmt.Errorf("%w: %v", ErrSynthesisUnavailable, exhausted.LastErr)
		}
		return nil, "", err
	}
	return audio, contentType, nil
}
