package tts

import "errors"

var (
	// ErrEmptyInput marks a blank synthesis request. Permanent, no
	// network call.
	ErrEmptyInput = errors.New("empty text")
	// ErrTextTooLong marks text over the synthesis length limit.
	// Checked locally before any network call.
	ErrTextTooLong = errors.New("text too long")
	// ErrSynthesisUnavailable marks exhausted retries against the
	// synthesis provider.
	ErrSynthesisUnavailable = errors.New("speech synthesis unavailable")
	// ErrNotConfigured marks a missing provider API key.
	ErrNotConfigured = errors.New("speech synthesis not configured")
)
