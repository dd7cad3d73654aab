package chat

import "errors"

var (
	// ErrEmptyInput marks a blank chat message. Permanent, no network call.
	ErrEmptyInput = errors.New("empty message")
	// ErrInvalidInput marks a missing user ID.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUrgencyUnparseable marks a model urgency label outside the
	// closed set.
	ErrUrgencyUnparseable = errors.New("urgency level unparseable")
	// ErrUnavailable marks exhausted network retries against the LLM.
	ErrUnavailable = errors.New("symptom analysis service unavailable")
	// ErrAnalysisFailed marks a completion that stayed unparseable after
	// the re-ask budget.
	ErrAnalysisFailed = errors.New("symptom analysis failed")
)
