package summaries

import "errors"

var (
	// ErrEmptyInput marks a blank report text. Permanent, no network call.
	ErrEmptyInput = errors.New("empty input text")
	// ErrInvalidRequest marks a request with both or neither of
	// document_id and parsed_text.
	ErrInvalidRequest = errors.New("exactly one of document_id or parsed_text must be provided")
	// ErrNotOwned marks a document that belongs to a different user.
	ErrNotOwned = errors.New("document not owned by user")
	// ErrUnavailable marks exhausted network retries against the LLM.
	ErrUnavailable = errors.New("summarization service unavailable")
	// ErrSummarizationFailed marks a completion that stayed unparseable
	// after the re-ask budget. Distinct from ErrUnavailable so operators
	// can tell "provider down" from "provider answered oddly".
	ErrSummarizationFailed = errors.New("summarization failed")
)
