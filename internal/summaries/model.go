package summaries

import "time"

// Summary is a structured LLM summary of a medical report. DocumentID
// is nil for summaries produced from raw pasted text. Immutable once
// created.
type Summary struct {
	ID              string
	DocumentID      *string
	UserID          string
	SummaryText     string
	KeyFindings     []string
	Recommendations []string
	CreatedAt       time.Time
}
