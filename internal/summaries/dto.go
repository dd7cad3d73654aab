package summaries

import "time"

// SummaryResponse is the outward-facing representation of a summary.
type SummaryResponse struct {
	SummaryID       string    `json:"summaryId"`
	DocumentID      *string   `json:"documentId,omitempty"`
	SummaryText     string    `json:"summaryText"`
	KeyFindings     []string  `json:"keyFindings"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToResponse converts a summary to its API shape.
func ToResponse(summary Summary) SummaryResponse {
	return SummaryResponse{
		SummaryID:       summary.ID,
		DocumentID:      summary.DocumentID,
		SummaryText:     summary.SummaryText,
		KeyFindings:     ensure(summary.KeyFindings),
		Recommendations: ensure(summary.Recommendations),
		CreatedAt:       summary.CreatedAt,
	}
}
