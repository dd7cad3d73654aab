package history

import (
	"symptoscan-backend/internal/chat"
	"symptoscan-backend/internal/documents"
	"symptoscan-backend/internal/summaries"
)

// HistoryResponse is the outward-facing aggregate of a user's records.
type HistoryResponse struct {
	Documents []documents.DocumentResponse `json:"documents"`
	Summaries []summaries.SummaryResponse  `json:"summaries"`
	Messages  []chat.MessageResponse       `json:"messages"`
}

// ToResponse converts a history aggregate to its API shape. All three
// lists are non-nil.
func ToResponse(h History) HistoryResponse {
	resp := HistoryResponse{
		Documents: []documents.DocumentResponse{},
		Summaries: []summaries.SummaryResponse{},
		Messages:  []chat.MessageResponse{},
	}
	for _, doc := range h.Documents {
		resp.Documents = append(resp.Documents, documents.ToResponse(doc))
	}
	for _, sum := range h.Summaries {
		resp.Summaries = append(resp.Summaries, summaries.ToResponse(sum))
	}
	for _, msg := range h.Messages {
		resp.Messages = append(resp.Messages, chat.ToMessageResponse(msg))
	}
	return resp
}
