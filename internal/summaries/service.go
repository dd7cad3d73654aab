package summaries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"symptoscan-backend/internal/documents"
	"symptoscan-backend/internal/extract"
)

// Request identifies the report to summarize: a stored document or raw
// pasted text, never both.
type Request struct {
	UserID     string
	DocumentID string
	ParsedText string
}

// Service orchestrates summarization: resolve the text, run the
// engine, persist the summary. The summary row is only written after
// every upstream stage has succeeded.
type Service struct {
	Docs   *documents.Service
	Engine *Engine
	Repo   Repo
}

// Summarize resolves the report text, summarizes it, and persists the
// result. When a document is referenced it must belong to the
// requesting user; the check happens here, not in the store.
func (s *Service) Summarize(ctx context.Context, req Request) (Summary, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return Summary{}, ErrInvalidRequest
	}
	hasDocument := strings.TrimSpace(req.DocumentID) != ""
	hasText := strings.TrimSpace(req.ParsedText) != ""
	if hasDocument == hasText {
		return Summary{}, ErrInvalidRequest
	}

	text := req.ParsedText
	var documentID *string
	if hasDocument {
		doc, err := s.Docs.Get(ctx, req.DocumentID)
		if err != nil {
			return Summary{}, err
		}
		if doc.UserID != req.UserID {
			return Summary{}, ErrNotOwned
		}
		data, err := s.Docs.OpenContent(ctx, doc)
		if err != nil {
			return Summary{}, err
		}
		text, err = extract.Text(data, doc.ContentType)
		if err != nil {
			return Summary{}, err
		}
		documentID = &doc.ID
	}

	result, err := s.Engine.Summarize(ctx, text)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		ID:              uuid.NewString(),
		DocumentID:      documentID,
		UserID:          req.UserID,
		SummaryText:     result.SummaryText,
		KeyFindings:     result.KeyFindings,
		Recommendations: result.Recommendations,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, summary); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
