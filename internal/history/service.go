package history

import (
	"context"
	"strings"

	"symptoscan-backend/internal/chat"
	"symptoscan-backend/internal/documents"
	"symptoscan-backend/internal/summaries"
)

// Service aggregates a user's stored activity from the three record
// collections. Reads are independent; an empty collection is an empty
// list, not an error.
type Service struct {
	Documents documents.Repo
	Summaries summaries.Repo
	Messages  chat.Repo
}

// History is a user's full record set, each collection ordered by
// creation time ascending.
type History struct {
	Documents []documents.Document
	Summaries []summaries.Summary
	Messages  []chat.Message
}

// ForUser fetches all three collections for the given user.
func (s *Service) ForUser(ctx context.Context, userID string) (History, error) {
	if strings.TrimSpace(userID) == "" {
		return History{}, ErrInvalidUser
	}

	docs, err := s.Documents.ListByUser(ctx, userID)
	if err != nil {
		return History{}, err
	}
	sums, err := s.Summaries.ListByUser(ctx, userID)
	if err != nil {
		return History{}, err
	}
	msgs, err := s.Messages.ListByUser(ctx, userID)
	if err != nil {
		return History{}, err
	}

	return History{Documents: docs, Summaries: sums, Messages: msgs}, nil
}
