package chat

import "context"

// Repo defines persistence operations for messages.
type Repo interface {
	Create(ctx context.Context, msg Message) error
	// ListRecent returns up to limit messages, most recent first.
	ListRecent(ctx context.Context, userID string, limit int) ([]Message, error)
	// ListByUser returns all messages ordered by creation time ascending.
	ListByUser(ctx context.Context, userID string) ([]Message, error)
}
