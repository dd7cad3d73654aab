package summaries

import "context"

// Repo defines persistence operations for summaries.
type Repo interface {
	Create(ctx context.Context, summary Summary) error
	ListByUser(ctx context.Context, userID string) ([]Summary, error)
}
