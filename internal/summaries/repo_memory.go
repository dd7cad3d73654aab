package summaries

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Summary
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores a summary.
func (r *MemoryRepo) Create(ctx context.Context, summary Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	summary.KeyFindings = ensure(summary.KeyFindings)
	summary.Recommendations = ensure(summary.Recommendations)
	r.data = append(r.data, summary)
	return nil
}

// ListByUser returns a user's summaries ordered by creation time ascending.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Summary{}
	for _, summary := range r.data {
		if summary.UserID == userID {
			out = append(out, summary)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
