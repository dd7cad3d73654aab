package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Message is a single chat turn sent to the model.
type Message struct {
	Role    string
	Content string
}

// Client abstracts LLM providers. Complete sends a chat exchange and
// returns the model's raw completion content.
type Client interface {
	Complete(ctx context.Context, messages []Message) (json.RawMessage, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation for environments without
// provider credentials.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, messages []Message) (json.RawMessage, error) {
	_ = ctx
	_ = messages
	return nil, ErrNotConfigured
}
