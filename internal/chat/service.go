package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service runs one chat turn: persist the user message, generate the
// guidance, persist the AI reply. If generation fails the user message
// stays on record and no AI message is written.
type Service struct {
	Engine *Engine
	Repo   Repo
}

// Turn is the outcome of a successful chat exchange.
type Turn struct {
	UserMessage Message
	AIMessage   Message
}

// Respond processes a user's symptom message.
func (s *Service) Respond(ctx context.Context, userID, content string) (Turn, error) {
	if strings.TrimSpace(userID) == "" {
		return Turn{}, ErrInvalidInput
	}
	if strings.TrimSpace(content) == "" {
		return Turn{}, ErrEmptyInput
	}

	// The window is fetched before the user message is written so the
	// new message does not count against its own context.
	prior, err := s.Repo.ListRecent(ctx, userID, HistoryWindow)
	if err != nil {
		return Turn{}, err
	}

	userMsg := Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      TypeUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, userMsg); err != nil {
		return Turn{}, err
	}

	reply, err := s.Engine.Respond(ctx, content, prior)
	if err != nil {
		return Turn{}, err
	}

	guidance := Guidance{
		PossibleConditions: reply.PossibleConditions,
		Urgency:            reply.Urgency,
		RecommendedActions: reply.RecommendedActions,
	}
	aiMsg := Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      TypeAI,
		Content:   reply.ReplyText,
		Metadata:  &guidance,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, aiMsg); err != nil {
		return Turn{}, err
	}

	return Turn{UserMessage: userMsg, AIMessage: aiMsg}, nil
}
