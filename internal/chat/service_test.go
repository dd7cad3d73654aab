package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"symptoscan-backend/internal/retry"
)

func serviceFixture(fake *fakeLLM) *Service {
	engine := &Engine{
		LLM: fake,
		Retry: retry.Policy{
			MaxAttempts: 2,
			Sleep:       func(ctx context.Context, _ time.Duration) error { return nil },
		},
		ReaskLimit: 1,
	}
	return &Service{Engine: engine, Repo: NewMemoryRepo()}
}

func TestServiceRespondPersistsBothMessages(t *testing.T) {
	fake := &fakeLLM{responses: []string{
		`{"reply_text":"Rest and monitor.","possible_conditions":["tension headache"],"urgency":"low","recommended_actions":["rest"]}`,
	}}
	svc := serviceFixture(fake)

	turn, err := svc.Respond(context.Background(), "user-1", "mild headache since morning")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if turn.UserMessage.Type != TypeUser || turn.UserMessage.Content != "mild headache since morning" {
		t.Errorf("user message = %+v", turn.UserMessage)
	}
	if turn.AIMessage.Type != TypeAI || turn.AIMessage.Metadata == nil {
		t.Fatalf("ai message = %+v", turn.AIMessage)
	}
	if turn.AIMessage.Metadata.Urgency != UrgencyLow {
		t.Errorf("urgency = %q", turn.AIMessage.Metadata.Urgency)
	}

	stored, err := svc.Repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored messages = %d, want 2", len(stored))
	}
	if stored[0].Type != TypeUser || stored[1].Type != TypeAI {
		t.Errorf("stored order = [%s %s], want [user ai]", stored[0].Type, stored[1].Type)
	}
}

func TestServiceRespondEngineFailureKeepsUserMessage(t *testing.T) {
	transient := errors.New("http status 502: bad gateway")
	fake := &fakeLLM{errs: []error{transient, transient}}
	svc := serviceFixture(fake)

	_, err := svc.Respond(context.Background(), "user-1", "sudden rash on arms")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Respond() error = %v, want ErrUnavailable", err)
	}

	stored, err := svc.Repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored messages = %d, want 1", len(stored))
	}
	if stored[0].Type != TypeUser {
		t.Errorf("stored type = %s, want user", stored[0].Type)
	}
}

func TestServiceRespondValidation(t *testing.T) {
	fake := &fakeLLM{}
	svc := serviceFixture(fake)

	if _, err := svc.Respond(context.Background(), "", "anything"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing user: error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Respond(context.Background(), "user-1", "  "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("blank message: error = %v, want ErrEmptyInput", err)
	}
	if fake.calls != 0 {
		t.Errorf("LLM calls = %d, want 0", fake.calls)
	}

	stored, _ := svc.Repo.ListByUser(context.Background(), "user-1")
	if len(stored) != 0 {
		t.Errorf("stored messages = %d, want 0", len(stored))
	}
}

func TestMemoryRepoListRecentWindow(t *testing.T) {
	repo := NewMemoryRepo()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		msg := Message{
			ID:        string(rune('a' + i)),
			UserID:    "user-1",
			Type:      TypeUser,
			Content:   "m",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), msg); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	recent, err := repo.ListRecent(context.Background(), "user-1", HistoryWindow)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(recent) != HistoryWindow {
		t.Fatalf("ListRecent len = %d, want %d", len(recent), HistoryWindow)
	}
	if !recent[0].CreatedAt.After(recent[1].CreatedAt) {
		t.Errorf("ListRecent not most-recent-first: %v then %v", recent[0].CreatedAt, recent[1].CreatedAt)
	}

	all, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(all) != 15 {
		t.Fatalf("ListByUser len = %d, want 15", len(all))
	}
	if !all[0].CreatedAt.Before(all[1].CreatedAt) {
		t.Errorf("ListByUser not ascending")
	}

	none, err := repo.ListByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("ListByUser for unknown user = %v, want empty non-nil slice", none)
	}
}
