package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"symptoscan-backend/internal/chat"
	"symptoscan-backend/internal/documents"
	"symptoscan-backend/internal/summaries"
)

func TestForUserAggregatesAllCollections(t *testing.T) {
	ctx := context.Background()
	docs := documents.NewMemoryRepo()
	sums := summaries.NewMemoryRepo()
	msgs := chat.NewMemoryRepo()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := docs.Create(ctx, documents.Document{
		ID: "d1", UserID: "user-1", Filename: "labs.pdf", CreatedAt: now,
	}); err != nil {
		t.Fatal(err)
	}
	docID := "d1"
	if err := sums.Create(ctx, summaries.Summary{
		ID: "s1", DocumentID: &docID, UserID: "user-1",
		SummaryText: "All clear.", CreatedAt: now.Add(time.Minute),
	}); err != nil {
		t.Fatal(err)
	}
	if err := msgs.Create(ctx, chat.Message{
		ID: "m1", UserID: "user-1", Type: chat.TypeUser,
		Content: "hello", CreatedAt: now.Add(2 * time.Minute),
	}); err != nil {
		t.Fatal(err)
	}
	// Another user's rows must not leak.
	if err := docs.Create(ctx, documents.Document{
		ID: "d2", UserID: "user-2", Filename: "other.pdf", CreatedAt: now,
	}); err != nil {
		t.Fatal(err)
	}

	svc := &Service{Documents: docs, Summaries: sums, Messages: msgs}
	hist, err := svc.ForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ForUser() error = %v", err)
	}
	if len(hist.Documents) != 1 || hist.Documents[0].ID != "d1" {
		t.Errorf("Documents = %+v", hist.Documents)
	}
	if len(hist.Summaries) != 1 || hist.Summaries[0].ID != "s1" {
		t.Errorf("Summaries = %+v", hist.Summaries)
	}
	if len(hist.Messages) != 1 || hist.Messages[0].ID != "m1" {
		t.Errorf("Messages = %+v", hist.Messages)
	}
}

func TestForUserEmptyCollections(t *testing.T) {
	svc := &Service{
		Documents: documents.NewMemoryRepo(),
		Summaries: summaries.NewMemoryRepo(),
		Messages:  chat.NewMemoryRepo(),
	}

	hist, err := svc.ForUser(context.Background(), "new-user")
	if err != nil {
		t.Fatalf("ForUser() error = %v", err)
	}
	if hist.Documents == nil || hist.Summaries == nil || hist.Messages == nil {
		t.Errorf("collections should be non-nil empty slices: %+v", hist)
	}
	if len(hist.Documents)+len(hist.Summaries)+len(hist.Messages) != 0 {
		t.Errorf("expected empty history, got %+v", hist)
	}
}

func TestForUserRequiresUserID(t *testing.T) {
	svc := &Service{
		Documents: documents.NewMemoryRepo(),
		Summaries: summaries.NewMemoryRepo(),
		Messages:  chat.NewMemoryRepo(),
	}
	if _, err := svc.ForUser(context.Background(), "  "); !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("ForUser() error = %v, want ErrInvalidUser", err)
	}
}
