package summaries

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateMarshalsLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	docID := "doc-1"
	summary := Summary{
		ID:              "summary-1",
		DocumentID:      &docID,
		UserID:          "user-1",
		SummaryText:     "All values within range.",
		KeyFindings:     []string{"Hgb normal"},
		Recommendations: nil,
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO summaries").
		WithArgs(
			summary.ID,
			sqlmock.AnyArg(), // document_id as NullString
			summary.UserID,
			summary.SummaryText,
			[]byte(`["Hgb normal"]`),
			[]byte(`[]`), // nil list stored as empty array
			summary.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), summary); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserUnmarshalsLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "document_id", "user_id", "summary_text", "key_findings", "recommendations", "created_at",
	}).AddRow("summary-1", nil, "user-1", "Mild anemia.", []byte(`["Hgb 11.2"]`), []byte(`[]`), now)

	mock.ExpectQuery("SELECT (.+) FROM summaries").
		WithArgs("user-1").
		WillReturnRows(rows)

	out, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].DocumentID != nil {
		t.Errorf("DocumentID = %v, want nil", out[0].DocumentID)
	}
	if len(out[0].KeyFindings) != 1 || out[0].KeyFindings[0] != "Hgb 11.2" {
		t.Errorf("KeyFindings = %v", out[0].KeyFindings)
	}
	if out[0].Recommendations == nil {
		t.Errorf("Recommendations should be non-nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
