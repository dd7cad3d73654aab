package summaries

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres. String lists are stored as jsonb.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new summary.
func (r *PGRepo) Create(ctx context.Context, summary Summary) error {
	const query = `
INSERT INTO summaries (id, document_id, user_id, summary_text, key_findings, recommendations, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	findings, err := json.Marshal(ensure(summary.KeyFindings))
	if err != nil {
		return err
	}
	recommendations, err := json.Marshal(ensure(summary.Recommendations))
	if err != nil {
		return err
	}

	var documentID sql.NullString
	if summary.DocumentID != nil {
		documentID = sql.NullString{String: *summary.DocumentID, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		summary.ID,
		documentID,
		summary.UserID,
		summary.SummaryText,
		findings,
		recommendations,
		summary.CreatedAt,
	)
	return err
}

// ListByUser lists a user's summaries ordered by creation time ascending.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	const query = `
SELECT id, document_id, user_id, summary_text, key_findings, recommendations, created_at
FROM summaries
WHERE user_id = $1
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var summary Summary
		var documentID sql.NullString
		var findings, recommendations []byte
		if err := rows.Scan(
			&summary.ID,
			&documentID,
			&summary.UserID,
			&summary.SummaryText,
			&findings,
			&recommendations,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}
		if documentID.Valid {
			id := documentID.String
			summary.DocumentID = &id
		}
		if err := json.Unmarshal(findings, &summary.KeyFindings); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(recommendations, &summary.Recommendations); err != nil {
			return nil, err
		}
		summary.KeyFindings = ensure(summary.KeyFindings)
		summary.Recommendations = ensure(summary.Recommendations)
		out = append(out, summary)
	}
	return out, rows.Err()
}

func ensure(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

var _ Repo = (*PGRepo)(nil)
