package chat

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres. Guidance metadata is stored
// as jsonb on AI rows and NULL on user rows.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new message.
func (r *PGRepo) Create(ctx context.Context, msg Message) error {
	const query = `
INSERT INTO messages (id, user_id, message_type, content, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	var metadata interface{}
	if msg.Metadata != nil {
		data, err := json.Marshal(msg.Metadata)
		if err != nil {
			return err
		}
		metadata = data
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		msg.ID,
		msg.UserID,
		msg.Type,
		msg.Content,
		metadata,
		msg.CreatedAt,
	)
	return err
}

// ListRecent returns up to limit messages, most recent first.
func (r *PGRepo) ListRecent(ctx context.Context, userID string, limit int) ([]Message, error) {
	const query = `
SELECT id, user_id, message_type, content, metadata, created_at
FROM messages
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	if limit <= 0 {
		limit = HistoryWindow
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

// ListByUser returns all messages ordered by creation time ascending.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Message, error) {
	const query = `
SELECT id, user_id, message_type, content, metadata, created_at
FROM messages
WHERE user_id = $1
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]Message, error) {
	out := []Message{}
	for rows.Next() {
		var msg Message
		var metadata []byte
		if err := rows.Scan(
			&msg.ID,
			&msg.UserID,
			&msg.Type,
			&msg.Content,
			&metadata,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			var guidance Guidance
			if err := json.Unmarshal(metadata, &guidance); err != nil {
				return nil, err
			}
			msg.Metadata = &guidance
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
