package documents

import "time"

// Document represents an uploaded medical report owned by a user.
// Immutable once created.
type Document struct {
	ID          string
	UserID      string
	Filename    string
	StorageKey  string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
