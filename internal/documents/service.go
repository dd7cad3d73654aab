package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"symptoscan-backend/internal/retry"
	"symptoscan-backend/internal/shared/storage/object"
)

// allowedContentTypes is the upload allow-list: medical reports arrive
// as PDFs, scans, or plain text.
var allowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
	"image/webp":      {},
	"image/gif":       {},
	"text/plain":      {},
}

// Service uploads report files to object storage and records documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
	Retry retry.Policy
}

// Upload validates the file, writes it to object storage through the
// retry policy, and persists the document row. The storage write is
// the only retried stage; validation failures are permanent and make
// no network call.
func (s *Service) Upload(ctx context.Context, userID, fileName, contentType string, data []byte) (Document, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(fileName) == "" {
		return Document{}, ErrInvalidInput
	}
	normalized := normalizeContentType(contentType)
	if _, ok := allowedContentTypes[normalized]; !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}

	var storageKey string
	var size int64
	err := s.Retry.Do(ctx, "storage.save", func(ctx context.Context) error {
		var err error
		storageKey, size, err = s.Store.Save(ctx, userID, fileName, normalized, bytes.NewReader(data))
		return err
	})
	if err != nil {
		var exhausted *retry.ExhaustedError
		if errors.As(err, &exhausted) {
			return Document{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, exhausted.LastErr)
		}
		return Document{}, err
	}

	doc := Document{
		ID:          uuid.NewString(),
		UserID:      userID,
		Filename:    fileName,
		StorageKey:  storageKey,
		ContentType: normalized,
		SizeBytes:   size,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, documentID string) (Document, error) {
	if strings.TrimSpace(documentID) == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, documentID)
}

// OpenContent reads back a stored document's bytes.
func (s *Service) OpenContent(ctx context.Context, doc Document) ([]byte, error) {
	body, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("open storage key %s: %w", doc.StorageKey, err)
	}
	defer body.Close()
	return io.ReadAll(body)
}

func normalizeContentType(contentType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
}
