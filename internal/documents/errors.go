package documents

import "errors"

var (
	ErrNotFound            = errors.New("document not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
