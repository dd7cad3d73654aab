package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedExtraction marks content types with no extraction
	// path, such as images without an OCR backend. Permanent.
	ErrUnsupportedExtraction = errors.New("unsupported extraction")
	// ErrDecode marks payloads that are not valid text in the declared
	// encoding. Permanent.
	ErrDecode = errors.New("decode error")
)

// Text converts uploaded bytes into plain text based on the declared
// content type. Pure and deterministic; no network access.
func Text(data []byte, contentType string) (string, error) {
	switch {
	case isPDF(contentType):
		return pdfText(data)
	case isImage(contentType):
		// Failing loudly beats summarizing an empty string.
		return "", fmt.Errorf("%w: no OCR backend for %s", ErrUnsupportedExtraction, contentType)
	case isPlainText(contentType):
		return plainText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedExtraction, contentType)
	}
}

// pdfText concatenates per-page text in page order. A page with no
// extractable text contributes an empty string, not an error.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return JoinPages(pages), nil
}

// JoinPages merges per-page text into a single document string.
func JoinPages(pages []string) string {
	return strings.TrimSpace(strings.Join(pages, "\n"))
}

func plainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid utf-8", ErrDecode)
	}
	return string(data), nil
}

func isPDF(contentType string) bool {
	return normalize(contentType) == "application/pdf"
}

func isImage(contentType string) bool {
	return strings.HasPrefix(normalize(contentType), "image/")
}

func isPlainText(contentType string) bool {
	return strings.HasPrefix(normalize(contentType), "text/")
}

func normalize(contentType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
}
