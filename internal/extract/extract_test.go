package extract

import (
	"errors"
	"testing"
)

func TestTextPlain(t *testing.T) {
	got, err := Text([]byte("hemoglobin 13.5 g/dL"), "text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "hemoglobin 13.5 g/dL" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextPlainInvalidEncoding(t *testing.T) {
	_, err := Text([]byte{0xff, 0xfe, 0xfd}, "text/plain")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestTextImageUnsupported(t *testing.T) {
	_, err := Text([]byte{0x89, 'P', 'N', 'G'}, "image/png")
	if !errors.Is(err, ErrUnsupportedExtraction) {
		t.Fatalf("expected ErrUnsupportedExtraction, got %v", err)
	}
}

func TestTextUnknownTypeUnsupported(t *testing.T) {
	_, err := Text([]byte("zip"), "application/zip")
	if !errors.Is(err, ErrUnsupportedExtraction) {
		t.Fatalf("expected ErrUnsupportedExtraction, got %v", err)
	}
}

func TestTextMalformedPDF(t *testing.T) {
	_, err := Text([]byte("not a pdf"), "application/pdf")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestJoinPagesKeepsPageOrderAndEmptyPages(t *testing.T) {
	got := JoinPages([]string{"page one text", ""})
	if got != "page one text" {
		t.Fatalf("unexpected join: %q", got)
	}

	got = JoinPages([]string{"first", "", "third"})
	if got != "first\n\nthird" {
		t.Fatalf("unexpected join: %q", got)
	}
}
