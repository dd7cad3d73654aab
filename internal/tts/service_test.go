package tts

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"symptoscan-backend/internal/retry"
)

type fakeSynth struct {
	audio []byte
	err   error
	calls int
}

func (f *fakeSynth) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	f.calls++
	if f.err != nil {
		return nil, "", f.err
	}
	return f.audio, "audio/mpeg", nil
}

func testPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: 3,
		Sleep:       func(ctx context.Context, _ time.Duration) error { return nil },
	}
}

func TestSynthesizeReturnsAudio(t *testing.T) {
	fake := &fakeSynth{audio: []byte("mp3-bytes")}
	svc := &Service{Synth: fake, Retry: testPolicy()}

	audio, contentType, err := svc.Synthesize(context.Background(), "take your medication with food")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Errorf("audio = %q", audio)
	}
	if contentType != "audio/mpeg" {
		t.Errorf("contentType = %q", contentType)
	}
	if fake.calls != 1 {
		t.Errorf("calls = %d, want 1", fake.calls)
	}
}

func TestSynthesizeEmptyInput(t *testing.T) {
	fake := &fakeSynth{}
	svc := &Service{Synth: fake, Retry: testPolicy()}

	_, _, err := svc.Synthesize(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Synthesize() error = %v, want ErrEmptyInput", err)
	}
	if fake.calls != 0 {
		t.Errorf("calls = %d, want 0", fake.calls)
	}
}

func TestSynthesizeTextTooLong(t *testing.T) {
	fake := &fakeSynth{}
	svc := &Service{Synth: fake, Retry: testPolicy(), MaxLen: 10}

	_, _, err := svc.Synthesize(context.Background(), strings.Repeat("a", 11))
	if !errors.Is(err, ErrTextTooLong) {
		t.Fatalf("Synthesize() error = %v, want ErrTextTooLong", err)
	}
	if fake.calls != 0 {
		t.Errorf("calls = %d, want 0", fake.calls)
	}
}

func TestSynthesizeUnavailableAfterRetries(t *testing.T) {
	fake := &fakeSynth{err: errors.New("http status 503: overloaded")}
	svc := &Service{Synth: fake, Retry: testPolicy()}

	_, _, err := svc.Synthesize(context.Background(), "short advice")
	if !errors.Is(err, ErrSynthesisUnavailable) {
		t.Fatalf("Synthesize() error = %v, want ErrSynthesisUnavailable", err)
	}
	if fake.calls != 3 {
		t.Errorf("calls = %d, want 3", fake.calls)
	}
}

func TestSynthesizePermanentErrorNotRetried(t *testing.T) {
	fake := &fakeSynth{err: errors.New("http status 401: invalid api key")}
	svc := &Service{Synth: fake, Retry: testPolicy()}

	_, _, err := svc.Synthesize(context.Background(), "short advice")
	if err == nil {
		t.Fatal("Synthesize() expected error")
	}
	if errors.Is(err, ErrSynthesisUnavailable) {
		t.Errorf("permanent failure should not map to ErrSynthesisUnavailable: %v", err)
	}
	if fake.calls != 1 {
		t.Errorf("calls = %d, want 1", fake.calls)
	}
}
