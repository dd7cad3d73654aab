package chat

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"symptoscan-backend/internal/llm"
	"symptoscan-backend/internal/retry"
)

type fakeLLM struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeLLM) Complete(ctx context.Context, messages []llm.Message) (json.RawMessage, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.responses) {
		return json.RawMessage(f.responses[i]), nil
	}
	return nil, errors.New("no scripted response")
}

func testPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: 2,
		Sleep:       func(ctx context.Context, _ time.Duration) error { return nil },
	}
}

func TestEngineRespondParsesGuidance(t *testing.T) {
	fake := &fakeLLM{responses: []string{
		`{"reply_text":"Rest and hydrate.","possible_conditions":["common cold"],"urgency":"low","recommended_actions":["drink fluids"]}`,
	}}
	engine := &Engine{LLM: fake, Retry: testPolicy(), ReaskLimit: 1}

	reply, err := engine.Respond(context.Background(), "mild sore throat", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply.ReplyText != "Rest and hydrate." {
		t.Errorf("ReplyText = %q", reply.ReplyText)
	}
	if reply.Urgency != UrgencyLow {
		t.Errorf("Urgency = %q, want %q", reply.Urgency, UrgencyLow)
	}
	if len(reply.PossibleConditions) != 1 || reply.PossibleConditions[0] != "common cold" {
		t.Errorf("PossibleConditions = %v", reply.PossibleConditions)
	}
}

func TestEngineRespondEmptyInput(t *testing.T) {
	fake := &fakeLLM{}
	engine := &Engine{LLM: fake, Retry: testPolicy()}

	_, err := engine.Respond(context.Background(), "   ", nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Respond() error = %v, want ErrEmptyInput", err)
	}
	if fake.calls != 0 {
		t.Errorf("LLM calls = %d, want 0", fake.calls)
	}
}

func TestEngineRespondMissingListsBecomeEmpty(t *testing.T) {
	fake := &fakeLLM{responses: []string{
		`{"reply_text":"See a doctor.","urgency":"medium"}`,
	}}
	engine := &Engine{LLM: fake, Retry: testPolicy()}

	reply, err := engine.Respond(context.Background(), "persistent cough", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply.PossibleConditions == nil || reply.RecommendedActions == nil {
		t.Errorf("lists should be non-nil: conditions=%v actions=%v",
			reply.PossibleConditions, reply.RecommendedActions)
	}
}

func TestEngineRespondReasksOnMalformedJSON(t *testing.T) {
	fake := &fakeLLM{responses: []string{
		`not json at all`,
		`{"reply_text":"Monitor your temperature.","possible_conditions":[],"urgency":"medium","recommended_actions":[]}`,
	}}
	engine := &Engine{LLM: fake, Retry: testPolicy(), ReaskLimit: 1}

	reply, err := engine.Respond(context.Background(), "fever for two days", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if fake.calls != 2 {
		t.Errorf("LLM calls = %d, want 2", fake.calls)
	}
	if reply.Urgency != UrgencyMedium {
		t.Errorf("Urgency = %q", reply.Urgency)
	}
}

func TestEngineRespondAnalysisFailedAfterReasks(t *testing.T) {
	fake := &fakeLLM{responses: []string{
		`{"urgency":"low"}`,
		`{"urgency":"low"}`,
	}}
	engine := &Engine{LLM: fake, Retry: testPolicy(), ReaskLimit: 1}

	_, err := engine.Respond(context.Background(), "headache", nil)
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("Respond() error = %v, want ErrAnalysisFailed", err)
	}
	if fake.calls != 2 {
		t.Errorf("LLM calls = %d, want 2", fake.calls)
	}
}

func TestEngineRespondRejectsOutOfSetUrgency(t *testing.T) {
	fake := &fakeLLM{responses: []string{
		`{"reply_text":"Go now.","urgency":"critical"}`,
		`{"reply_text":"Go now.","urgency":"critical"}`,
	}}
	engine := &Engine{LLM: fake, Retry: testPolicy(), ReaskLimit: 1}

	_, err := engine.Respond(context.Background(), "chest pain", nil)
	if !errors.Is(err, ErrUrgencyUnparseable) {
		t.Fatalf("Respond() error = %v, want ErrUrgencyUnparseable", err)
	}
}

func TestEngineRespondUnavailableAfterRetries(t *testing.T) {
	transient := errors.New("http status 503: upstream down")
	fake := &fakeLLM{errs: []error{transient, transient}}
	engine := &Engine{LLM: fake, Retry: testPolicy()}

	_, err := engine.Respond(context.Background(), "dizzy spells", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Respond() error = %v, want ErrUnavailable", err)
	}
	if fake.calls != 2 {
		t.Errorf("LLM calls = %d, want 2", fake.calls)
	}
}

func TestParseUrgency(t *testing.T) {
	cases := []struct {
		raw  string
		want Urgency
		ok   bool
	}{
		{"low", UrgencyLow, true},
		{"  HIGH ", UrgencyHigh, true},
		{"Emergency", UrgencyEmergency, true},
		{"critical", "", false},
		{"", "", false},
		{"medium-ish", "", false},
	}
	for _, tc := range cases {
		got, err := ParseUrgency(tc.raw)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseUrgency(%q) = %q, %v, want %q", tc.raw, got, err, tc.want)
		}
		if !tc.ok && !errors.Is(err, ErrUrgencyUnparseable) {
			t.Errorf("ParseUrgency(%q) error = %v, want ErrUrgencyUnparseable", tc.raw, err)
		}
	}
}
