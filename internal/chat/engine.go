package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"symptoscan-backend/internal/llm"
	"symptoscan-backend/internal/retry"
	"symptoscan-backend/internal/shared/telemetry"
)

// HistoryWindow bounds how many prior messages travel in the prompt.
const HistoryWindow = 10

// Reply is the parsed triage output. PossibleConditions and
// RecommendedActions are always non-nil.
type Reply struct {
	ReplyText          string
	PossibleConditions []string
	Urgency            Urgency
	RecommendedActions []string
}

// Engine turns a symptom message plus recent conversation into
// structured guidance. Network retries and parse re-asks mirror the
// summarization engine; persistence is the caller's responsibility.
type Engine struct {
	LLM        llm.Client
	Retry      retry.Policy
	ReaskLimit int
}

// Respond sends the message and a bounded most-recent-first window of
// prior messages to the model.
func (e *Engine) Respond(ctx context.Context, message string, prior []Message) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrEmptyInput
	}
	if len(prior) > HistoryWindow {
		prior = prior[:HistoryWindow]
	}

	raw, err := e.complete(ctx, buildPrompt(message, prior))
	if err != nil {
		return Reply{}, err
	}

	reply, parseErr := parseReply(raw)
	reasks := e.ReaskLimit
	if reasks < 0 {
		reasks = 0
	}
	for i := 0; parseErr != nil && i < reasks; i++ {
		telemetry.Info("chat.reask", map[string]any{
			"attempt": i + 1,
			"error":   parseErr.Error(),
		})
		raw, err = e.complete(ctx, buildRepairPrompt(raw))
		if err != nil {
			return Reply{}, err
		}
		reply, parseErr = parseReply(raw)
	}
	if parseErr != nil {
		if errors.Is(parseErr, ErrUrgencyUnparseable) {
			return Reply{}, parseErr
		}
		return Reply{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, parseErr)
	}
	return reply, nil
}

func (e *Engine) complete(ctx context.Context, messages []llm.Message) (json.RawMessage, error) {
	var raw json.RawMessage
	err := e.Retry.Do(ctx, "llm.symptom_chat", func(ctx context.Context) error {
		var err error
		raw, err = e.LLM.Complete(ctx, messages)
		return err
	})
	if err != nil {
		var exhausted *retry.ExhaustedError
		if errors.As(err, &exhausted) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, exhausted.LastErr)
		}
		return nil, err
	}
	return raw, nil
}

func parseReply(raw json.RawMessage) (Reply, error) {
	var parsed struct {
		ReplyText          string   `json:"reply_text"`
		PossibleConditions []string `json:"possible_conditions"`
		Urgency            string   `json:"urgency"`
		RecommendedActions []string `json:"recommended_actions"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Reply{}, fmt.Errorf("malformed completion: %v", err)
	}
	if strings.TrimSpace(parsed.ReplyText) == "" {
		return Reply{}, errors.New("completion missing reply_text")
	}
	urgency, err := ParseUrgency(parsed.Urgency)
	if err != nil {
		return Reply{}, err
	}

	reply := Reply{
		ReplyText:          parsed.ReplyText,
		PossibleConditions: parsed.PossibleConditions,
		Urgency:            urgency,
		RecommendedActions: parsed.RecommendedActions,
	}
	if reply.PossibleConditions == nil {
		reply.PossibleConditions = []string{}
	}
	if reply.RecommendedActions == nil {
		reply.RecommendedActions = []string{}
	}
	return reply, nil
}
