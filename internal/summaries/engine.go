package summaries

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

// Result is the parsed summarization output. KeyFindings and
// Recommendations are always non-nil.
type Result struct {
	SummaryText     string   `json:"summary_text"`
	KeyFindings     []string `json:"key_findings"`
	Recommendations []string `json:"recommendations"`
}

// Engine turns report text into a structured summary via the LLM.
// Network retries (Retry) and parse re-asks (ReaskLimit) have
// independent budgets: a malformed completion is usually model noise,
// not a transport problem.
type Engine struct {
	LLM        llm.Client
	Retry      retry.Policy
	ReaskLimit int
}

// Summarize sends the report text to the model and parses the
// structured completion.
func (e *Engine) Summarize(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyInput
	}

	raw, err := e.complete(ctx, buildPrompt(text))
	if err != nil {
		return Result{}, err
	}

	result, parseErr := parseResult(raw)
	reasks := e.ReaskLimit
	if reasks < 0 {
		reasks = 0
	}
	for i := 0; parseErr != nil && i < reasks; i++ {
		telemetry.Info("summaries.reask", map[string]any{
			"attempt": i + 1,
			"error":   parseErr.Error(),
		})
		raw, err = e.complete(ctx, buildRepairPrompt(raw))
		if err != nil {
			return Result{}, err
		}
		result, parseErr = parseResult(raw)
	}
	if parseErr != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSummarizationFailed, parseErr)
	}
	return result, nil
}

func (e *Engine) complete(ctx context.Context, messages []llm.Message) (json.RawMessage, error) {
	var raw json.RawMessage
	err := e.Retry.Do(ctx, "llm.summarize", func(ctx context.Context) error {
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

func parseResult(raw json.RawMessage) (Result, error) {
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, fmt.Errorf("malformed completion: %v", err)
	}
	if strings.TrimSpace(result.SummaryText) == "" {
		return Result{}, errors.New("completion missing summary_text")
	}
	if result.KeyFindings == nil {
		result.KeyFindings = []string{}
	}
	if result.Recommendations == nil {
		result.Recommendations = []string{}
	}
	return result, nil
}
