package retry

import (
	"context"
	"fmt"
	"math"
	"time"

	"symptoscan-backend/internal/shared/telemetry"
)

// Policy configures exponential backoff for a fallible remote call.
// Zero values are normalized by Do: MaxAttempts floors at 1 and
// Multiplier at 1.0.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
	// Retryable decides whether an error is worth another attempt.
	// Defaults to Transient.
	Retryable func(error) bool
	// Sleep waits between attempts. Defaults to a context-aware
	// time.After wait; tests inject a fake.
	Sleep func(ctx context.Context, d time.Duration) error
}

// ExhaustedError reports that a policy ran out of attempts.
type ExhaustedError struct {
	Op       string
	Attempts int
	LastErr  error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: retries exhausted after %d attempts: %v", e.Op, e.Attempts, e.LastErr)
}

func (e *ExhaustedError) Unwrap() error { return e.LastErr }

// Default mirrors the backoff shape the upstream providers document:
// three attempts, exponential waits capped at ten seconds.
var Default = Policy{
	MaxAttempts: 3,
	BaseDelay:   time.Second,
	Multiplier:  2,
	MaxDelay:    10 * time.Second,
}

// Do runs fn up to MaxAttempts times, sleeping between attempts.
// It returns nil on the first success, the error itself when
// Retryable rejects it, and *ExhaustedError once the budget is spent.
// ctx cancellation aborts the backoff wait immediately.
func (p Policy) Do(ctx context.Context, op string, fn func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = Transient
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = waitCtx
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			telemetry.Error("retry.permanent", map[string]any{
				"op":      op,
				"attempt": attempt,
				"error":   err.Error(),
			})
			return err
		}
		if attempt == attempts {
			break
		}

		delay := p.delay(attempt)
		telemetry.Info("retry.attempt", map[string]any{
			"op":       op,
			"attempt":  attempt,
			"error":    err.Error(),
			"delay_ms": delay.Milliseconds(),
		})
		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}

	telemetry.Error("retry.exhausted", map[string]any{
		"op":       op,
		"attempts": attempts,
		"error":    lastErr.Error(),
	})
	return &ExhaustedError{Op: op, Attempts: attempts, LastErr: lastErr}
}

func (p Policy) delay(attempt int) time.Duration {
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	d := time.Duration(float64(p.BaseDelay) * math.Pow(mult, float64(attempt-1)))
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	if d < 0 {
		d = p.MaxDelay
	}
	return d
}

func waitCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
