// Package ai talks to the hosted language model that powers the assistant
// chat and onboarding occupation analysis, and builds the prompts for both.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// TextGenerator produces a completion for a system and user prompt pair
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrEmptyResponse is returned when the provider answered without content or reasoning
var ErrEmptyResponse = errors.New("AI returned an empty response")

// APIError is a non-2xx answer from the provider
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("AI service error (status %d): %s", e.StatusCode, e.Message)
}

// Retryable reports whether the request may succeed if sent again
func (e *APIError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// retryPolicy resends transient failures with linear backoff
type retryPolicy struct {
	maxRetries int
	backoff    time.Duration
	logger     zerolog.Logger
}

func newRetryPolicy(maxRetries int, logger zerolog.Logger) retryPolicy {
	return retryPolicy{maxRetries: maxRetries, backoff: time.Second, logger: logger}
}

func (p retryPolicy) run(ctx context.Context, call func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			wait := p.backoff * time.Duration(attempt)
			p.logger.Warn().Err(lastErr).Int("attempt", attempt).Dur("backoff", wait).Msg("Retrying AI request")
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
			}
		}

		text, err := call()
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !isRetryable(ctx, err) {
			break
		}
	}
	return "", lastErr
}

func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	var tErr *transportError
	return errors.As(err, &tErr)
}
