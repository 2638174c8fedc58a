package genai

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Retry defaults match the service's documented policy: two attempts with a
// one second base delay, doubled per attempt.
const (
	DefaultMaxAttempts  = 2
	DefaultInitialDelay = time.Second
)

// IsRateLimit reports whether the error signals a rate-limit or quota
// condition, either via an explicit 429 status/code or a message marker.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 || apiErr.Code == 429 {
			return true
		}
		if strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return true
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToUpper(msg), "RESOURCE_EXHAUSTED")
}

// Retry runs fn up to maxAttempts times, backing off initialDelay * 2^i
// between attempts. Only rate-limit failures are retried; any other error
// propagates immediately. The last error is returned when attempts are
// exhausted.
func Retry[T any](ctx context.Context, maxAttempts int, initialDelay time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if initialDelay <= 0 {
		initialDelay = DefaultInitialDelay
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !IsRateLimit(err) || attempt == maxAttempts-1 {
			return zero, err
		}
		delay := initialDelay << attempt
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
	return zero, lastErr
}
