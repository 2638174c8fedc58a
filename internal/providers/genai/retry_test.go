package genai

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryStopsAfterMaxAttemptsOnRateLimit(t *testing.T) {
	calls := 0
	rateLimited := &APIError{StatusCode: 429, Message: "quota exceeded"}

	_, err := Retry(context.Background(), 2, time.Millisecond, func(ctx context.Context) (string, error) {
		calls++
		return "", rateLimited
	})

	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 429 {
		t.Fatalf("err = %v, want the final rate-limit error", err)
	}
}

func TestRetryDoesNotRetryOtherErrors(t *testing.T) {
	calls := 0
	boom := errors.New("boom")

	_, err := Retry(context.Background(), 3, time.Millisecond, func(ctx context.Context) (int, error) {
		calls++
		return 0, boom
	})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRetrySucceedsAfterRateLimit(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), 2, time.Millisecond, func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", &APIError{StatusCode: 429}
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Retry returned error: %v", err)
	}
	if result != "ok" || calls != 2 {
		t.Fatalf("result = %q after %d calls, want ok after 2", result, calls)
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Retry(ctx, 2, time.Minute, func(ctx context.Context) (string, error) {
		return "", &APIError{StatusCode: 429}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestIsRateLimit(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"status 429", &APIError{StatusCode: 429}, true},
		{"body code 429", &APIError{StatusCode: 400, Code: 429}, true},
		{"resource exhausted", &APIError{StatusCode: 400, Status: "RESOURCE_EXHAUSTED"}, true},
		{"message marker", errors.New("upstream said 429"), true},
		{"plain failure", errors.New("boom"), false},
		{"server error", &APIError{StatusCode: 500}, false},
	}
	for _, tc := range cases {
		if got := IsRateLimit(tc.err); got != tc.want {
			t.Errorf("%s: IsRateLimit = %v, want %v", tc.name, got, tc.want)
		}
	}
}
