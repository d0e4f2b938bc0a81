// ABOUTME: Tests for retry utilities including exponential backoff and policy
// ABOUTME: Validates backoff bounds, attempt counting, and retryability gating
package util

import (
	"errors"
	"testing"
	"time"
)

func TestCalculateBackoff_ZeroAttempt(t *testing.T) {
	result := CalculateBackoff(time.Second, 0)
	if result != 0 {
		t.Errorf("expected 0 for attempt 0, got %v", result)
	}
}

func TestCalculateBackoff_FirstAttempt(t *testing.T) {
	baseDelay := 100 * time.Millisecond
	result := CalculateBackoff(baseDelay, 1)

	// First attempt: 2^1 * 100ms = 200ms, with ±25% jitter = 150ms to 250ms
	minExpected := 150 * time.Millisecond
	maxExpected := 250 * time.Millisecond

	if result < minExpected || result > maxExpected {
		t.Errorf("expected backoff between %v and %v, got %v", minExpected, maxExpected, result)
	}
}

func TestCalculateBackoff_ExponentialGrowth(t *testing.T) {
	baseDelay := 100 * time.Millisecond

	for attempt := 1; attempt <= 5; attempt++ {
		// Expected base: 2^attempt * 100ms
		expectedBase := baseDelay * time.Duration(1<<uint(attempt))
		minExpected := expectedBase * 3 / 4 // -25%
		maxExpected := expectedBase * 5 / 4 // +25%

		result := CalculateBackoff(baseDelay, attempt)

		if result < minExpected || result > maxExpected {
			t.Errorf("attempt %d: expected backoff between %v and %v, got %v",
				attempt, minExpected, maxExpected, result)
		}
	}
}

func TestCalculateBackoff_CapsAt30Seconds(t *testing.T) {
	baseDelay := time.Second

	// Attempt 10 would give 2^10 * 1s = 1024s without cap
	result := CalculateBackoff(baseDelay, 10)

	// Should be capped at 30s with ±25% jitter = 22.5s to 37.5s
	maxAllowed := 37500 * time.Millisecond

	if result > maxAllowed {
		t.Errorf("expected backoff <= %v (30s + 25%% jitter), got %v", maxAllowed, result)
	}
}

func TestPolicy_SucceedsFirstAttempt(t *testing.T) {
	policy := Policy{MaxAttempts: 3}

	calls := 0
	attempts, err := policy.Do(func(attempt int) error {
		calls++
		if attempt != calls {
			t.Errorf("attempt number = %d, want %d", attempt, calls)
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Do() error = %v, want nil", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestPolicy_ExhaustsAttemptsOnRetryableError(t *testing.T) {
	transient := errors.New("transient failure")
	policy := Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Retryable:   func(err error) bool { return errors.Is(err, transient) },
	}

	calls := 0
	attempts, err := policy.Do(func(attempt int) error {
		calls++
		return transient
	})

	if !errors.Is(err, transient) {
		t.Fatalf("Do() error = %v, want %v", err, transient)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3 (max)", attempts)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want exactly MaxAttempts", calls)
	}
}

func TestPolicy_StopsImmediatelyOnTerminalError(t *testing.T) {
	terminal := errors.New("structural failure")
	policy := Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Retryable:   func(err error) bool { return false },
	}

	calls := 0
	attempts, err := policy.Do(func(attempt int) error {
		calls++
		return terminal
	})

	if !errors.Is(err, terminal) {
		t.Fatalf("Do() error = %v, want %v", err, terminal)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestPolicy_NilRetryableTreatsErrorsAsTerminal(t *testing.T) {
	policy := Policy{MaxAttempts: 5}

	calls := 0
	attempts, err := policy.Do(func(attempt int) error {
		calls++
		return errors.New("anything")
	})

	if err == nil {
		t.Fatal("Do() error = nil, want error")
	}
	if attempts != 1 || calls != 1 {
		t.Errorf("attempts = %d, calls = %d, want 1 and 1", attempts, calls)
	}
}

func TestPolicy_RecoversMidway(t *testing.T) {
	transient := errors.New("transient failure")
	policy := Policy{
		MaxAttempts: 4,
		BaseDelay:   time.Millisecond,
		Retryable:   func(err error) bool { return true },
	}

	attempts, err := policy.Do(func(attempt int) error {
		if attempt < 3 {
			return transient
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Do() error = %v, want nil", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3 (success on third attempt)", attempts)
	}
}

func TestPolicy_ZeroMaxAttemptsRunsOnce(t *testing.T) {
	policy := Policy{}

	calls := 0
	attempts, _ := policy.Do(func(attempt int) error {
		calls++
		return errors.New("fail")
	})

	if attempts != 1 || calls != 1 {
		t.Errorf("attempts = %d, calls = %d, want 1 and 1", attempts, calls)
	}
}
