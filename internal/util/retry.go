// ABOUTME: Retry utilities with exponential backoff and a reusable policy
// ABOUTME: Shared by the ingestion orchestrator for transient capability failures
package util

import (
	"math/rand/v2"
	"time"
)

// CalculateBackoff returns exponential backoff with jitter
// Base delay is doubled each attempt, with random jitter up to 25%
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap attempt to avoid overflow in bit shift (max 30 for safety)
	if attempt > 30 {
		attempt = 30
	}
	// Exponential: 2^attempt * base
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	// Cap at 30 seconds
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	// Add jitter: -25% to +25% using auto-seeded math/rand/v2
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}

// Policy is a bounded retry policy. MaxAttempts is the total number of
// attempts (not re-attempts), BaseDelay feeds CalculateBackoff between
// attempts, and Retryable decides whether an error is worth another attempt.
// A nil Retryable treats every error as terminal.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Retryable   func(error) bool
}

// Do runs fn until it succeeds, fails terminally, or MaxAttempts is
// exhausted. fn receives the attempt number, starting at 1. Do returns the
// number of attempts actually made alongside the last error.
//
// A run is never interrupted once started: the backoff wait delays only this
// policy instance, and exhaustion returns the last error unchanged.
func (p Policy) Do(fn func(attempt int) error) (int, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil {
			return attempt, nil
		}
		if p.Retryable == nil || !p.Retryable(lastErr) {
			return attempt, lastErr
		}
		if attempt < maxAttempts {
			time.Sleep(CalculateBackoff(p.BaseDelay, attempt))
		}
	}
	return maxAttempts, lastErr
}
