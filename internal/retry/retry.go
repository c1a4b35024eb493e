// Package retry provides a bounded retry combinator used to wait for
// slow-starting infrastructure such as the vector store.
package retry

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Do executes task up to attempts times with a fixed delay between tries.
// Every task error is retried until the budget is exhausted; the final
// error is returned. attempts must be at least 1. The delay is
// parameterised so tests can run with a zero delay.
func Do(ctx context.Context, attempts uint64, delay time.Duration, task func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}
	if delay <= 0 {
		// NewConstant rejects non-positive durations.
		delay = time.Nanosecond
	}
	b := retry.WithMaxRetries(attempts-1, retry.NewConstant(delay))
	return DoWithBackoff(ctx, b, task)
}

// DoWithBackoff executes task under the given backoff strategy.
// Exposed so callers can inject a custom backoff (e.g., Fibonacci for
// remote services, or an immediate backoff in tests).
func DoWithBackoff(ctx context.Context, b retry.Backoff, task func(ctx context.Context) error) error {
	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := task(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
