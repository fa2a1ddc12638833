// Package gateway wraps outbound calls to external collaborators with
// bounded retry. Only transient external API failures are retried; any
// other error propagates to the caller unchanged.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-booking-service/internal/pkg/exception"
)

const (
	// MaxRetries is the total number of attempts for a wrapped operation.
	MaxRetries = 3

	// RetryDelay is the base backoff unit. The wait before attempt n+1 is
	// RetryDelay * n (linear, no jitter).
	RetryDelay = 300 * time.Millisecond
)

// Execute invokes operation and returns its result. On a transient
// external API error it retries up to MaxRetries attempts, waiting
// RetryDelay multiplied by the attempt number between tries. The last
// transient error is returned unchanged once the ceiling is reached.
func Execute[T any](ctx context.Context,
	operationName string,
	operation func(context.Context) (T, error),
) (T, error) {
	var zero T

	attempt := 0

	for {
		slog.InfoContext(ctx, "starting operation", slog.String("operation", operationName))

		result, err := operation(ctx)
		if err == nil {
			slog.InfoContext(ctx, "operation completed successfully",
				slog.String("operation", operationName))

			return result, nil
		}

		if !exception.IsRetryable(err) {
			slog.ErrorContext(ctx, "unexpected error in operation",
				slog.String("operation", operationName),
				slog.Any("error", err))

			return zero, err
		}

		attempt++
		slog.WarnContext(ctx, "retryable error in operation",
			slog.String("operation", operationName),
			slog.Int("attempt", attempt),
			slog.Any("error", err))

		if attempt >= MaxRetries {
			slog.ErrorContext(ctx, "max retry attempts reached",
				slog.String("operation", operationName),
				slog.Int("attempts", attempt))

			return zero, err
		}

		backoff := RetryDelay * time.Duration(attempt)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return zero, fmt.Errorf("operation %s cancelled: %w", operationName, ctx.Err())
		}
	}
}
