package services

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
)

// withRetry runs fn up to retryAttempts times with exponential backoff while
// it fails with an unclassified (dependency) error. Domain errors return
// immediately. Only idempotent reads and deletes may be wrapped.
func withRetry[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var out T
	b := retry.WithMaxRetries(retryAttempts-1, retry.NewExponential(retryBaseDelay))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			if domain.Kind(err) == domain.KindInternal {
				return retry.RetryableError(err)
			}
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// retryDo is withRetry for calls that only return an error.
func retryDo(ctx context.Context, fn func(context.Context) error) error {
	_, err := withRetry(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
