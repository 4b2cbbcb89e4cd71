// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxRetries      int                          // Maximum number of retry attempts
	InitialInterval time.Duration                // Delay before the first retry
	MaxInterval     time.Duration                // Upper bound for any single delay
	Multiplier      float64                      // Exponential backoff multiplier
	Jitter          bool                         // Add up to 25% random jitter
	OnRetry         func(attempt int, err error) // Optional callback invoked before each retry
}

// DefaultRetryConfig returns defaults for fetching reference data.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     8 * time.Second,
		Multiplier:      2.0,
		Jitter:          true,
	}
}

// RetryableOperation represents an operation that can be retried.
type RetryableOperation func(ctx context.Context) error

// RetryWithBackoff calls operation until it succeeds, returns an error that
// ClassifyError marks as not retryable, or MaxRetries retries are spent.
// Cancelling ctx during a wait returns ctx.Err().
func RetryWithBackoff(ctx context.Context, config RetryConfig, operation RetryableOperation) error {
	err := operation(ctx)
	for attempt := 1; err != nil && attempt <= config.MaxRetries; attempt++ {
		if !IsRetryable(err) {
			return err
		}

		timer := time.NewTimer(config.delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if config.OnRetry != nil {
			config.OnRetry(attempt, err)
		}
		err = operation(ctx)
	}
	return err
}

// delay returns the wait before retry n (1-based):
// InitialInterval * Multiplier^(n-1), plus jitter, capped at MaxInterval
func (c RetryConfig) delay(n int) time.Duration {
	d := float64(c.InitialInterval) * math.Pow(c.Multiplier, float64(n-1))
	if c.Multiplier <= 0 {
		d = float64(c.InitialInterval)
	}
	if c.Jitter {
		d += d * 0.25 * rand.Float64()
	}
	wait := time.Duration(d)
	if c.MaxInterval > 0 && wait > c.MaxInterval {
		wait = c.MaxInterval
	}
	return wait
}

// RetryableFunc is a retryable function that returns a value.
type RetryableFunc[T any] func(ctx context.Context) (T, error)

// RetryWithResult runs fn under RetryWithBackoff and returns its last result.
func RetryWithResult[T any](ctx context.Context, config RetryConfig, fn RetryableFunc[T]) (T, error) {
	var result T
	err := RetryWithBackoff(ctx, config, func(ctx context.Context) error {
		var e error
		result, e = fn(ctx)
		return e
	})
	return result, err
}

// IsRetryable reports whether an error should be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return ClassifyError(err).IsRetryable()
}
