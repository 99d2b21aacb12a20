// Package retry implements bounded retries with exponential backoff and
// jitter for calls to the flight offer provider.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config holds the retry policy.
type Config struct {
	// MaxAttempts counts the initial attempt, so 3 means at most 2 retries.
	MaxAttempts int

	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the wait between retries.
	MaxDelay time.Duration

	// Multiplier grows the delay after each failed attempt.
	Multiplier float64

	// JitterFactor adds up to this fraction of random extra delay, spreading
	// out retries when many requests fail at once.
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt. A nil
	// predicate retries every error.
	RetryIf func(error) bool
}

// ProviderConfig is the policy used for external provider calls.
var ProviderConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// DoWithResult runs fn until it succeeds, the policy is exhausted, or the
// context ends. It returns the last result and error seen.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(backoffDelay(delay, cfg.MaxDelay, cfg.JitterFactor)):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// backoffDelay applies jitter to the current delay and caps it at maxDelay.
func backoffDelay(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	sleep := delay + time.Duration(rand.Float64()*float64(delay)*jitterFactor)
	if sleep > maxDelay {
		sleep = maxDelay
	}
	return sleep
}

// Permanent marks an error as not worth retrying.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err so SkipPermanent stops retrying it. A nil err
// stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err carries a Permanent marker anywhere in
// its chain.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that retries everything except
// permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}
