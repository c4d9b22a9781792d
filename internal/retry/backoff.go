// Package retry re-invokes failing operations with a linearly increasing delay.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// ErrInvalidPolicy is returned when a policy allows fewer than one attempt.
var ErrInvalidPolicy = errors.New("retry: policy must allow at least one attempt")

// Policy configures how many times an operation runs and how long to wait between runs.
// The wait before attempt k+1 is BaseDelay × k.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultPolicy returns three attempts with a ten second base delay.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   10 * time.Second,
	}
}

// Delay returns the wait that follows the given failed attempt (starting at 1).
func (p Policy) Delay(attempt int) time.Duration {
	return p.BaseDelay * time.Duration(attempt)
}

// ExhaustedErr is returned when every attempt failed.
type ExhaustedErr struct {
	Operation string
	Attempts  int
	Err       error
}

func (e *ExhaustedErr) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("retries exhausted after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s: retries exhausted after %d attempts: %v", e.Operation, e.Attempts, e.Err)
}

// Unwrap returns the error of the last attempt.
func (e *ExhaustedErr) Unwrap() error {
	return e.Err
}

// terminal is implemented by errors that must not be retried.
type terminal interface {
	Terminal() bool
}

// IsTerminal reports whether err, or any error it wraps, is marked as terminal.
func IsTerminal(err error) bool {
	var t terminal
	return errors.As(err, &t) && t.Terminal()
}

type options struct {
	logger    *log.Logger
	operation string
	onRetry   func(attempt int, delay time.Duration, err error)
}

// Option customizes a single Do call.
type Option func(*options)

// WithLogger logs every failed attempt and the wait that follows it.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOperationName names the operation in log lines and in ExhaustedErr.
func WithOperationName(name string) Option {
	return func(o *options) {
		o.operation = name
	}
}

// WithOnRetry registers a callback invoked before each wait.
func WithOnRetry(fn func(attempt int, delay time.Duration, err error)) Option {
	return func(o *options) {
		o.onRetry = fn
	}
}

// Do runs op until it succeeds, returns a terminal error, or the policy is exhausted.
// A cancelled context aborts the wait and returns the context error.
func Do[T any](ctx context.Context, policy Policy, op func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	var zero T
	if policy.MaxAttempts < 1 {
		return zero, ErrInvalidPolicy
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	attempts := 0
	result, err := backoff.Retry(ctx, func() (T, error) {
		attempts++
		result, err := op(ctx)
		if err != nil && IsTerminal(err) {
			return zero, backoff.Permanent(err)
		}
		return result, err
	},
		backoff.WithBackOff(&linearBackOff{policy: policy}),
		backoff.WithMaxTries(uint(policy.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, delay time.Duration) {
			if o.logger != nil {
				o.logger.Printf("%s: attempt %d/%d failed, retrying in %s: %v", o.name(), attempts, policy.MaxAttempts, delay, err)
			}
			if o.onRetry != nil {
				o.onRetry(attempts, delay, err)
			}
		}),
	)
	if err == nil {
		return result, nil
	}

	// The last attempt comes back still wrapped as permanent.
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return zero, permanent.Unwrap()
	}
	if IsTerminal(err) {
		return zero, err
	}
	if ctx.Err() != nil {
		return zero, err
	}

	if o.logger != nil {
		o.logger.Printf("%s: giving up after %d attempts: %v", o.name(), attempts, err)
	}
	return zero, &ExhaustedErr{
		Operation: o.operation,
		Attempts:  attempts,
		Err:       err,
	}
}

// linearBackOff waits BaseDelay × k after the k-th failed attempt.
type linearBackOff struct {
	policy   Policy
	attempts int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempts++
	return b.policy.Delay(b.attempts)
}

func (b *linearBackOff) Reset() {
	b.attempts = 0
}

func (o options) name() string {
	if o.operation == "" {
		return "retry"
	}
	return o.operation
}
