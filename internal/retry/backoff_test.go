package retry

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type terminalErr struct{}

func (terminalErr) Error() string  { return "nothing to do" }
func (terminalErr) Terminal() bool { return true }

func TestDo(t *testing.T) {
	errBoom := errors.New("boom")
	policy := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}

	tests := map[string]struct {
		policy        Policy
		failures      int
		failWith      error
		expectedCalls int32
		expectedValue string
		expectedErr   func(t *testing.T, err error)
	}{
		"success-first-attempt": {
			policy:        policy,
			failures:      0,
			expectedCalls: 1,
			expectedValue: "ok",
		},
		"success-after-one-failure": {
			policy:        policy,
			failures:      1,
			failWith:      errBoom,
			expectedCalls: 2,
			expectedValue: "ok",
		},
		"success-on-last-attempt": {
			policy:        policy,
			failures:      2,
			failWith:      errBoom,
			expectedCalls: 3,
			expectedValue: "ok",
		},
		"always-fails": {
			policy:        policy,
			failures:      100,
			failWith:      errBoom,
			expectedCalls: 3,
			expectedErr: func(t *testing.T, err error) {
				var exhausted *ExhaustedErr
				require.ErrorAs(t, err, &exhausted)
				assert.Equal(t, 3, exhausted.Attempts)
				assert.Equal(t, "summarize", exhausted.Operation)
				assert.ErrorIs(t, err, errBoom)
			},
		},
		"terminal-error-is-not-retried": {
			policy:        policy,
			failures:      100,
			failWith:      terminalErr{},
			expectedCalls: 1,
			expectedErr: func(t *testing.T, err error) {
				assert.Equal(t, terminalErr{}, err)
			},
		},
		"wrapped-terminal-error-is-not-retried": {
			policy:        policy,
			failures:      100,
			failWith:      errors.Join(errBoom, terminalErr{}),
			expectedCalls: 1,
			expectedErr: func(t *testing.T, err error) {
				assert.True(t, IsTerminal(err))
			},
		},
		"zero-attempts-is-invalid": {
			policy:        Policy{MaxAttempts: 0, BaseDelay: time.Millisecond},
			expectedCalls: 0,
			expectedErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidPolicy)
			},
		},
		"single-attempt": {
			policy:        Policy{MaxAttempts: 1, BaseDelay: time.Hour},
			failures:      1,
			failWith:      errBoom,
			expectedCalls: 1,
			expectedErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errBoom)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			op := func(ctx context.Context) (string, error) {
				n := calls.Add(1)
				if int(n) <= tt.failures {
					return "", tt.failWith
				}
				return "ok", nil
			}

			got, err := Do(context.Background(), tt.policy, op, WithOperationName("summarize"))
			assert.Equal(t, tt.expectedCalls, calls.Load())
			if tt.expectedErr != nil {
				require.Error(t, err)
				tt.expectedErr(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, got)
		})
	}
}

func TestDo_LinearDelays(t *testing.T) {
	policy := Policy{MaxAttempts: 3, BaseDelay: 2 * time.Millisecond}

	var delays []time.Duration
	var attempts []int
	_, err := Do(context.Background(), policy, func(ctx context.Context) (int, error) {
		return 0, errors.New("transient")
	}, WithOnRetry(func(attempt int, delay time.Duration, err error) {
		attempts = append(attempts, attempt)
		delays = append(delays, delay)
	}))

	require.Error(t, err)
	assert.Equal(t, []int{1, 2}, attempts)
	assert.Equal(t, []time.Duration{2 * time.Millisecond, 4 * time.Millisecond}, delays)
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := Policy{MaxAttempts: 3, BaseDelay: time.Hour}

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		_, err := Do(ctx, policy, func(ctx context.Context) (int, error) {
			calls.Add(1)
			return 0, errors.New("transient")
		}, WithOnRetry(func(int, time.Duration, error) {
			cancel()
		}))
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), calls.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("retry did not stop after cancellation")
	}
}

func TestDo_ContextAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := Do(ctx, DefaultPolicy(), func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 1, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDo_Logging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(buf, "", 0)

	_, err := Do(context.Background(), Policy{MaxAttempts: 2, BaseDelay: time.Millisecond}, func(ctx context.Context) (int, error) {
		return 0, errors.New("model unavailable")
	}, WithLogger(logger), WithOperationName("CodeSummarizer"))

	require.Error(t, err)
	assert.Contains(t, buf.String(), "CodeSummarizer: attempt 1/2 failed, retrying in 1ms: model unavailable")
	assert.Contains(t, buf.String(), "CodeSummarizer: giving up after 2 attempts")
}

func TestDo_TerminalErrorOnLastAttempt(t *testing.T) {
	var calls atomic.Int32
	_, err := Do(context.Background(), Policy{MaxAttempts: 2, BaseDelay: time.Millisecond}, func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, errors.New("transient")
		}
		return 0, terminalErr{}
	})

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, terminalErr{}, err)
}

func TestLinearBackOff(t *testing.T) {
	b := &linearBackOff{policy: Policy{MaxAttempts: 4, BaseDelay: 10 * time.Second}}

	assert.Equal(t, 10*time.Second, b.NextBackOff())
	assert.Equal(t, 20*time.Second, b.NextBackOff())
	assert.Equal(t, 30*time.Second, b.NextBackOff())

	b.Reset()
	assert.Equal(t, 10*time.Second, b.NextBackOff())
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, 10*time.Second, p.BaseDelay)
	assert.Equal(t, 20*time.Second, p.Delay(2))
}
