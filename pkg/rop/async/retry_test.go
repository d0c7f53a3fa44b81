package async

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
	"github.com/ib-77/outcome/pkg/rop/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// immediate records requested delays and fires at once
func immediate(delays *[]time.Duration) func(time.Duration) <-chan time.Time {
	return func(d time.Duration) <-chan time.Time {
		*delays = append(*delays, d)
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	}
}

func TestRetry_AlwaysFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls int
	var failures []error
	var delays []time.Duration
	fn := func(ctx context.Context) rop.Result[int] {
		calls++
		err := fmt.Errorf("attempt %d", calls)
		failures = append(failures, err)
		return rop.Fail[int](err)
	}

	res := RetryWithConfig(ctx, RetryConfig{
		Retries:      3,
		InitialDelay: 100 * time.Millisecond,
		After:        immediate(&delays),
	}, fn)

	assert.Equal(t, 4, calls)
	require.True(t, res.IsFailure())
	assert.Same(t, failures[3], res.Err())
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}, delays)
}

func TestRetry_SucceedsEventually(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls int
	var attempts []int
	var delays []time.Duration
	res := RetryWithConfig(ctx, RetryConfig{
		Retries:      5,
		InitialDelay: time.Millisecond,
		After:        immediate(&delays),
		OnRetry:      func(attempt int, err error, next time.Duration) { attempts = append(attempts, attempt) },
	}, func(ctx context.Context) rop.Result[string] {
		calls++
		if calls < 3 {
			return rop.Fail[string](errs.Technical("flaky"))
		}
		return rop.Success("done")
	})

	assert.Equal(t, "done", res.Value())
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, attempts)
	assert.Len(t, delays, 2)
}

func TestRetry_DelayStopsDoublingBeforeOverflow(t *testing.T) {
	t.Parallel()

	var delays []time.Duration
	res := RetryWithConfig(context.Background(), RetryConfig{
		Retries:      40,
		InitialDelay: time.Second,
		After:        immediate(&delays),
	}, func(ctx context.Context) rop.Result[int] {
		return rop.Fail[int](errors.New("down"))
	})

	assert.True(t, res.IsFailure())
	require.Len(t, delays, 40)
	for i := 1; i < len(delays); i++ {
		assert.Positive(t, delays[i], "delay %d", i)
		assert.GreaterOrEqual(t, delays[i], delays[i-1], "delay %d", i)
	}
	assert.Equal(t, delays[38], delays[39])
}

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	t.Parallel()

	calls := 0
	res := Retry(context.Background(), func(ctx context.Context) rop.Result[int] {
		calls++
		return rop.Success(1)
	}, 3, time.Hour)

	assert.Equal(t, 1, res.Value())
	assert.Equal(t, 1, calls)
}

func TestRetry_ZeroRetries(t *testing.T) {
	t.Parallel()

	calls := 0
	boom := errors.New("boom")
	res := Retry(context.Background(), func(ctx context.Context) rop.Result[int] {
		calls++
		return rop.Fail[int](boom)
	}, 0, time.Hour)

	assert.Same(t, boom, res.Err())
	assert.Equal(t, 1, calls)
}

func TestRetry_RealTimer(t *testing.T) {
	t.Parallel()

	calls := 0
	start := time.Now()
	res := Retry(context.Background(), func(ctx context.Context) rop.Result[int] {
		calls++
		return rop.Fail[int](errors.New("nope"))
	}, 2, 5*time.Millisecond)

	assert.True(t, res.IsFailure())
	assert.Equal(t, 3, calls)
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestRetry_ContextCancelledDuringWait(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	last := errs.Technical("down")
	calls := 0

	res := RetryWithConfig(ctx, RetryConfig{
		Retries:      3,
		InitialDelay: time.Hour,
		OnRetry:      func(int, error, time.Duration) { cancel() },
	}, func(ctx context.Context) rop.Result[int] {
		calls++
		return rop.Fail[int](last)
	})

	assert.Equal(t, 1, calls)
	assert.True(t, res.IsCancel())
	assert.ErrorIs(t, res.Err(), last)
}

func TestRetryDefault_UsesContextOptions(t *testing.T) {
	t.Parallel()

	ctx := core.WithRetryOptions(context.Background(), 1, time.Millisecond)
	calls := 0
	res := RetryDefault(ctx, func(ctx context.Context) rop.Result[int] {
		calls++
		return rop.Fail[int](errors.New("x"))
	})

	assert.True(t, res.IsFailure())
	assert.Equal(t, 2, calls)
}
