package async

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
	"github.com/ib-77/outcome/pkg/rop/errs"
)

const (
	DefaultRetries      = 3
	DefaultInitialDelay = time.Second
)

// RetryConfig defines retry behaviour.
type RetryConfig struct {
	// Retries is the number of attempts after the first one
	Retries int
	// InitialDelay is the wait before the second attempt; every later wait doubles
	InitialDelay time.Duration
	// OnRetry is called before each wait with the attempt that just failed
	OnRetry func(attempt int, err error, nextDelay time.Duration)
	// After creates a timer channel (for testing, defaults to time.After)
	After func(d time.Duration) <-chan time.Time
}

// Retry calls fn until it succeeds, at most retries+1 times. The wait
// before attempt k (k >= 2) is initialDelay * 2^(k-2). Every failure is
// retried regardless of its kind, and the last failure is returned
// unchanged.
func Retry[T any](ctx context.Context, fn func(ctx context.Context) rop.Result[T],
	retries int, initialDelay time.Duration) rop.Result[T] {
	return RetryWithConfig(ctx, RetryConfig{Retries: retries, InitialDelay: initialDelay}, fn)
}

// RetryDefault retries with the options stored in ctx by
// core.WithRetryOptions, or DefaultRetries and DefaultInitialDelay.
func RetryDefault[T any](ctx context.Context, fn func(ctx context.Context) rop.Result[T]) rop.Result[T] {
	o := core.GetRetryOptions(ctx, core.RetryOptions{Retries: DefaultRetries, InitialDelay: DefaultInitialDelay})
	return Retry(ctx, fn, o.Retries, o.InitialDelay)
}

// nextDelay doubles d, holding it once doubling would overflow.
func nextDelay(d time.Duration) time.Duration {
	if d > math.MaxInt64/2 {
		return d
	}
	return d * 2
}

// RetryWithConfig is Retry with hooks. If ctx ends while waiting, the
// result is a CancellationError whose cause is the last failure.
func RetryWithConfig[T any](ctx context.Context, config RetryConfig,
	fn func(ctx context.Context) rop.Result[T]) rop.Result[T] {

	after := config.After
	if after == nil {
		after = time.After
	}
	delay := config.InitialDelay

	res := fn(ctx)
	for attempt := 1; attempt <= config.Retries && !res.IsSuccess(); attempt++ {
		if config.OnRetry != nil {
			config.OnRetry(attempt, res.Err(), delay)
		}

		select {
		case <-ctx.Done():
			return rop.Fail[T](errs.Cancellation(
				"retry stopped after "+strconv.Itoa(attempt)+" attempts", "", res.Err()))
		case <-after(delay):
		}

		res = fn(ctx)
		delay = nextDelay(delay)
	}
	return res
}
