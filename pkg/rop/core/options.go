package core

import (
	"context"
	"time"
)

type OptionKey string

const (
	RetryOptionKey OptionKey = "retry_options"
)

// RetryOptions are the defaults used by retries that were not given
// explicit settings.
type RetryOptions struct {
	// Retries is the number of attempts after the first one
	Retries int
	// InitialDelay is the wait before the second attempt; it doubles after that
	InitialDelay time.Duration
}

func WithRetryOptions(ctx context.Context, retries int, initialDelay time.Duration) context.Context {
	return context.WithValue(ctx, RetryOptionKey, RetryOptions{Retries: retries, InitialDelay: initialDelay})
}

func GetRetryOptions(ctx context.Context, defaults RetryOptions) RetryOptions {
	options, ok := ctx.Value(RetryOptionKey).(RetryOptions)
	if ok {
		return options
	}
	return defaults
}
