package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetRetryOptions(t *testing.T) {
	t.Parallel()

	defaults := RetryOptions{Retries: 3, InitialDelay: time.Second}
	assert.Equal(t, defaults, GetRetryOptions(context.Background(), defaults))

	ctx := WithRetryOptions(context.Background(), 5, 10*time.Millisecond)
	assert.Equal(t, RetryOptions{Retries: 5, InitialDelay: 10 * time.Millisecond}, GetRetryOptions(ctx, defaults))
}
