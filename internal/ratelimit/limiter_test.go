package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsBurst(t *testing.T) {
	limiter := New(10, time.Second)

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow())
	}
	assert.False(t, limiter.Allow())
}

func TestLimiter_Wait(t *testing.T) {
	limiter := New(100, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}

	waited, aborted := limiter.Stats()
	assert.Equal(t, int64(5), waited)
	assert.Equal(t, int64(0), aborted)
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := New(1, time.Hour)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	require.Error(t, err)

	_, aborted := limiter.Stats()
	assert.Equal(t, int64(1), aborted)
}

func TestLimiter_SetLimit(t *testing.T) {
	limiter := New(1, time.Hour)
	require.True(t, limiter.Allow())
	require.False(t, limiter.Allow())

	limiter.SetLimit(1000, time.Second)
	time.Sleep(5 * time.Millisecond)
	assert.True(t, limiter.Allow())
}
