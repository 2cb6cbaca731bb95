// Package ratelimit paces outgoing requests with a token bucket.
package ratelimit

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Limiter wraps a token bucket sized as requests per period. The
// dispatcher waits on it before every send; it never rejects work on its
// own, it only delays it.
type Limiter struct {
	bucket  *rate.Limiter
	waited  atomic.Int64
	aborted atomic.Int64
}

// New creates a Limiter allowing the specified number of requests per
// period, with a burst of the full allowance.
func New(requests int, period time.Duration) *Limiter {
	rps := float64(requests) / period.Seconds()
	return &Limiter{
		bucket: rate.NewLimiter(rate.Limit(rps), requests),
	}
}

// Wait blocks until the bucket allows a request or ctx is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.bucket.Wait(ctx); err != nil {
		l.aborted.Add(1)
		return err
	}
	l.waited.Add(1)
	return nil
}

// Allow reports whether a request may proceed immediately.
func (l *Limiter) Allow() bool {
	return l.bucket.Allow()
}

// SetLimit replaces the rate with requests per period.
func (l *Limiter) SetLimit(requests int, period time.Duration) {
	rps := float64(requests) / period.Seconds()
	l.bucket.SetLimit(rate.Limit(rps))
	l.bucket.SetBurst(requests)
}

// Stats returns how many requests passed through the limiter and how many
// were abandoned by context cancellation while waiting.
func (l *Limiter) Stats() (waited, aborted int64) {
	return l.waited.Load(), l.aborted.Load()
}
