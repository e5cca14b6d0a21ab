// Package worker provides the concurrency primitives used by the fetch
// layer: a request rate limiter and a bounded pool for page downloads.
package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles requests against the Federal Register API. The client
// only ever talks to one host, so a single token bucket is enough.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing requestsPerSecond with the given
// burst.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until a request may proceed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed right now without waiting.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
