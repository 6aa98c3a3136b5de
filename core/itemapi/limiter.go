package itemapi

import (
	"context"

	"catalog-ingest/core/metrics"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Limiter gates outbound requests with a fixed number of admission slots and
// an optional token bucket. Waiting callers are queued in arrival order and
// are never rejected; only context cancellation releases a waiter early.
type Limiter struct {
	slots *semaphore.Weighted
	rate  *rate.Limiter
	max   int64
}

// NewLimiter creates a limiter admitting at most maxConcurrent requests at a
// time. rps > 0 additionally limits request starts per second.
func NewLimiter(maxConcurrent int, rps float64) *Limiter {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	l := &Limiter{
		slots: semaphore.NewWeighted(int64(maxConcurrent)),
		max:   int64(maxConcurrent),
	}
	if rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		l.rate = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return l
}

// Do runs fn once a slot is available and releases the slot when fn returns.
func (l *Limiter) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := l.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	defer l.slots.Release(1)

	if l.rate != nil {
		if err := l.rate.Wait(ctx); err != nil {
			return err
		}
	}

	metrics.ItemAPIInFlight.Inc()
	defer metrics.ItemAPIInFlight.Dec()

	return fn(ctx)
}

// Capacity returns the number of admission slots.
func (l *Limiter) Capacity() int {
	return int(l.max)
}
