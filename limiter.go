package sysloggen

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces the sends of all workers together.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NewRateLimiter creates a Limiter allowing perSecond sends per second in total.
// A non-positive rate means no limit and returns nil.
func NewRateLimiter(perSecond float64) Limiter {
	if perSecond <= 0 {
		return nil
	}
	burst := int(perSecond / 10)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
