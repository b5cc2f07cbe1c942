package middleware

import (
	"golang.org/x/time/rate"

	"pharmacy-ops/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware bundle. perMinute caps the job-trigger
// endpoints; the burst equals the per-minute budget.
func New(l log.Logger, perMinute int) Middleware {
	if perMinute <= 0 {
		perMinute = 60
	}
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
	}
}
