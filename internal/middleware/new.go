package middleware

import (
	"task-list-manager/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	m := Middleware{l: l}
	if requestsPerMin > 0 {
		m.limiter = newRateLimiter(requestsPerMin)
	}
	return m
}
