package middleware

import (
	"github.com/kiki830621/che-things-mcp/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. requestsPerMin caps each client's
// tool-call rate; every call ultimately serializes onto one scripting
// worker, so an unthrottled client can starve all the others.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
