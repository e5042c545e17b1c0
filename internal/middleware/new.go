package middleware

import (
	"voltassist/internal/auth"
	"voltassist/pkg/log"
)

type Middleware struct {
	l       log.Logger
	authUC  auth.UseCase
	limiter *rateLimiter
}

// New creates the middleware set shared by all HTTP routes.
func New(l log.Logger, authUC auth.UseCase, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		authUC:  authUC,
		limiter: newRateLimiter(rateLimitPerMin),
	}
}
