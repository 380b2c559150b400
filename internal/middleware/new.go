package middleware

import (
	"clientatech-analyst/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *clientLimiter
}

func New(l log.Logger) Middleware {
	return Middleware{
		l:       l,
		limiter: newClientLimiter(defaultRateLimit, defaultRateBurst),
	}
}
