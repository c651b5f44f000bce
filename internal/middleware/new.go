package middleware

import (
	"library-management-system/pkg/log"
)

// Middleware groups the HTTP middlewares the server registers per route.
type Middleware struct {
	l   log.Logger
	cfg Config
}

// Config tunes cross-cutting middleware behaviour.
type Config struct {
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// New creates a new Middleware.
func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
