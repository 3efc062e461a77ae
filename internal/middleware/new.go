package middleware

import (
	"catalog-manager/config"
	"catalog-manager/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxSources, cfg.SourceRetention)
	}
	return mw
}
