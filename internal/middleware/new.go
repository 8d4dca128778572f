package middleware

import (
	"insurance-renewal-assistant/config"
	"insurance-renewal-assistant/pkg/log"
)

type Middleware struct {
	l      log.Logger
	config *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:      l,
		config: cfg,
	}
}
