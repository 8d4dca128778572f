package http

import (
	"insurance-renewal-assistant/internal/payment"
	"insurance-renewal-assistant/pkg/log"
)

// Handler is the public interface for the payment HTTP delivery layer.
type Handler interface {
	Process(c interface{})
	Status(c interface{})
	Confirm(c interface{})
}

type handler struct {
	l  log.Logger
	uc payment.UseCase
}

// New creates a new HTTP handler for the payment domain.
func New(l log.Logger, uc payment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
