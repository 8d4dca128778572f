package payment

import "errors"

var (
	ErrNotFound       = errors.New("payment not found")
	ErrInvalidMethod  = errors.New("invalid payment method")
	ErrInvalidAmount  = errors.New("invalid payment amount")
	ErrMissingPayment = errors.New("payment id is required")
	ErrUnauthorized   = errors.New("confirmation not authorized")
)
