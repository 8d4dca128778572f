package repository

import (
	"time"

	"insurance-renewal-assistant/internal/model"
)

// CreateOptions holds parameters for inserting a new payment record.
type CreateOptions struct {
	ID             string
	SessionID      string
	TransactionRef string
	Method         string

	Insurer   string
	Plate     string
	Insurance float64
	AddOns    float64
	RoadTax   float64
	Total     float64

	ExpiresAt time.Time
}

// UpdateStatusOptions holds parameters for a status transition.
// Only non-zero optional fields are written.
type UpdateStatusOptions struct {
	ID             string
	Status         model.PaymentStatus
	TransactionRef string
	FailureReason  string
	ConfirmedAt    *time.Time
}
