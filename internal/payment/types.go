package payment

import "insurance-renewal-assistant/internal/model"

// ProcessInput is the order summary captured when the user hits the
// payment link from the chat flow.
type ProcessInput struct {
	PaymentID string
	SessionID string
	Method    string

	Insurer   string
	Plate     string
	Insurance float64
	AddOns    float64
	RoadTax   float64
	Total     float64
}

// ProcessOutput reports the created pending payment.
type ProcessOutput struct {
	PaymentID      string
	TransactionRef string
	Status         model.PaymentStatus
}

// StatusOutput is the poll result for a payment.
type StatusOutput struct {
	Payment model.Payment
}

// ConfirmInput carries a gateway confirmation callback.
type ConfirmInput struct {
	PaymentID      string
	Secret         string
	TransactionRef string
}

// FailInput carries a gateway failure callback.
type FailInput struct {
	PaymentID string
	Secret    string
	Reason    string
}

// ConfirmOutput is the payment after a confirm or fail transition.
type ConfirmOutput struct {
	Payment          model.Payment
	AlreadyConfirmed bool
}
