package model

import "time"

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusConfirmed  PaymentStatus = "confirmed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusExpired    PaymentStatus = "expired"
)

// Payment is a renewal payment record.
type Payment struct {
	ID             string        `json:"paymentId"`
	SessionID      string        `json:"sessionId,omitempty"`
	TransactionRef string        `json:"transactionRef,omitempty"`
	Status         PaymentStatus `json:"status"`
	Method         string        `json:"paymentMethod"`

	// Order summary
	Insurer   string  `json:"insurer"`
	Plate     string  `json:"plate"`
	Insurance float64 `json:"insurance"`
	AddOns    float64 `json:"addons"`
	RoadTax   float64 `json:"roadtax"`
	Total     float64 `json:"total"`

	FailureReason string `json:"failureReason,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
}

// IsExpired reports whether the payment has passed its expiry window
// without being confirmed.
func (p *Payment) IsExpired(now time.Time) bool {
	return p.Status == PaymentStatusPending && now.After(p.ExpiresAt)
}
