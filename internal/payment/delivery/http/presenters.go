package http

import (
	"errors"

	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/internal/payment"
)

// --- Request DTOs ---

type processReq struct {
	PaymentID     string  `json:"paymentId"`
	SessionID     string  `json:"sessionId"`
	Total         float64 `json:"total"`
	Insurer       string  `json:"insurer"`
	Plate         string  `json:"plate"`
	Insurance     float64 `json:"insurance"`
	AddOns        float64 `json:"addons"`
	RoadTax       float64 `json:"roadtax"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
}

func (r processReq) validate() error {
	if r.Total <= 0 {
		return errors.New("total must be positive")
	}
	if r.Insurer == "" || r.Plate == "" {
		return errors.New("insurer and plate are required")
	}
	return nil
}

func (r processReq) toInput() payment.ProcessInput {
	return payment.ProcessInput{
		PaymentID: r.PaymentID,
		SessionID: r.SessionID,
		Method:    r.PaymentMethod,
		Insurer:   r.Insurer,
		Plate:     r.Plate,
		Insurance: r.Insurance,
		AddOns:    r.AddOns,
		RoadTax:   r.RoadTax,
		Total:     r.Total,
	}
}

type confirmReq struct {
	PaymentID      string `json:"paymentId" binding:"required"`
	Secret         string `json:"secret"`
	TransactionRef string `json:"transactionRef"`
	// Failed routes the callback to the failure transition instead.
	Failed bool   `json:"failed"`
	Reason string `json:"reason"`
}

// --- Response DTOs ---

type processResp struct {
	Success        bool   `json:"success"`
	PaymentID      string `json:"paymentId"`
	TransactionRef string `json:"transactionRef"`
	Status         string `json:"status"`
	Message        string `json:"message"`
}

type paymentDetail struct {
	Total          float64 `json:"total"`
	Insurer        string  `json:"insurer"`
	Plate          string  `json:"plate"`
	Insurance      float64 `json:"insurance"`
	AddOns         float64 `json:"addons"`
	RoadTax        float64 `json:"roadtax"`
	TransactionRef string  `json:"transactionRef"`
	ConfirmedAt    int64   `json:"confirmedAt,omitempty"`
}

type statusResp struct {
	PaymentID string         `json:"paymentId"`
	Status    string         `json:"status"`
	ExpiresAt int64          `json:"expiresAt,omitempty"`
	Payment   *paymentDetail `json:"payment,omitempty"`
}

type confirmResp struct {
	Success   bool           `json:"success"`
	PaymentID string         `json:"paymentId"`
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Payment   *paymentDetail `json:"payment,omitempty"`
}

func newPaymentDetail(p model.Payment) *paymentDetail {
	detail := &paymentDetail{
		Total:          p.Total,
		Insurer:        p.Insurer,
		Plate:          p.Plate,
		Insurance:      p.Insurance,
		AddOns:         p.AddOns,
		RoadTax:        p.RoadTax,
		TransactionRef: p.TransactionRef,
	}
	if p.ConfirmedAt != nil {
		detail.ConfirmedAt = p.ConfirmedAt.UnixMilli()
	}
	return detail
}

func newStatusResp(p model.Payment) statusResp {
	resp := statusResp{
		PaymentID: p.ID,
		Status:    string(p.Status),
	}
	// Details are exposed only once the payment is confirmed; pending
	// callers just need the countdown.
	switch p.Status {
	case model.PaymentStatusConfirmed:
		resp.Payment = newPaymentDetail(p)
	case model.PaymentStatusPending:
		resp.ExpiresAt = p.ExpiresAt.UnixMilli()
	}
	return resp
}
