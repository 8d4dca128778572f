package memory

import (
	"context"
	"sort"
	"time"

	"insurance-renewal-assistant/internal/model"
	repo "insurance-renewal-assistant/internal/payment/repository"
)

// Create stores a new pending payment record.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Payment, error) {
	now := time.Now()
	p := model.Payment{
		ID:             opt.ID,
		SessionID:      opt.SessionID,
		TransactionRef: opt.TransactionRef,
		Status:         model.PaymentStatusPending,
		Method:         opt.Method,
		Insurer:        opt.Insurer,
		Plate:          opt.Plate,
		Insurance:      opt.Insurance,
		AddOns:         opt.AddOns,
		RoadTax:        opt.RoadTax,
		Total:          opt.Total,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      opt.ExpiresAt,
	}
	r.store.Add(p.ID, p)
	return p, nil
}

// Get retrieves a payment by ID. Zero-value Payment when not found.
func (r *implRepository) Get(ctx context.Context, id string) (model.Payment, error) {
	p, ok := r.store.Get(id)
	if !ok {
		return model.Payment{}, nil
	}
	return p, nil
}

// UpdateStatus applies a status transition and returns the updated record.
func (r *implRepository) UpdateStatus(ctx context.Context, opt repo.UpdateStatusOptions) (model.Payment, error) {
	p, ok := r.store.Get(opt.ID)
	if !ok {
		return model.Payment{}, nil
	}

	p.Status = opt.Status
	p.UpdatedAt = time.Now()
	if opt.TransactionRef != "" {
		p.TransactionRef = opt.TransactionRef
	}
	if opt.FailureReason != "" {
		p.FailureReason = opt.FailureReason
	}
	if opt.ConfirmedAt != nil {
		p.ConfirmedAt = opt.ConfirmedAt
	}

	r.store.Add(p.ID, p)
	return p, nil
}

// ListBySession returns a session's payments, newest first.
func (r *implRepository) ListBySession(ctx context.Context, sessionID string) ([]model.Payment, error) {
	var payments []model.Payment
	for _, p := range r.store.Values() {
		if p.SessionID == sessionID {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	return payments, nil
}

// CleanupExpired removes records created before the cutoff. The cache
// TTL already evicts day-old entries; this covers custom cutoffs.
func (r *implRepository) CleanupExpired(ctx context.Context, cutoff time.Time) (int, error) {
	var cleaned int
	for _, key := range r.store.Keys() {
		p, ok := r.store.Peek(key)
		if !ok {
			continue
		}
		if p.CreatedAt.Before(cutoff) {
			r.store.Remove(key)
			cleaned++
		}
	}
	return cleaned, nil
}
