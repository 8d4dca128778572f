package repository

import (
	"context"
	"time"

	"insurance-renewal-assistant/internal/model"
)

// Repository defines all data access methods for payment records.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Payment, error)
	// Get retrieves a payment by ID. Returns a zero-value Payment
	// (ID == "") when not found — do NOT return error for not-found.
	Get(ctx context.Context, id string) (model.Payment, error)
	UpdateStatus(ctx context.Context, opt UpdateStatusOptions) (model.Payment, error)
	// ListBySession returns a session's payments, newest first.
	ListBySession(ctx context.Context, sessionID string) ([]model.Payment, error)
	// CleanupExpired removes records created before the cutoff and
	// returns how many were deleted.
	CleanupExpired(ctx context.Context, cutoff time.Time) (int, error)
}
