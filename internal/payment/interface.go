package payment

import "context"

// UseCase manages the lifecycle of renewal payment records.
type UseCase interface {
	// Process registers a pending payment for an order summary.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	// Status returns the current state of a payment, expiring stale
	// pending records on read.
	Status(ctx context.Context, id string) (StatusOutput, error)
	// Confirm marks a payment as paid. Idempotent.
	Confirm(ctx context.Context, input ConfirmInput) (ConfirmOutput, error)
	// Fail marks a payment as failed with an optional reason.
	Fail(ctx context.Context, input FailInput) (ConfirmOutput, error)
}
