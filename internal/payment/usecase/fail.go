package usecase

import (
	"context"

	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/internal/payment"
	"insurance-renewal-assistant/internal/payment/repository"
)

// Fail marks a payment as failed. A payment that already reached
// confirmed is never downgraded.
func (uc *implUseCase) Fail(ctx context.Context, input payment.FailInput) (payment.ConfirmOutput, error) {
	if input.PaymentID == "" {
		return payment.ConfirmOutput{}, payment.ErrMissingPayment
	}
	if !uc.authorized(input.Secret) {
		return payment.ConfirmOutput{}, payment.ErrUnauthorized
	}

	p, err := uc.repo.Get(ctx, input.PaymentID)
	if err != nil {
		uc.l.Errorf(ctx, "payment.Fail: repo.Get: %v", err)
		return payment.ConfirmOutput{}, err
	}
	if p.ID == "" {
		return payment.ConfirmOutput{}, payment.ErrNotFound
	}

	if p.Status == model.PaymentStatusConfirmed {
		return payment.ConfirmOutput{Payment: p, AlreadyConfirmed: true}, nil
	}

	updated, err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		ID:            p.ID,
		Status:        model.PaymentStatusFailed,
		FailureReason: input.Reason,
	})
	if err != nil {
		uc.l.Errorf(ctx, "payment.Fail: repo.UpdateStatus: %v", err)
		return payment.ConfirmOutput{}, err
	}

	uc.l.Warnf(ctx, "payment.Fail: %s failed: %s", updated.ID, updated.FailureReason)
	return payment.ConfirmOutput{Payment: updated}, nil
}
