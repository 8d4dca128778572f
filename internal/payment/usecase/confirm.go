package usecase

import (
	"context"

	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/internal/payment"
	"insurance-renewal-assistant/internal/payment/repository"
)

// Confirm marks a payment as paid. Called by the gateway callback, or
// directly in demo mode. Confirming an already-confirmed payment is a
// no-op that reports AlreadyConfirmed.
func (uc *implUseCase) Confirm(ctx context.Context, input payment.ConfirmInput) (payment.ConfirmOutput, error) {
	if input.PaymentID == "" {
		return payment.ConfirmOutput{}, payment.ErrMissingPayment
	}
	if !uc.authorized(input.Secret) {
		return payment.ConfirmOutput{}, payment.ErrUnauthorized
	}

	p, err := uc.repo.Get(ctx, input.PaymentID)
	if err != nil {
		uc.l.Errorf(ctx, "payment.Confirm: repo.Get: %v", err)
		return payment.ConfirmOutput{}, err
	}
	if p.ID == "" {
		return payment.ConfirmOutput{}, payment.ErrNotFound
	}

	if p.Status == model.PaymentStatusConfirmed {
		return payment.ConfirmOutput{Payment: p, AlreadyConfirmed: true}, nil
	}

	now := nowFunc()
	updated, err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		ID:             p.ID,
		Status:         model.PaymentStatusConfirmed,
		TransactionRef: input.TransactionRef,
		ConfirmedAt:    &now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "payment.Confirm: repo.UpdateStatus: %v", err)
		return payment.ConfirmOutput{}, err
	}

	uc.l.Infof(ctx, "payment.Confirm: %s confirmed ref %s", updated.ID, updated.TransactionRef)
	return payment.ConfirmOutput{Payment: updated}, nil
}
