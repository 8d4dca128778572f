package usecase

import (
	"context"

	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/internal/payment"
	"insurance-renewal-assistant/internal/payment/repository"
)

// Status returns the current state of a payment. A pending record past
// its expiry window is transitioned to expired before it is returned.
func (uc *implUseCase) Status(ctx context.Context, id string) (payment.StatusOutput, error) {
	if id == "" {
		return payment.StatusOutput{}, payment.ErrMissingPayment
	}

	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "payment.Status: repo.Get: %v", err)
		return payment.StatusOutput{}, err
	}
	if p.ID == "" {
		return payment.StatusOutput{}, payment.ErrNotFound
	}

	if p.IsExpired(nowFunc()) {
		p, err = uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
			ID:     p.ID,
			Status: model.PaymentStatusExpired,
		})
		if err != nil {
			uc.l.Errorf(ctx, "payment.Status: repo.UpdateStatus: %v", err)
			return payment.StatusOutput{}, err
		}
	}

	return payment.StatusOutput{Payment: p}, nil
}
