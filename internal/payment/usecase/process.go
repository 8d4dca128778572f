package usecase

import (
	"context"

	"github.com/google/uuid"

	"insurance-renewal-assistant/internal/catalog"
	"insurance-renewal-assistant/internal/payment"
	"insurance-renewal-assistant/internal/payment/repository"
)

// Process registers a pending payment for an order summary. In a real
// deployment this is where the gateway session would be created.
func (uc *implUseCase) Process(ctx context.Context, input payment.ProcessInput) (payment.ProcessOutput, error) {
	if !catalog.IsValidPaymentMethod(input.Method) {
		return payment.ProcessOutput{}, payment.ErrInvalidMethod
	}
	if input.Total <= 0 || input.Insurance < 0 || input.AddOns < 0 || input.RoadTax < 0 {
		return payment.ProcessOutput{}, payment.ErrInvalidAmount
	}

	paymentID := input.PaymentID
	if paymentID == "" {
		paymentID = "PAY-" + uuid.NewString()
	}

	now := nowFunc()
	transactionRef := newTransactionRef(now)

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:             paymentID,
		SessionID:      input.SessionID,
		TransactionRef: transactionRef,
		Method:         input.Method,
		Insurer:        input.Insurer,
		Plate:          input.Plate,
		Insurance:      input.Insurance,
		AddOns:         input.AddOns,
		RoadTax:        input.RoadTax,
		Total:          input.Total,
		ExpiresAt:      now.Add(uc.pendingTTL),
	})
	if err != nil {
		uc.l.Errorf(ctx, "payment.Process: repo.Create: %v", err)
		return payment.ProcessOutput{}, err
	}

	uc.l.Infof(ctx, "payment.Process: %s ref %s total %.2f via %s", created.ID, created.TransactionRef, created.Total, created.Method)

	return payment.ProcessOutput{
		PaymentID:      created.ID,
		TransactionRef: created.TransactionRef,
		Status:         created.Status,
	}, nil
}
