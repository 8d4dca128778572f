package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"insurance-renewal-assistant/internal/payment"
	"insurance-renewal-assistant/internal/payment/repository"
	pkgLog "insurance-renewal-assistant/pkg/log"
)

const defaultPendingTTL = 30 * time.Minute

// nowFunc is swapped out in tests.
var nowFunc = time.Now

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	pendingTTL time.Duration
	// Shared secret a gateway callback must present. Empty disables
	// the check (local development).
	confirmSecret string
}

// New creates the payment UseCase.
func New(l pkgLog.Logger, repo repository.Repository, pendingTTL time.Duration, confirmSecret string) payment.UseCase {
	if pendingTTL <= 0 {
		pendingTTL = defaultPendingTTL
	}
	return &implUseCase{
		l:             l,
		repo:          repo,
		pendingTTL:    pendingTTL,
		confirmSecret: confirmSecret,
	}
}

const refAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newTransactionRef builds a reference like TXN-1700000000000-A1B2C3.
func newTransactionRef(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = refAlphabet[rand.Intn(len(refAlphabet))]
	}
	return fmt.Sprintf("TXN-%d-%s", now.UnixMilli(), strings.ToUpper(string(suffix)))
}

func (uc *implUseCase) authorized(secret string) bool {
	return uc.confirmSecret == "" || secret == uc.confirmSecret
}
