package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/internal/payment"
	"insurance-renewal-assistant/internal/payment/repository/memory"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestUseCase(t *testing.T, secret string) payment.UseCase {
	t.Helper()
	l := &mockLogger{}
	return New(l, memory.New(l), 30*time.Minute, secret)
}

func validProcessInput() payment.ProcessInput {
	return payment.ProcessInput{
		PaymentID: "PAY-1700000000000",
		Method:    "card",
		Insurer:   "Takaful Ikhlas",
		Plate:     "WXY1234",
		Insurance: 796,
		AddOns:    150,
		RoadTax:   90,
		Total:     1036,
	}
}

func TestProcessCreatesPendingPayment(t *testing.T) {
	uc := newTestUseCase(t, "")
	ctx := context.Background()

	out, err := uc.Process(ctx, validProcessInput())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out.PaymentID != "PAY-1700000000000" {
		t.Errorf("Expected caller-supplied payment ID, got %s", out.PaymentID)
	}
	if out.Status != model.PaymentStatusPending {
		t.Errorf("Expected pending status, got %s", out.Status)
	}

	refPattern := regexp.MustCompile(`^TXN-\d+-[0-9A-Z]{6}$`)
	if !refPattern.MatchString(out.TransactionRef) {
		t.Errorf("Unexpected transaction ref format: %s", out.TransactionRef)
	}

	status, err := uc.Status(ctx, out.PaymentID)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Payment.Total != 1036 {
		t.Errorf("Expected total 1036, got %.2f", status.Payment.Total)
	}
}

func TestProcessGeneratesPaymentID(t *testing.T) {
	uc := newTestUseCase(t, "")

	input := validProcessInput()
	input.PaymentID = ""

	out, err := uc.Process(context.Background(), input)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(out.PaymentID) < len("PAY-") || out.PaymentID[:4] != "PAY-" {
		t.Errorf("Expected generated PAY- id, got %s", out.PaymentID)
	}
}

func TestProcessValidation(t *testing.T) {
	uc := newTestUseCase(t, "")
	ctx := context.Background()

	badMethod := validProcessInput()
	badMethod.Method = "cash"
	if _, err := uc.Process(ctx, badMethod); err != payment.ErrInvalidMethod {
		t.Errorf("Expected ErrInvalidMethod, got %v", err)
	}

	badTotal := validProcessInput()
	badTotal.Total = 0
	if _, err := uc.Process(ctx, badTotal); err != payment.ErrInvalidAmount {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestStatusExpiresPendingPayment(t *testing.T) {
	uc := newTestUseCase(t, "")
	ctx := context.Background()

	out, err := uc.Process(ctx, validProcessInput())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	nowFunc = func() time.Time { return time.Now().Add(31 * time.Minute) }
	defer func() { nowFunc = time.Now }()

	status, err := uc.Status(ctx, out.PaymentID)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Payment.Status != model.PaymentStatusExpired {
		t.Errorf("Expected expired, got %s", status.Payment.Status)
	}
}

func TestStatusNotFound(t *testing.T) {
	uc := newTestUseCase(t, "")

	if _, err := uc.Status(context.Background(), "PAY-nope"); err != payment.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	uc := newTestUseCase(t, "")
	ctx := context.Background()

	out, err := uc.Process(ctx, validProcessInput())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	first, err := uc.Confirm(ctx, payment.ConfirmInput{PaymentID: out.PaymentID, TransactionRef: "TXN-GW-1"})
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if first.AlreadyConfirmed {
		t.Error("First confirm must not report AlreadyConfirmed")
	}
	if first.Payment.Status != model.PaymentStatusConfirmed {
		t.Errorf("Expected confirmed, got %s", first.Payment.Status)
	}
	if first.Payment.TransactionRef != "TXN-GW-1" {
		t.Errorf("Expected gateway ref, got %s", first.Payment.TransactionRef)
	}
	if first.Payment.ConfirmedAt == nil {
		t.Error("Expected ConfirmedAt to be set")
	}

	second, err := uc.Confirm(ctx, payment.ConfirmInput{PaymentID: out.PaymentID})
	if err != nil {
		t.Fatalf("Second confirm failed: %v", err)
	}
	if !second.AlreadyConfirmed {
		t.Error("Second confirm should report AlreadyConfirmed")
	}
}

func TestConfirmRequiresSecret(t *testing.T) {
	uc := newTestUseCase(t, "webhook-secret")
	ctx := context.Background()

	out, err := uc.Process(ctx, validProcessInput())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if _, err := uc.Confirm(ctx, payment.ConfirmInput{PaymentID: out.PaymentID, Secret: "wrong"}); err != payment.ErrUnauthorized {
		t.Errorf("Expected ErrUnauthorized, got %v", err)
	}

	if _, err := uc.Confirm(ctx, payment.ConfirmInput{PaymentID: out.PaymentID, Secret: "webhook-secret"}); err != nil {
		t.Errorf("Expected confirm with valid secret to pass, got %v", err)
	}
}

func TestFailDoesNotDowngradeConfirmed(t *testing.T) {
	uc := newTestUseCase(t, "")
	ctx := context.Background()

	out, err := uc.Process(ctx, validProcessInput())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	failed, err := uc.Fail(ctx, payment.FailInput{PaymentID: out.PaymentID, Reason: "card declined"})
	if err != nil {
		t.Fatalf("Fail failed: %v", err)
	}
	if failed.Payment.Status != model.PaymentStatusFailed {
		t.Errorf("Expected failed, got %s", failed.Payment.Status)
	}
	if failed.Payment.FailureReason != "card declined" {
		t.Errorf("Expected failure reason, got %q", failed.Payment.FailureReason)
	}

	// A confirmed payment stays confirmed.
	input2 := validProcessInput()
	input2.PaymentID = "PAY-1700000000001"
	out2, _ := uc.Process(ctx, input2)
	if _, err := uc.Confirm(ctx, payment.ConfirmInput{PaymentID: out2.PaymentID}); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	guarded, err := uc.Fail(ctx, payment.FailInput{PaymentID: out2.PaymentID, Reason: "late callback"})
	if err != nil {
		t.Fatalf("Fail failed: %v", err)
	}
	if !guarded.AlreadyConfirmed || guarded.Payment.Status != model.PaymentStatusConfirmed {
		t.Errorf("Expected confirmed payment to be guarded, got %s", guarded.Payment.Status)
	}
}
