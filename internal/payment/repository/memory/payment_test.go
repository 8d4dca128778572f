package memory

import (
	"context"
	"testing"
	"time"

	"insurance-renewal-assistant/internal/model"
	repo "insurance-renewal-assistant/internal/payment/repository"
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

func createOptions(id, sessionID string) repo.CreateOptions {
	return repo.CreateOptions{
		ID:             id,
		SessionID:      sessionID,
		TransactionRef: "TXN-1700000000000-ABC123",
		Method:         "card",
		Insurer:        "Takaful Ikhlas",
		Plate:          "WXY1234",
		Insurance:      796,
		AddOns:         150,
		RoadTax:        90,
		Total:          1036,
		ExpiresAt:      time.Now().Add(30 * time.Minute),
	}
}

func TestCreateAndGet(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	created, err := r.Create(ctx, createOptions("PAY-1", "sess-1"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != model.PaymentStatusPending {
		t.Errorf("Expected pending, got %s", created.Status)
	}

	got, err := r.Get(ctx, "PAY-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != "PAY-1" || got.Total != 1036 {
		t.Errorf("Unexpected record: %+v", got)
	}

	missing, err := r.Get(ctx, "PAY-nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if missing.ID != "" {
		t.Errorf("Expected zero value for missing payment, got %+v", missing)
	}
}

func TestUpdateStatus(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	if _, err := r.Create(ctx, createOptions("PAY-1", "")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	now := time.Now()
	updated, err := r.UpdateStatus(ctx, repo.UpdateStatusOptions{
		ID:             "PAY-1",
		Status:         model.PaymentStatusConfirmed,
		TransactionRef: "TXN-GW-9",
		ConfirmedAt:    &now,
	})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != model.PaymentStatusConfirmed {
		t.Errorf("Expected confirmed, got %s", updated.Status)
	}
	if updated.TransactionRef != "TXN-GW-9" {
		t.Errorf("Expected overridden ref, got %s", updated.TransactionRef)
	}
	if updated.ConfirmedAt == nil {
		t.Error("Expected ConfirmedAt to be set")
	}

	// Empty optional fields leave existing values alone.
	again, err := r.UpdateStatus(ctx, repo.UpdateStatusOptions{ID: "PAY-1", Status: model.PaymentStatusConfirmed})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if again.TransactionRef != "TXN-GW-9" {
		t.Errorf("Expected ref preserved, got %s", again.TransactionRef)
	}

	missing, err := r.UpdateStatus(ctx, repo.UpdateStatusOptions{ID: "PAY-nope", Status: model.PaymentStatusFailed})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if missing.ID != "" {
		t.Errorf("Expected zero value for missing payment, got %+v", missing)
	}
}

func TestListBySession(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	r.Create(ctx, createOptions("PAY-1", "sess-1"))
	time.Sleep(2 * time.Millisecond)
	r.Create(ctx, createOptions("PAY-2", "sess-1"))
	r.Create(ctx, createOptions("PAY-3", "sess-2"))

	payments, err := r.ListBySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("ListBySession failed: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("Expected 2 payments, got %d", len(payments))
	}
	if payments[0].ID != "PAY-2" {
		t.Errorf("Expected newest first, got %s", payments[0].ID)
	}
}

func TestCleanupExpired(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	r.Create(ctx, createOptions("PAY-1", ""))
	r.Create(ctx, createOptions("PAY-2", ""))

	cleaned, err := r.CleanupExpired(ctx, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}
	if cleaned != 2 {
		t.Errorf("Expected 2 cleaned, got %d", cleaned)
	}

	got, _ := r.Get(ctx, "PAY-1")
	if got.ID != "" {
		t.Error("Expected record removed by cleanup")
	}
}
