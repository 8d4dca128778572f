package conversation

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"insurance-renewal-assistant/internal/model"
)

func TestDeriveStep(t *testing.T) {
	s := New()
	if got := s.DeriveStep(); got != StepStart {
		t.Errorf("empty state step = %s, want start", got)
	}

	s.PlateNumber = "JRT9289"
	if got := s.DeriveStep(); got != StepVehicleLookup {
		t.Errorf("plate only step = %s, want vehicle_lookup", got)
	}

	s.OwnerID = "951018145405"
	if got := s.DeriveStep(); got != StepQuotes {
		t.Errorf("full identification step = %s, want quotes", got)
	}

	s.SelectedQuote = &SelectedQuote{Insurer: "Takaful Ikhlas", PriceAfter: 796}
	if got := s.DeriveStep(); got != StepAddOns {
		t.Errorf("quote selected step = %s, want addons", got)
	}

	// Pre-selected add-ons must not advance the step.
	s.SelectedAddOns = []SelectedAddOn{{ID: "windscreen", Name: "Windscreen Protection", Price: 100}}
	if got := s.DeriveStep(); got != StepAddOns {
		t.Errorf("unconfirmed add-ons step = %s, want addons", got)
	}

	s.AddOnsConfirmed = true
	if got := s.DeriveStep(); got != StepRoadTax {
		t.Errorf("confirmed add-ons step = %s, want roadtax", got)
	}

	s.SelectedRoadTax = &SelectedRoadTax{ID: "12month-digital", Name: "12-Month (Digital Only)", Price: 90}
	if got := s.DeriveStep(); got != StepPersonalDetails {
		t.Errorf("road tax step = %s, want personal_details", got)
	}

	s.PersonalDetails = &PersonalDetails{Email: true, Phone: true}
	if got := s.DeriveStep(); got != StepPersonalDetails {
		t.Errorf("partial details step = %s, want personal_details", got)
	}

	s.PersonalDetails.Address = true
	if got := s.DeriveStep(); got != StepOTP {
		t.Errorf("complete details step = %s, want otp", got)
	}

	s.OTPVerified = true
	if got := s.DeriveStep(); got != StepPayment {
		t.Errorf("verified step = %s, want payment", got)
	}

	s.PaymentMethod = "card"
	if got := s.DeriveStep(); got != StepSuccess {
		t.Errorf("paid step = %s, want success", got)
	}
}

func TestResetToQuotes(t *testing.T) {
	s := New()
	s.PlateNumber = "JRT9289"
	s.OwnerID = "951018145405"
	s.VehicleInfo = &model.VehicleProfile{Make: "Perodua", Model: "Myvi", Year: 2019}
	s.SelectQuote(SelectedQuote{Insurer: "Allianz Insurance", PriceAfter: 920})
	s.SelectAddOns([]SelectedAddOn{{ID: "flood", Name: "Flood Coverage", Price: 50}})
	s.SelectRoadTax(SelectedRoadTax{ID: "12month-digital", Name: "12-Month (Digital Only)", Price: 90})
	s.SetPersonalDetails(PersonalDetails{Email: true, Phone: true, Address: true})
	s.VerifyOTP()

	s.ResetToQuotes()

	if s.Step != StepQuotes {
		t.Errorf("step = %s, want quotes", s.Step)
	}
	if s.PlateNumber != "JRT9289" || s.OwnerID != "951018145405" || s.VehicleInfo == nil {
		t.Error("vehicle identification must survive a reset")
	}
	if s.SelectedQuote != nil || s.SelectedRoadTax != nil || s.PersonalDetails != nil {
		t.Error("selections must be cleared")
	}
	if len(s.SelectedAddOns) != 0 || s.AddOnsConfirmed || s.OTPVerified {
		t.Error("progress flags must be cleared")
	}
	if s.QuoteValidUntil != 0 || s.QuoteGeneratedAt != 0 {
		t.Error("quote timestamps must be cleared")
	}
	if s.DeriveStep() != StepQuotes {
		t.Error("derived step after reset must be quotes")
	}
}

func TestQuoteExpiry(t *testing.T) {
	base := time.Now()
	nowFunc = func() time.Time { return base }
	defer func() { nowFunc = time.Now }()

	s := New()
	if s.IsQuoteExpired() {
		t.Error("no quote means nothing expired")
	}

	s.SelectQuote(SelectedQuote{Insurer: "Takaful Ikhlas", PriceAfter: 796})
	if s.IsQuoteExpired() {
		t.Error("fresh quote must not be expired")
	}
	if got := s.QuoteTimeRemaining(); got != 30 {
		t.Errorf("remaining = %d, want 30", got)
	}

	nowFunc = func() time.Time { return base.Add(29*time.Minute + 30*time.Second) }
	if got := s.QuoteTimeRemaining(); got != 1 {
		t.Errorf("remaining = %d, want 1", got)
	}

	nowFunc = func() time.Time { return base.Add(31 * time.Minute) }
	if !s.IsQuoteExpired() {
		t.Error("quote must expire after the validity window")
	}
	if got := s.QuoteTimeRemaining(); got != 0 {
		t.Errorf("remaining = %d, want 0", got)
	}

	nowFunc = func() time.Time { return base.Add(31 * time.Minute) }
	s.RefreshQuoteTimestamps()
	if s.IsQuoteExpired() {
		t.Error("refresh must restart the window")
	}
}

func TestFromJSON(t *testing.T) {
	t.Run("nil and malformed input", func(t *testing.T) {
		if FromJSON(nil) != nil {
			t.Error("nil input must yield nil state")
		}
		if FromJSON(json.RawMessage("null")) != nil {
			t.Error("JSON null must yield nil state")
		}
		if FromJSON(json.RawMessage(`{"step":`)) != nil {
			t.Error("malformed input must yield nil state")
		}
	})

	t.Run("infers owner ID type when absent", func(t *testing.T) {
		s := FromJSON(json.RawMessage(`{"step":"quotes","plateNumber":"JRT9289","nricNumber":"951018145405"}`))
		if s == nil {
			t.Fatal("expected state")
		}
		if s.OwnerIDType != "nric" {
			t.Errorf("ownerIdType = %s, want nric", s.OwnerIDType)
		}

		s = FromJSON(json.RawMessage(`{"step":"quotes","plateNumber":"WXY1234","nricNumber":"A1234567"}`))
		if s.OwnerIDType != "other_id" {
			t.Errorf("ownerIdType = %s, want other_id", s.OwnerIDType)
		}
	})

	t.Run("round trip keeps selections", func(t *testing.T) {
		original := New()
		original.PlateNumber = "JRT9289"
		original.OwnerID = "951018145405"
		original.OwnerIDType = "nric"
		original.SelectQuote(SelectedQuote{Insurer: "Etiqa Insurance", PriceAfter: 872})

		raw, err := json.Marshal(original)
		if err != nil {
			t.Fatal(err)
		}
		restored := FromJSON(raw)
		if restored == nil {
			t.Fatal("expected state")
		}
		if restored.SelectedQuote == nil || restored.SelectedQuote.Insurer != "Etiqa Insurance" {
			t.Errorf("selected quote lost in round trip: %+v", restored.SelectedQuote)
		}
		if restored.Step != StepAddOns {
			t.Errorf("step = %s, want addons", restored.Step)
		}
	})
}

func TestFromMessages(t *testing.T) {
	t.Run("extracts identification and derives step", func(t *testing.T) {
		s := FromMessages([]model.ChatMessage{
			{Role: model.RoleUser, Content: "i want to renew my car insurance"},
			{Role: model.RoleUser, Content: "jrt 9289 951018145405"},
		})
		if s.PlateNumber != "JRT9289" || s.OwnerID != "951018145405" {
			t.Errorf("identification = %s / %s", s.PlateNumber, s.OwnerID)
		}
		if s.Step != StepQuotes {
			t.Errorf("step = %s, want quotes", s.Step)
		}
	})

	t.Run("explicit verb selects a quote", func(t *testing.T) {
		s := FromMessages([]model.ChatMessage{
			{Role: model.RoleUser, Content: "jrt 9289 951018145405"},
			{Role: model.RoleUser, Content: "i'll go with takaful"},
		})
		if s.SelectedQuote == nil || s.SelectedQuote.Insurer != "Takaful Ikhlas" {
			t.Fatalf("selected quote = %+v", s.SelectedQuote)
		}
		if s.Step != StepAddOns {
			t.Errorf("step = %s, want addons", s.Step)
		}
	})

	t.Run("question about an insurer is not a selection", func(t *testing.T) {
		s := FromMessages([]model.ChatMessage{
			{Role: model.RoleUser, Content: "jrt 9289 951018145405"},
			{Role: model.RoleUser, Content: "tell me about takaful"},
		})
		if s.SelectedQuote != nil {
			t.Errorf("question must not select a quote: %+v", s.SelectedQuote)
		}
	})
}

func TestAIContext(t *testing.T) {
	s := New()
	s.PlateNumber = "JRT9289"
	s.OwnerID = "951018145405"
	s.OwnerIDType = "nric"
	s.Step = StepQuotes

	ctx := s.AIContext()
	if !strings.Contains(ctx, "Current Step: quotes") {
		t.Errorf("missing step line: %s", ctx)
	}
	if !strings.Contains(ctx, "NRIC: 951018******") {
		t.Errorf("owner ID not masked as expected: %s", ctx)
	}
	if strings.Contains(ctx, "951018145405") {
		t.Errorf("full owner ID must never appear: %s", ctx)
	}
}

func TestMutatorsClearPendingAction(t *testing.T) {
	s := New()
	s.SetPendingAction(&PendingAction{Type: PendingActionConfirmQuoteChange, NewInsurer: "allianz"})
	s.SelectQuote(SelectedQuote{Insurer: "Allianz Insurance", PriceAfter: 920})
	if s.PendingAction != nil {
		t.Error("SelectQuote must clear pending action")
	}

	s.SetPendingAction(&PendingAction{Type: PendingActionConfirmQuoteChange})
	s.SelectAddOns(nil)
	if s.PendingAction != nil {
		t.Error("SelectAddOns must clear pending action")
	}
	if s.SelectedAddOns == nil {
		t.Error("nil add-ons must become an empty slice")
	}
}
