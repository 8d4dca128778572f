package usecase

import (
	"testing"

	"insurance-renewal-assistant/internal/catalog"
	"insurance-renewal-assistant/internal/conversation"
	"insurance-renewal-assistant/internal/nlp"
)

func roadTaxStepState(ownerIDType string) *conversation.State {
	state := conversation.New()
	state.PlateNumber = "WXY1234"
	state.OwnerID = "951018145405"
	state.OwnerIDType = ownerIDType
	state.SelectQuote(conversation.SelectedQuote{Insurer: "Takaful Ikhlas", PriceAfter: 796})
	state.SelectAddOns(nil)
	return state
}

func TestApplyIntentBlocksDeliveredRoadTaxForNRIC(t *testing.T) {
	state := roadTaxStepState(nlp.OwnerIDTypeNRIC)

	intent := conversation.Classify("12 months delivered please", state)
	if intent.Intent != conversation.IntentSelectRoadTax {
		t.Fatalf("Expected select_roadtax intent, got %s", intent.Intent)
	}
	if intent.Data["roadTaxId"] != catalog.RoadTax12MonthDeliver {
		t.Fatalf("Expected delivered option, got %v", intent.Data["roadTaxId"])
	}

	blocked, option := applyIntent(state, intent, "12 months delivered please")
	if !blocked {
		t.Error("Expected delivered road tax to be blocked for NRIC owner")
	}
	if option != catalog.RoadTax12MonthDeliver {
		t.Errorf("Expected blocked option %s, got %s", catalog.RoadTax12MonthDeliver, option)
	}
	if state.SelectedRoadTax != nil {
		t.Errorf("Expected no road tax selection, got %+v", state.SelectedRoadTax)
	}
	if state.Step != conversation.StepRoadTax {
		t.Errorf("Expected to stay at roadtax step, got %s", state.Step)
	}
}

func TestApplyIntentAllowsDeliveredRoadTaxForForeignID(t *testing.T) {
	state := roadTaxStepState(nlp.OwnerIDTypeForeignID)

	intent := conversation.Classify("12 months delivered please", state)
	blocked, _ := applyIntent(state, intent, "12 months delivered please")
	if blocked {
		t.Error("Expected delivered road tax allowed for foreign ID owner")
	}
	if state.SelectedRoadTax == nil || state.SelectedRoadTax.ID != catalog.RoadTax12MonthDeliver {
		t.Fatalf("Expected delivered road tax selected, got %+v", state.SelectedRoadTax)
	}
	if state.Step != conversation.StepPersonalDetails {
		t.Errorf("Expected personal details step, got %s", state.Step)
	}
}

func TestApplyIntentConfirmChangeWithoutPendingIsNoOp(t *testing.T) {
	state := roadTaxStepState(nlp.OwnerIDTypeNRIC)

	applyIntent(state, conversation.ClassifiedIntent{
		Intent:     conversation.IntentConfirmChange,
		Confidence: 0.95,
	}, "yes")

	if state.SelectedQuote == nil || state.SelectedQuote.Insurer != "Takaful Ikhlas" {
		t.Fatalf("Expected quote kept, got %+v", state.SelectedQuote)
	}
	if !state.AddOnsConfirmed {
		t.Error("Expected add-on confirmation kept")
	}
	if state.Step != conversation.StepRoadTax {
		t.Errorf("Expected roadtax step, got %s", state.Step)
	}
	if state.PendingAction != nil {
		t.Errorf("Expected no pending action, got %+v", state.PendingAction)
	}
}

func TestApplyIntentPendingChangeClearedByUnrelatedTurn(t *testing.T) {
	state := roadTaxStepState(nlp.OwnerIDTypeNRIC)

	applyIntent(state, conversation.ClassifiedIntent{
		Intent:     conversation.IntentChangeQuote,
		Confidence: 0.95,
		Data:       map[string]interface{}{"newInsurer": "etiqa"},
	}, "can i switch to etiqa")
	if state.PendingAction == nil || state.PendingAction.Type != conversation.PendingActionConfirmQuoteChange {
		t.Fatalf("Expected armed pending action, got %+v", state.PendingAction)
	}

	applyIntent(state, conversation.ClassifiedIntent{
		Intent:     conversation.IntentAskQuestion,
		Confidence: 0.9,
	}, "what does windscreen cover?")

	if state.PendingAction != nil {
		t.Errorf("Expected pending action cleared after unrelated turn, got %+v", state.PendingAction)
	}
	if state.SelectedQuote == nil || state.SelectedQuote.Insurer != "Takaful Ikhlas" {
		t.Fatalf("Expected quote kept after unrelated turn, got %+v", state.SelectedQuote)
	}
	if state.Step != conversation.StepRoadTax {
		t.Errorf("Expected roadtax step, got %s", state.Step)
	}
}
