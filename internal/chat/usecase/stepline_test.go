package usecase

import (
	"strings"
	"testing"

	"insurance-renewal-assistant/internal/conversation"
	"insurance-renewal-assistant/internal/model"
)

func TestEnsureStepLine(t *testing.T) {
	t.Run("prepends when missing", func(t *testing.T) {
		got := ensureStepLine("Here are your options.", "*Step 2 of 5 — Choose Insurer*")
		if !strings.HasPrefix(got, "*Step 2 of 5 — Choose Insurer*\n\n") {
			t.Errorf("Expected step line prefix, got: %s", got)
		}
	})

	t.Run("keeps existing indicator", func(t *testing.T) {
		reply := "**Step 2 of 5 - Choose Insurer**\n\nHere are your options."
		if got := ensureStepLine(reply, "*Step 2 of 5 — Choose Insurer*"); got != reply {
			t.Errorf("Expected reply unchanged, got: %s", got)
		}
	})

	t.Run("no-op without expected line", func(t *testing.T) {
		if got := ensureStepLine("Hello", ""); got != "Hello" {
			t.Errorf("Expected unchanged reply, got: %s", got)
		}
	})
}

func TestNormalizeStepLine(t *testing.T) {
	a := normalizeStepLine("*Step 3 of 5 — Add-ons*")
	b := normalizeStepLine("step 3 of 5 - Add-ons")
	if a != b {
		t.Errorf("Expected %q == %q", a, b)
	}
}

func TestExpectedStepLine(t *testing.T) {
	t.Run("quote selection forces addons line", func(t *testing.T) {
		state := conversation.New()
		state.PlateNumber = "WXY1234"
		state.OwnerID = "951018145405"
		state.SelectQuote(conversation.SelectedQuote{Insurer: "Takaful Ikhlas", PriceAfter: 796})

		intent := conversation.ClassifiedIntent{Intent: conversation.IntentSelectQuote}
		got := expectedStepLine(intent, state, nil)
		if got != "*Step 3 of 5 — Add-ons*" {
			t.Errorf("Expected add-ons step line, got %q", got)
		}
	})

	t.Run("suppressed when last assistant already showed it", func(t *testing.T) {
		state := conversation.New()
		state.PlateNumber = "WXY1234"
		state.OwnerID = "951018145405"
		state.SelectQuote(conversation.SelectedQuote{Insurer: "Takaful Ikhlas", PriceAfter: 796})

		messages := []model.ChatMessage{
			{Role: model.RoleAssistant, Content: "*Step 3 of 5 — Add-ons*\n\nWant add-ons?"},
			{Role: model.RoleUser, Content: "windscreen please"},
		}
		intent := conversation.ClassifiedIntent{Intent: conversation.IntentSelectQuote}
		if got := expectedStepLine(intent, state, messages); got != "" {
			t.Errorf("Expected no step line, got %q", got)
		}
	})

	t.Run("first render shows current stage", func(t *testing.T) {
		state := conversation.New()
		intent := conversation.ClassifiedIntent{Intent: conversation.IntentStartRenewal}
		messages := []model.ChatMessage{{Role: model.RoleUser, Content: "hi, renew my insurance"}}

		if got := expectedStepLine(intent, state, messages); got != "*Step 1 of 5 — Vehicle Info*" {
			t.Errorf("Expected vehicle info step line, got %q", got)
		}
	})

	t.Run("no repeat within same stage", func(t *testing.T) {
		state := conversation.New()
		intent := conversation.ClassifiedIntent{Intent: conversation.IntentOther}
		messages := []model.ChatMessage{
			{Role: model.RoleAssistant, Content: "*Step 1 of 5 — Vehicle Info*\n\nShare your plate."},
			{Role: model.RoleUser, Content: "hmm"},
		}

		if got := expectedStepLine(intent, state, messages); got != "" {
			t.Errorf("Expected no step line within same stage, got %q", got)
		}
	})
}
