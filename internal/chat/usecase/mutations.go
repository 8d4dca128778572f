package usecase

import (
	"insurance-renewal-assistant/internal/catalog"
	"insurance-renewal-assistant/internal/conversation"
	"insurance-renewal-assistant/internal/nlp"
)

// quoteByKey resolves a classifier insurer key to the locked quote.
func quoteByKey(key string) (conversation.SelectedQuote, bool) {
	quote, ok := catalog.FindQuoteByInsurer(key)
	if !ok {
		return conversation.SelectedQuote{}, false
	}
	return conversation.SelectedQuote{Insurer: quote.Insurer, PriceAfter: quote.FinalPremium}, true
}

func addOnsByIDs(ids []string) []conversation.SelectedAddOn {
	selected := make([]conversation.SelectedAddOn, 0, len(ids))
	for _, id := range ids {
		if a, ok := catalog.AddOnByID(id); ok {
			selected = append(selected, conversation.SelectedAddOn{ID: a.ID, Name: a.ShortName, Price: a.Price})
		}
	}
	return selected
}

// applyIntent applies the latest user action to the round-tripped state.
// Returns whether a delivered road tax pick was blocked by ownership type,
// and which option was attempted.
func applyIntent(state *conversation.State, intent conversation.ClassifiedIntent, latestMessage string) (roadTaxDeliveryBlocked bool, blockedOption string) {
	switch intent.Intent {
	case conversation.IntentSelectQuote:
		if key, ok := intent.Data["insurer"].(string); ok {
			if quote, found := quoteByKey(key); found {
				state.SelectQuote(quote)
			}
		}

	case conversation.IntentSelectAddOn:
		ids, _ := intent.Data["addOns"].([]string)
		confirmed, _ := intent.Data["confirmed"].(bool)
		addOns := addOnsByIDs(ids)
		if confirmed {
			state.SelectAddOns(addOns)
		} else {
			state.PreSelectAddOns(addOns)
		}

	case conversation.IntentSelectRoadTax:
		id, _ := intent.Data["roadTaxId"].(string)
		if catalog.IsDeliveredRoadTax(id) && !canUseDeliveredRoadTax(state) {
			return true, id
		}
		if opt, ok := catalog.RoadTaxByID(id); ok {
			state.SelectRoadTax(conversation.SelectedRoadTax{ID: opt.ID, Name: opt.Name, Price: opt.Price})
		}

	case conversation.IntentVerifyOTP:
		if valid, _ := intent.Data["valid"].(bool); valid {
			state.VerifyOTP()
		}

	case conversation.IntentChangeQuote:
		// Destructive reset needs a one-turn confirmation first.
		newInsurer, _ := intent.Data["newInsurer"].(string)
		state.SetPendingAction(&conversation.PendingAction{
			Type:       conversation.PendingActionConfirmQuoteChange,
			NewInsurer: newInsurer,
		})

	case conversation.IntentConfirmChange:
		// Guard against an accidental "yes" outside a change context.
		if state.PendingAction != nil &&
			state.PendingAction.Type == conversation.PendingActionConfirmQuoteChange &&
			intent.Confidence >= 0.85 {
			state.ResetToQuotes()
		}
	}

	if cancel, _ := intent.Data["cancelPendingAction"].(bool); cancel {
		state.SetPendingAction(nil)
	}

	// The quote-change confirmation is one-turn scoped; moving on clears it.
	if state.PendingAction != nil &&
		state.PendingAction.Type == conversation.PendingActionConfirmQuoteChange &&
		intent.Intent != conversation.IntentChangeQuote &&
		intent.Intent != conversation.IntentConfirmChange {
		if cancel, _ := intent.Data["cancelPendingAction"].(bool); !cancel {
			state.SetPendingAction(nil)
		}
	}

	if intent.Intent == conversation.IntentSubmitDetails &&
		(state.Step == conversation.StepPersonalDetails || state.Step == conversation.StepOTP) {
		extracted := nlp.ExtractPersonalInfo(latestMessage)
		existing := state.PersonalDetails
		merged := conversation.PersonalDetails{}
		if existing != nil {
			merged = *existing
		}
		merged.Email = merged.Email || extracted.Email != ""
		merged.Phone = merged.Phone || extracted.Phone != ""
		merged.Address = merged.Address || extracted.Address != ""

		if merged.Email || merged.Phone || merged.Address {
			state.PersonalDetails = &merged
		} else {
			state.PersonalDetails = nil
		}
		if merged.Complete() {
			state.Step = conversation.StepOTP
		} else {
			state.Step = conversation.StepPersonalDetails
		}
	}

	applyVehicleIdentity(state, intent, latestMessage)

	return false, ""
}

// applyVehicleIdentity extracts plate and owner ID from the latest message.
// Updates are allowed before a quote is locked so wrong details can be fixed.
func applyVehicleIdentity(state *conversation.State, intent conversation.ClassifiedIntent, latestMessage string) {
	extracted := nlp.ExtractVehicleInfo(latestMessage)

	canUpdate := state.SelectedQuote == nil &&
		(state.Step == conversation.StepStart ||
			state.Step == conversation.StepVehicleLookup ||
			state.Step == conversation.StepQuotes)

	if canUpdate && intent.Intent == conversation.IntentProvideInfo {
		if extracted.RegistrationNumber != "" {
			state.PlateNumber = extracted.RegistrationNumber
		}
		if extracted.OwnerID != "" {
			state.OwnerID = extracted.OwnerID
			state.OwnerIDType = extracted.OwnerIDType
		}
		state.Step = state.DeriveStep()
		return
	}

	if state.PlateNumber == "" || state.OwnerID == "" {
		if state.PlateNumber == "" && extracted.RegistrationNumber != "" {
			state.PlateNumber = extracted.RegistrationNumber
		}
		if state.OwnerID == "" && extracted.OwnerID != "" {
			state.OwnerID = extracted.OwnerID
			state.OwnerIDType = extracted.OwnerIDType
		}
		state.Step = state.DeriveStep()
	}
}
