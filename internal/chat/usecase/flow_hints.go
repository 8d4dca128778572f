package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"insurance-renewal-assistant/internal/conversation"
	"insurance-renewal-assistant/internal/model"
)

var (
	quoteDilemmaHintRegex = regexp.MustCompile(`(?i)can'?t (choose|decide|pick|select)|torn between|stuck between|not sure which|help me (choose|decide|pick)|between .+ and`)
	quoteRecoHintRegex    = regexp.MustCompile(`(?i)recommend|which (one|should)|which is better|what(?:'s| is) better|better one|best one|what.*(suggest|think|pick)|help me (choose|decide|pick)|your (pick|choice|suggestion)`)
	addOnNeedHintRegex    = regexp.MustCompile(`(?i)which (do i|one|should)|what (do i|should)|need|recommend`)
	budgetSignalRegex     = regexp.MustCompile(`(?i)cheap|cheapest|save|saving|budget|broke|lower|lowest|value`)
)

// buildFlowHints produces the per-turn system directives that pin the
// model's reply to the deterministic flow: what block to show, what to
// refuse, and when to re-ask. Some branches also advance state (accepting
// a recommendation, refreshing an expired quote) because the directive and
// the transition must stay in lockstep.
func buildFlowHints(
	state *conversation.State,
	intent conversation.ClassifiedIntent,
	messages []model.ChatMessage,
	profile *model.VehicleProfile,
	roadTaxDeliveryBlocked bool,
	blockedRoadTaxOption string,
) []string {
	var hints []string
	latestMessage := ""
	if len(messages) > 0 {
		latestMessage = messages[len(messages)-1].Content
	}
	latestLower := strings.ToLower(latestMessage)
	vehicleRejectionHandled := false

	// Global guard: nothing priced before both identifiers are in.
	if !state.HasCompleteVehicleIdentification() {
		switch {
		case intent.Intent == conversation.IntentAskQuestion:
			hints = append(hints, `User asked a general insurance question before sharing plate/owner ID.
Answer the question helpfully first (no quotes/pricing cards).
After answering, add one short line: "If you'd like renewal quotes, share your **car plate** and **owner identification number**."`)

		case intent.Intent == conversation.IntentUnclearOrPlayful && state.Step == conversation.StepStart:
			hints = append(hints, `User is playful/unclear at start. Reply naturally in 1-2 short lines:
1) brief friendly acknowledgement
2) ask what they need today (renewal quote, policy check, or claims help)
If they mention renewal, ask for plate + owner ID.`)

		case state.PlateNumber == "" && state.OwnerID == "":
			hints = append(hints, `CRITICAL RESTRICTION: User has NOT provided car plate + IC yet. You MUST NOT:
- Show any insurance quotes or prices
- Discuss specific insurers (Takaful, Etiqa, Allianz)
- Talk about add-ons, road tax, or any pricing details
- Proceed with ANY insurance flow

Your response MUST include this exact format:

*Step 1 of 5 — Vehicle Info*

To get started with your insurance renewal, please provide your:

1. **Car Plate Number** (e.g. WXY 1234)
2. **Owner Identification Number** (NRIC / Foreign ID / Army IC / Police IC / Company Reg. No.)

You may add a brief greeting before the step indicator, but do NOT skip the numbered list format.`)

		default:
			missingItem := "Owner Identification Number"
			missingExample := "(NRIC / Foreign ID / Army IC / Police IC / Company Reg. No.)"
			if state.PlateNumber == "" {
				missingItem = "Car Plate Number"
				missingExample = "(e.g. WXY 1234)"
			}
			hints = append(hints, fmt.Sprintf(`CRITICAL RESTRICTION: User has NOT provided both plate + IC yet. You MUST NOT:
- Show any insurance quotes or prices
- Discuss specific insurers (Takaful, Etiqa, Allianz)
- Talk about add-ons, road tax, or any pricing details

Ask for the missing item only. Keep it brief: "Please provide your **%s** %s to proceed with the insurance renewal."`, missingItem, missingExample))
		}
	}

	// Vehicle confirmed, show quotes deterministically.
	if intent.Intent == conversation.IntentConfirm && state.HasCompleteVehicleIdentification() && state.SelectedQuote == nil {
		hints = append(hints, fmt.Sprintf(`Vehicle confirmed. Your response MUST include this exact quotes block:

*Step 2 of 5 — Choose Insurer*

Here are your options:

%s

Which option would you like to go with, or would you like my recommendation?

You may add a brief acknowledgement line before the step indicator, but do NOT alter the quote cards or prices.`, buildQuotesBlock()))
	}

	// Lookup complete, show the vehicle record for confirmation.
	if intent.Intent == conversation.IntentProvideInfo && state.HasCompleteVehicleIdentification() && profile != nil {
		hints = append(hints, fmt.Sprintf(`Vehicle found. Your response MUST include these exact details:

Found your vehicle! 🚗

%s

Is this correct?

Do NOT skip any field. Do NOT alter the values.`, buildVehicleBlock(profile)))
	}

	// Rejection of the looked-up details before a quote is locked.
	if state.HasCompleteVehicleIdentification() && profile != nil && state.SelectedQuote == nil {
		if conversation.IsVehicleDetailsRejection(latestMessage) &&
			conversation.WasLastAssistantVehicleConfirmation(messages) {
			vehicleRejectionHandled = true
			hints = append(hints, fmt.Sprintf(`User rejected the vehicle details. Do NOT proceed to insurer selection yet.
Explain briefly that these details are fetched from insurer/ISM-linked records based on the provided plate + owner ID, so they should normally match.
Then ask the user to tell you what is incorrect or re-share the corrected car plate and owner identification number.
Also re-show the EXACT same details below:

I understand your concern. These details come from insurer/ISM records linked to your submitted vehicle identifiers:

%s

Please tell me which field is wrong, or send the corrected **car plate** and **owner identification number** so I can re-check.

Do NOT alter or abbreviate any field. Show ALL fields exactly as above.`, buildVehicleBlock(profile)))
		}
	}

	// "Ok" at the quotes step: accepting the assistant's recommendation.
	if intent.Intent == conversation.IntentConfirm && state.Step == conversation.StepQuotes && state.SelectedQuote == nil {
		lastAssistant := ""
		for i := len(messages) - 1; i >= 0; i-- {
			if messages[i].Role == model.RoleAssistant {
				lastAssistant = messages[i].Content
				break
			}
		}
		recommendedKey := conversation.ParseRecommendedInsurer(lastAssistant)
		if quote, ok := quoteByKey(recommendedKey); recommendedKey != "" && ok {
			state.SelectQuote(quote)
			hints = append(hints, fmt.Sprintf(`User confirmed your recommendation of %s. Your response MUST include:

*Step 3 of 5 — Add-ons*

Great choice! ✅

%s

Want add-ons?
%s

Do NOT alter prices. You may add a brief line but MUST include the summary box and add-ons menu exactly.`,
				quote.Insurer, buildSummaryBox(state), buildAddOnsMenu()))
		} else {
			hints = append(hints, fmt.Sprintf(`User said "ok" but no specific insurer was recommended. Ask them to pick one:

%s

Which insurer would you like to go with?`, buildQuotesBlock()))
		}
	}

	// Questions at the quotes step.
	if intent.Intent == conversation.IntentAskQuestion && state.Step == conversation.StepQuotes {
		switch {
		case quoteRecoHintRegex.MatchString(latestLower):
			hints = append(hints, `User is asking for YOUR recommendation. Give a CONFIDENT, DIRECT recommendation. Do NOT:
- Ask discovery questions
- Show all quotes again
- Be wishy-washy or indecisive

DO:
- Pick ONE insurer confidently (use your judgment based on value)
- Give ONE clear reason why
- End with "Want to go with this?" or similar

Example good response:
"I'd go with **Takaful Ikhlas at RM 796** — best value with fast claim payouts. Want to proceed with this?"

Be decisive. Be smart. Pick one and recommend it confidently.`)

		case quoteDilemmaHintRegex.MatchString(latestLower):
			hints = append(hints, `User is having trouble deciding between insurers. DO NOT pick for them yet. Instead:

1. Acknowledge their dilemma ("Tough choice! Both are great options.")
2. Ask ONE discovery question to understand their priority. Pick the most relevant:
   - "What matters most to you — **saving money**, **easy claims**, or **maximum coverage**?"
   - "How do you mainly use your car — **daily commute**, **occasional trips**, or **long-distance highway**?"

Do NOT show quotes again. Do NOT make a recommendation yet. Wait for their answer, then use the RECOMMENDATION RUBRIC to give a confident pick.`)

		default:
			hints = append(hints, fmt.Sprintf(`Answer the user's question briefly (2-3 sentences max). Then ALWAYS end with the full quotes block so they can choose:

%s

Which option would you like to go with?`, buildQuotesBlock()))
		}
	}

	// Questions at the add-ons step.
	if intent.Intent == conversation.IntentAskQuestion && state.Step == conversation.StepAddOns {
		if addOnNeedHintRegex.MatchString(latestLower) {
			hints = append(hints, `User wants to know which add-ons they need. Explain ALL 3 add-ons clearly, each on its own line:

**Windscreen** (RM 100) — covers glass damage. Useful if you drive often, especially in city traffic or highways where debris can hit your windscreen.

**Special Perils** (RM 50) — covers flood and natural disaster damage. Recommended if your area is flood-prone or has landslides.

**E-hailing** (RM 500) — required if you drive for Grab, inDrive, or any ride-sharing service. Skip this if you don't do e-hailing.

Then ask: "Based on your situation, which would you like? Or skip if you don't need any."

Do NOT combine into one paragraph. Each add-on MUST be on its own line with a blank line between them.`)
		} else {
			hints = append(hints, fmt.Sprintf(`Answer the user's question briefly (2-3 sentences). If user gives an indirect answer (e.g. "I don't drive much"), acknowledge it and give a recommendation. Then ALWAYS re-show the add-ons menu so they can pick or skip:

%s

Which would you like? Or skip if you don't need any.

Do NOT auto-skip or assume. Wait for explicit confirmation before moving to road tax.`, buildAddOnsMenu()))
		}
	}

	// Questions at the road tax step.
	if intent.Intent == conversation.IntentAskQuestion && state.Step == conversation.StepRoadTax {
		hints = append(hints, fmt.Sprintf(`Answer the user's question briefly. Then ALWAYS re-show the road tax options:

%s`, buildRoadTaxMenu(state)))
	}

	// Questions elsewhere get a plain brief answer.
	if intent.Intent == conversation.IntentAskQuestion &&
		state.Step != conversation.StepAddOns &&
		state.Step != conversation.StepRoadTax &&
		state.Step != conversation.StepQuotes {
		hints = append(hints, `Answer briefly, add short recommendation if helpful.`)
	}

	// Insurer picked, move to add-ons.
	if intent.Intent == conversation.IntentSelectQuote && state.SelectedQuote != nil {
		hints = append(hints, fmt.Sprintf(`User selected %s. Your response MUST include:

*Step 3 of 5 — Add-ons*

Great choice! ✅

%s

Want add-ons?
%s

Do NOT alter prices. You may add a brief line but MUST include the summary box and add-ons menu exactly.`,
			state.SelectedQuote.Insurer, buildSummaryBox(state), buildAddOnsMenu()))
	}

	// Add-ons confirmed (or skipped), move to road tax.
	if intent.Intent == conversation.IntentSelectAddOn {
		switch {
		case !state.HasCompleteVehicleIdentification():
			hints = append(hints, `STOP. User hasn't provided vehicle info yet. Ask for: 1) Car Plate Number, 2) Owner ID. Nothing else.`)

		case state.SelectedQuote == nil:
			hints = append(hints, fmt.Sprintf(`User mentioned add-ons but hasn't selected an insurer yet. Show quotes and ask them to choose first:

%s

Which insurer would you like to go with?`, buildQuotesBlock()))

		default:
			addOnNames := "no add-ons"
			confirmLine := "No add-ons selected."
			if len(state.SelectedAddOns) > 0 {
				parts := make([]string, 0, len(state.SelectedAddOns))
				for _, a := range state.SelectedAddOns {
					parts = append(parts, "**"+a.Name+"**")
				}
				addOnNames = strings.Join(parts, ", ")
				confirmLine = "Added " + addOnNames + "!"
			}
			hints = append(hints, fmt.Sprintf(`User confirmed %s. Your response MUST include:

*Step 4 of 5 — Road Tax*

%s ✅

%s

Want to renew your **road tax** together? 🚗

%s

Do NOT alter prices. MUST include summary box and road tax menu exactly.`,
				addOnNames, confirmLine, buildSummaryBox(state), buildRoadTaxMenu(state)))
		}
	}

	// Delivered road tax not available for this ownership type.
	if intent.Intent == conversation.IntentSelectRoadTax && roadTaxDeliveryBlocked {
		attemptedLabel := "6 Months Delivered"
		if strings.HasPrefix(blockedRoadTaxOption, "12") {
			attemptedLabel = "12 Months Delivered"
		}
		hints = append(hints, fmt.Sprintf(`User selected %s, but delivered road tax is not eligible for this ownership type.
Explain briefly: delivered/printed road tax is only available for **Foreign ID** or **Company Registration** vehicle ownership.
Then ask them to choose a digital option or no road tax.

*Step 4 of 5 — Road Tax*

%s

%s`, attemptedLabel, buildSummaryBox(state), buildRoadTaxMenu(state)))
	}

	// Road tax picked, collect personal details.
	if intent.Intent == conversation.IntentSelectRoadTax && state.SelectedRoadTax != nil && !roadTaxDeliveryBlocked {
		roadTaxName := state.SelectedRoadTax.Name
		doneLine := roadTaxName + " added!"
		if state.SelectedRoadTax.Price == 0 {
			doneLine = "No road tax."
		}
		hints = append(hints, fmt.Sprintf(`User selected road tax: %s. Your response MUST include:

*Step 5 of 5 — Your Details*

%s ✅

%s

Almost done! I need:

1. **Email**
2. **Phone number**
3. **Delivery address**

Do NOT alter the summary. MUST include all 3 items to collect.`, roadTaxName, doneLine, buildSummaryBox(state)))
	}

	// Personal detail submission: acknowledge and chase what's missing.
	if intent.Intent == conversation.IntentSubmitDetails {
		var missing []string
		details := state.PersonalDetails
		if details == nil || !details.Email {
			missing = append(missing, "Email")
		}
		if details == nil || !details.Phone {
			missing = append(missing, "Phone number")
		}
		if details == nil || !details.Address {
			missing = append(missing, "Delivery address")
		}

		if len(missing) == 0 {
			hints = append(hints, `All 3 required details are collected (email, phone, delivery address). Confirm this briefly, then say: "Please key in the **OTP** sent to your phone or email now. 📱"`)
		} else {
			hints = append(hints, fmt.Sprintf(`User is submitting personal details.
Currently still missing: %s.
Acknowledge what was received, then ask ONLY for missing item(s) in a short numbered list.
Do NOT proceed to OTP until all 3 are collected.`, strings.Join(missing, ", ")))
		}
	}

	// OTP verified: payment link, unless the quote went stale.
	if intent.Intent == conversation.IntentVerifyOTP {
		if state.IsQuoteExpired() {
			hints = append(hints, fmt.Sprintf(`⚠️ Quote expired. Respond with:

"Your quote has expired. Let me refresh it for you...

✅ **Quote refreshed!** Same prices apply.

%s

Please key in the **OTP** sent to your phone to continue. 📱"`, buildSummaryBox(state)))
			state.RefreshQuoteTimestamps()
		} else {
			hints = append(hints, fmt.Sprintf(`OTP verified! Your response MUST include:

✅ All set!

%s

%s

Card, FPX, e-wallet, or pay later — your choice.

Do NOT alter the payment link URL or amounts.`, buildSummaryBox(state), buildPaymentLink(state)))
		}
	}

	// Ready to pay.
	if intent.Intent == conversation.IntentSelectPayment {
		if state.IsQuoteExpired() {
			hints = append(hints, fmt.Sprintf(`⚠️ Quote expired. Respond with:

"Your quote has expired. Let me refresh it for you...

✅ **Quote refreshed!** Same prices still apply.

%s

%s"`, buildSummaryBox(state), buildPaymentLink(state)))
			state.RefreshQuoteTimestamps()
		} else {
			hints = append(hints, fmt.Sprintf(`User is ready to pay. Your response MUST include the payment link:

%s

%s

Card, FPX, e-wallet, or pay later — your choice.

Do NOT alter the payment link URL or amounts.`, buildSummaryBox(state), buildPaymentLink(state)))
		}
	}

	// Insurer switch needs explicit confirmation before the reset.
	if intent.Intent == conversation.IntentChangeQuote && intent.Data != nil {
		currentInsurer := "current insurer"
		if state.SelectedQuote != nil {
			currentInsurer = state.SelectedQuote.Insurer
		}
		newKey, _ := intent.Data["newInsurer"].(string)
		nameMap := map[string]string{"takaful": "Takaful Ikhlas", "etiqa": "Etiqa", "allianz": "Allianz"}
		newName := nameMap[newKey]
		if newName == "" {
			newName = newKey
		}
		hints = append(hints, fmt.Sprintf(`User wants to change from %s to %s. This will reset all selections (add-ons, road tax). Ask for confirmation: "Switching from **%s** to **%s** will restart from the insurer step. Are you sure?"`,
			currentInsurer, newName, currentInsurer, newName))
	}

	// Playful or unclear replies get a human recovery per step.
	if intent.Intent == conversation.IntentUnclearOrPlayful {
		switch {
		case state.Step == conversation.StepQuotes && state.SelectedQuote == nil:
			if budgetSignalRegex.MatchString(latestLower) {
				hints = append(hints, `User gave a playful/unclear response with budget signal. Reply naturally:
1) acknowledge casually in one short line,
2) give one confident recommendation: **Takaful Ikhlas (RM 796)** with one reason,
3) ask: "Want me to lock this in?"`)
			} else {
				hints = append(hints, `User reply is playful/unclear at quote selection. Keep tone human:
1) short acknowledgement (friendly, not robotic),
2) ask ONE decision question: "What matters most: lowest price, easier claims, or higher coverage?",
3) offer direct shortcut: "Or say **pick for me**."`)
			}

		case state.Step == conversation.StepAddOns:
			hints = append(hints, `User reply is playful/unclear at add-ons. Keep it human and practical:
1) acknowledge briefly,
2) give one default suggestion: **Windscreen (RM 100)** for most drivers,
3) ask one clear action: "Add windscreen, add flood too, or skip all?"`)

		case state.Step == conversation.StepRoadTax:
			hints = append(hints, `User reply is playful/unclear at road tax. Keep response simple:
1) acknowledge briefly,
2) recommend **12-month digital (RM 90)** as default convenience,
3) ask confirmation: "Go with 12-month digital, or prefer another option?"`)

		case state.Step == conversation.StepPersonalDetails:
			hints = append(hints, `User reply is playful/unclear while collecting details. Stay warm, then redirect:
"No worries 😄 I just need these to issue your policy:"
1. Email
2. Phone number
3. Delivery address
Ask for whichever is missing first.`)

		default:
			hints = append(hints, `User reply is playful/unclear. Acknowledge naturally and ask one clear next-step question based on current step.`)
		}
	}

	// Low-confidence messages: clarify without losing the step.
	if intent.Intent == conversation.IntentOther {
		cancel, _ := intent.Data["cancelPendingAction"].(bool)
		switch {
		case cancel:
			hints = append(hints, `User canceled insurer switch confirmation. Acknowledge and continue with the CURRENT selected insurer and current step. Do not reset flow.`)

		case state.Step == conversation.StepQuotes && state.SelectedQuote == nil && !vehicleRejectionHandled:
			hints = append(hints, `User response is unclear. Reply naturally:
1) brief acknowledgement,
2) offer help deciding in one line,
3) ask a clear next action: "Pick **Takaful**, **Etiqa**, **Allianz**, or say **recommend for me**."`)

		case state.Step == conversation.StepAddOns:
			hints = append(hints, fmt.Sprintf(`User response is unclear at add-ons step. Clarify gently and re-show options:

%s

Ask: "Which add-on would you like, or reply **skip**?"`, buildAddOnsMenu()))

		case state.Step == conversation.StepRoadTax:
			hints = append(hints, fmt.Sprintf(`User response is unclear at road tax step. Clarify gently and re-show options:

%s

Ask: "Which option do you want, or reply **no road tax**?"`, buildRoadTaxMenu(state)))
		}
	}

	// Once an insurer is locked, the summary box rides along on every
	// deterministic transition regardless of how the user phrased it.
	shouldInjectSummary := state.SelectedQuote != nil &&
		state.Step != conversation.StepQuotes &&
		intent.Intent != conversation.IntentAskQuestion &&
		intent.Intent != conversation.IntentUnclearOrPlayful &&
		intent.Intent != conversation.IntentOther &&
		intent.Intent != conversation.IntentChangeQuote

	if shouldInjectSummary {
		hints = append(hints, fmt.Sprintf(`IMPORTANT: User has selected an insurer. Your response MUST ALWAYS include this summary box somewhere in your response:

%s

This summary box must appear in EVERY response from now on until payment is complete. Do not skip it regardless of what the user asks or says.`, buildSummaryBox(state)))
	}

	return hints
}
