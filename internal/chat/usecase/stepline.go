package usecase

import (
	"regexp"
	"strings"

	"insurance-renewal-assistant/internal/conversation"
	"insurance-renewal-assistant/internal/model"
)

// Visible progress indicator of the form "*Step X of 5 — Title*". The model
// is told to show it at stage transitions; these helpers add it when omitted
// and suppress duplicates against the previous assistant message.

var (
	stepLineRegex        = regexp.MustCompile(`(?im)^\s*(?:\*{1,2})?\s*step\s+\d+\s+of\s+5\s*[—-]`)
	stepLineCaptureRegex = regexp.MustCompile(`(?im)^\s*(?:\*{1,2})?\s*(step\s+\d+\s+of\s+5\s*[—-]\s*[^\n*]+)\s*(?:\*{1,2})?`)
	stepLineDashRegex    = regexp.MustCompile(`[–—]`)
	stepLineSpaceRegex   = regexp.MustCompile(`\s+`)
)

func normalizeStepLine(stepLine string) string {
	if stepLine == "" {
		return ""
	}
	s := strings.ToLower(stepLine)
	s = strings.ReplaceAll(s, "*", "")
	s = stepLineSpaceRegex.ReplaceAllString(s, " ")
	s = stepLineDashRegex.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}

func extractStepLine(text string) string {
	m := stepLineCaptureRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func ensureStepLine(response, stepLine string) string {
	if stepLine == "" || response == "" {
		return response
	}
	if stepLineRegex.MatchString(response) {
		return response
	}
	return stepLine + "\n\n" + response
}

// currentStageStepLine maps the conversation stage to its indicator.
func currentStageStepLine(state *conversation.State) string {
	if !state.HasCompleteVehicleIdentification() {
		return "*Step 1 of 5 — Vehicle Info*"
	}

	switch {
	case state.Step == conversation.StepQuotes && state.SelectedQuote == nil:
		return "*Step 2 of 5 — Choose Insurer*"
	case state.Step == conversation.StepAddOns:
		return "*Step 3 of 5 — Add-ons*"
	case state.Step == conversation.StepRoadTax:
		return "*Step 4 of 5 — Road Tax*"
	case state.Step == conversation.StepPersonalDetails:
		return "*Step 5 of 5 — Your Details*"
	}
	return ""
}

// expectedStepLine decides which indicator this turn's reply must carry,
// or "" when none should be added.
func expectedStepLine(intent conversation.ClassifiedIntent, state *conversation.State, messages []model.ChatMessage) string {
	var lastAssistantStepLine string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != model.RoleAssistant {
			continue
		}
		if line := extractStepLine(messages[i].Content); line != "" {
			lastAssistantStepLine = line
			break
		}
	}

	// Explicit transition triggers win.
	var candidate string
	switch {
	case intent.Intent == conversation.IntentSelectQuote:
		candidate = "*Step 3 of 5 — Add-ons*"
	case intent.Intent == conversation.IntentSelectAddOn:
		candidate = "*Step 4 of 5 — Road Tax*"
	case intent.Intent == conversation.IntentSelectRoadTax:
		candidate = "*Step 5 of 5 — Your Details*"
	case intent.Intent == conversation.IntentProvideInfo && state.HasCompleteVehicleIdentification():
		candidate = "*Step 2 of 5 — Choose Insurer*"
	case intent.Intent == conversation.IntentConfirm && state.Step == conversation.StepQuotes && state.SelectedQuote == nil:
		candidate = "*Step 2 of 5 — Choose Insurer*"
	}

	// Fallback: first render or stage changed since the last assistant turn.
	if candidate == "" {
		currentStageLine := currentStageStepLine(state)
		currentNormalized := normalizeStepLine(currentStageLine)
		lastNormalized := normalizeStepLine(lastAssistantStepLine)

		if lastNormalized == "" && currentStageLine != "" {
			candidate = currentStageLine
		} else if currentNormalized != "" && lastNormalized != "" && currentNormalized != lastNormalized {
			candidate = currentStageLine
		}
	}

	if candidate == "" {
		return ""
	}
	if normalizeStepLine(candidate) == normalizeStepLine(lastAssistantStepLine) {
		return ""
	}
	return candidate
}
