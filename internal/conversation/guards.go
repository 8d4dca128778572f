package conversation

import (
	"regexp"
	"strings"

	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/internal/nlp"
)

var (
	recInsurerCueRegex = regexp.MustCompile(`(?i)i recommend|i(?:'d| would)\s+recommend|my recommendation|i(?:'d| would) go with|best option|best pick|go with|suggest`)
	recMenuVerbRegex   = regexp.MustCompile(`(?i)pick|choose|select|which|or say recommend for me|if you need help deciding`)
	recMenuListRegex   = regexp.MustCompile(`(?i)(takaful).*(etiqa).*(allianz)|(allianz).*(etiqa).*(takaful)|(etiqa).*(takaful).*(allianz)`)

	rejectionStartRegex    = regexp.MustCompile(`(?i)^(no|nope|nah)\b`)
	rejectionWordRegex     = regexp.MustCompile(`(?i)\b(wrong|incorrect|not right|not correct|doesn'?t match|don'?t match|dont match|do not match|different)\b`)
	rejectionNotMineRegex  = regexp.MustCompile(`(?i)\b(not my|isn'?t my|is not my)\s+(car|vehicle)\b`)
	vehicleConfirmationCue = regexp.MustCompile(`(?i)found your vehicle|vehicle reg\.?num|cover type|policy effective|is this correct\?`)
)

// ParseRecommendedInsurer returns the single insurer an assistant message
// recommended, or empty when the message was a menu of all options or
// mentioned several insurers. Used to resolve "ok lets go with that one".
func ParseRecommendedInsurer(assistantMessage string) string {
	text := strings.ToLower(assistantMessage)

	var mentions []string
	if strings.Contains(text, "takaful") || strings.Contains(text, "ikhlas") {
		mentions = append(mentions, "takaful")
	}
	if strings.Contains(text, "etiqa") {
		mentions = append(mentions, "etiqa")
	}
	if strings.Contains(text, "allianz") {
		mentions = append(mentions, "allianz")
	}
	if len(mentions) != 1 {
		return ""
	}

	// A quotes menu lists every insurer and asks the user to pick; that is
	// not a recommendation even when phrased with "choose" or "pick".
	if recMenuVerbRegex.MatchString(text) && recMenuListRegex.MatchString(text) {
		return ""
	}

	if !recInsurerCueRegex.MatchString(text) {
		return ""
	}
	return mentions[0]
}

// IsVehicleDetailsRejection reports whether the user is disputing the
// looked-up vehicle details.
func IsVehicleDetailsRejection(message string) bool {
	msg := strings.TrimSpace(message)
	return rejectionStartRegex.MatchString(msg) ||
		rejectionWordRegex.MatchString(msg) ||
		rejectionNotMineRegex.MatchString(msg)
}

// WasLastAssistantVehicleConfirmation reports whether the most recent
// assistant message asked the user to confirm their vehicle details.
func WasLastAssistantVehicleConfirmation(messages []model.ChatMessage) bool {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != model.RoleAssistant || messages[i].Content == "" {
			continue
		}
		return vehicleConfirmationCue.MatchString(messages[i].Content)
	}
	return false
}

// CanUseDeliveredRoadTax reports whether JPJ allows physical road tax
// delivery for the owner's document type.
func CanUseDeliveredRoadTax(ownerIDType string) bool {
	return ownerIDType == nlp.OwnerIDTypeForeignID || ownerIDType == nlp.OwnerIDTypeCompanyReg
}
