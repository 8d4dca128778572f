package tools

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"insurance-renewal-assistant/internal/agent"
)

// Format: ABC1234 or WXY123 or 1ABC234
var registrationPattern = regexp.MustCompile(`^[A-Z]{1,3}[0-9]{1,4}$|^[0-9][A-Z]{3}[0-9]{1,4}$`)

// ValidateRegistrationNumberTool checks plate format and known history.
type ValidateRegistrationNumberTool struct{}

// NewValidateRegistrationNumberTool creates a new registration validator tool.
func NewValidateRegistrationNumberTool() agent.Tool {
	return &ValidateRegistrationNumberTool{}
}

func (t *ValidateRegistrationNumberTool) Name() string {
	return "validate_registration_number"
}

func (t *ValidateRegistrationNumberTool) Description() string {
	return "Validate a Malaysian vehicle registration number and check if we have any history for this vehicle. Use this to verify the registration number before processing."
}

func (t *ValidateRegistrationNumberTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"registrationNumber": map[string]interface{}{
				"type":        "string",
				"description": "Vehicle registration number to validate",
			},
		},
		"required": []string{"registrationNumber"},
	}
}

func (t *ValidateRegistrationNumberTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	regNum, ok := params["registrationNumber"].(string)
	if !ok || regNum == "" {
		return nil, fmt.Errorf("registrationNumber parameter is required")
	}

	normalized := strings.ToUpper(strings.ReplaceAll(regNum, " ", ""))
	if !registrationPattern.MatchString(normalized) {
		return map[string]interface{}{
			"isValid": false,
			"error":   "Invalid registration number format",
		}, nil
	}

	policy, hasHistory := mockPolicies[normalized]
	result := map[string]interface{}{
		"isValid":            true,
		"registrationNumber": normalized,
		"hasHistory":         hasHistory,
	}
	if hasHistory {
		result["basicInfo"] = map[string]interface{}{
			"make":  policy.Make,
			"model": policy.Model,
			"year":  policy.Year,
		}
	}
	return result, nil
}
