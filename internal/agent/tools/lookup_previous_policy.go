package tools

import (
	"context"
	"fmt"
	"strings"

	"insurance-renewal-assistant/internal/agent"
)

// previousPolicy is a mock record of an expiring policy.
type previousPolicy struct {
	RegistrationNumber string  `json:"registrationNumber"`
	PolicyNumber       string  `json:"policyNumber"`
	Insurer            string  `json:"insurer"`
	ExpiryDate         string  `json:"expiryDate"`
	NCD                int     `json:"ncd"`
	VehicleType        string  `json:"vehicleType"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	CC                 int     `json:"cc"`
	SumInsured         float64 `json:"sumInsured"`
	LastPremium        float64 `json:"lastPremium"`
}

// Stand-in for the insurer policy API until real integration lands.
var mockPolicies = map[string]previousPolicy{
	"WXY1234": {
		RegistrationNumber: "WXY1234",
		PolicyNumber:       "POL2024-001234",
		Insurer:            "Takaful Ikhlas Insurance",
		ExpiryDate:         "2024-12-31",
		NCD:                20,
		VehicleType:        "Private Car",
		Make:               "Perodua",
		Model:              "Myvi",
		Year:               2020,
		CC:                 1500,
		SumInsured:         34000,
		LastPremium:        995,
	},
	"ABC5678": {
		RegistrationNumber: "ABC5678",
		PolicyNumber:       "POL2024-005678",
		Insurer:            "Allianz Malaysia",
		ExpiryDate:         "2024-11-30",
		NCD:                25,
		VehicleType:        "Private Car",
		Make:               "Honda",
		Model:              "City",
		Year:               2019,
		CC:                 1500,
		SumInsured:         45000,
		LastPremium:        1200,
	},
}

// LookupPreviousPolicyTool resolves an expiring policy by plate number.
type LookupPreviousPolicyTool struct{}

// NewLookupPreviousPolicyTool creates a new previous policy lookup tool.
func NewLookupPreviousPolicyTool() agent.Tool {
	return &LookupPreviousPolicyTool{}
}

func (t *LookupPreviousPolicyTool) Name() string {
	return "lookup_previous_policy"
}

func (t *LookupPreviousPolicyTool) Description() string {
	return "Look up the user's previous insurance policy using their vehicle registration number. Use this when the user asks about their last year's policy, previous insurance, or current coverage."
}

func (t *LookupPreviousPolicyTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"registrationNumber": map[string]interface{}{
				"type":        "string",
				"description": "Malaysian vehicle registration number (e.g., WXY1234, ABC5678)",
			},
		},
		"required": []string{"registrationNumber"},
	}
}

func (t *LookupPreviousPolicyTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	regNum, ok := params["registrationNumber"].(string)
	if !ok || regNum == "" {
		return nil, fmt.Errorf("registrationNumber parameter is required")
	}

	normalized := strings.ToUpper(strings.ReplaceAll(regNum, " ", ""))
	policy, found := mockPolicies[normalized]
	if !found {
		return map[string]interface{}{
			"found":   false,
			"message": "No previous policy found for this registration number",
		}, nil
	}

	return map[string]interface{}{
		"found":  true,
		"policy": policy,
	}, nil
}
