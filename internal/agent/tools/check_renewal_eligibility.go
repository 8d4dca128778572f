package tools

import (
	"context"
	"fmt"
	"math"
	"time"

	"insurance-renewal-assistant/internal/agent"
)

// CheckRenewalEligibilityTool checks whether the policy can be renewed now.
type CheckRenewalEligibilityTool struct{}

// NewCheckRenewalEligibilityTool creates a new renewal eligibility tool.
func NewCheckRenewalEligibilityTool() agent.Tool {
	return &CheckRenewalEligibilityTool{}
}

func (t *CheckRenewalEligibilityTool) Name() string {
	return "check_renewal_eligibility"
}

func (t *CheckRenewalEligibilityTool) Description() string {
	return "Check if the user's policy is eligible for renewal now and whether the timing is right. Use this when the user asks when they should renew."
}

func (t *CheckRenewalEligibilityTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"policyExpiryDate": map[string]interface{}{
				"type":        "string",
				"description": "Policy expiry date in YYYY-MM-DD format",
			},
			"hasActiveClaims": map[string]interface{}{
				"type":        "boolean",
				"description": "Whether there are unsettled claims on the policy",
			},
		},
	}
}

func (t *CheckRenewalEligibilityTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	expiryStr, _ := params["policyExpiryDate"].(string)
	hasActiveClaims, _ := params["hasActiveClaims"].(bool)

	if expiryStr == "" {
		return map[string]interface{}{
			"eligible": true,
			"message":  "You can renew your insurance anytime. Best to start 30-60 days before expiry.",
		}, nil
	}

	expiry, err := time.Parse("2006-01-02", expiryStr)
	if err != nil {
		return map[string]interface{}{
			"eligible": true,
			"message":  "You can renew your insurance anytime. Best to start 30-60 days before expiry.",
		}, nil
	}

	daysUntilExpiry := int(math.Ceil(time.Until(expiry).Hours() / 24))
	isExpired := daysUntilExpiry < 0
	canRenewNow := daysUntilExpiry <= 60

	var message string
	switch {
	case isExpired:
		message = fmt.Sprintf("Your policy expired %d day(s) ago. You should renew immediately - driving without insurance is illegal in Malaysia.", -daysUntilExpiry)
	case canRenewNow:
		message = fmt.Sprintf("Your policy expires in %d day(s). This is a great time to renew!", daysUntilExpiry)
	default:
		message = fmt.Sprintf("Your policy expires in %d day(s). You can renew up to 60 days before expiry.", daysUntilExpiry)
	}

	result := map[string]interface{}{
		"eligible":        true,
		"daysUntilExpiry": daysUntilExpiry,
		"isExpired":       isExpired,
		"canRenewNow":     canRenewNow,
		"message":         message,
		"hasActiveClaims": hasActiveClaims,
	}
	if hasActiveClaims {
		result["claimsWarning"] = "Active claims may affect your NCD and renewal premium. Your new NCD will be adjusted once claims are settled."
	}
	return result, nil
}
