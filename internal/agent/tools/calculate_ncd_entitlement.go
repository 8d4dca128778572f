package tools

import (
	"context"
	"fmt"

	"insurance-renewal-assistant/internal/agent"
)

// Malaysian private car NCD ladder.
var ncdLevels = map[int]float64{
	0: 0,
	1: 25,
	2: 30,
	3: 38.33,
	4: 45,
	5: 55,
}

const maxNCD = 55.0

// CalculateNCDEntitlementTool maps claim-free years to an NCD percentage.
type CalculateNCDEntitlementTool struct{}

// NewCalculateNCDEntitlementTool creates a new NCD entitlement tool.
func NewCalculateNCDEntitlementTool() agent.Tool {
	return &CalculateNCDEntitlementTool{}
}

func (t *CalculateNCDEntitlementTool) Name() string {
	return "calculate_ncd_entitlement"
}

func (t *CalculateNCDEntitlementTool) Description() string {
	return "Calculate NCD (No Claims Discount) entitlement based on years without claims. Use this when the user asks about their NCD level or how NCD accumulates."
}

func (t *CalculateNCDEntitlementTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"yearsNoClaims": map[string]interface{}{
				"type":        "number",
				"description": "Number of consecutive years without claims",
			},
			"currentNCD": map[string]interface{}{
				"type":        "number",
				"description": "Current NCD percentage if known",
			},
		},
		"required": []string{"yearsNoClaims"},
	}
}

func (t *CalculateNCDEntitlementTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	yearsRaw, ok := params["yearsNoClaims"].(float64)
	if !ok {
		return nil, fmt.Errorf("yearsNoClaims parameter is required")
	}

	years := int(yearsRaw)
	if years > 5 {
		years = 5
	}
	if years < 0 {
		years = 0
	}

	entitlement := ncdLevels[years]
	nextLevel := maxNCD
	if years < 5 {
		nextLevel = ncdLevels[years+1]
	}

	return map[string]interface{}{
		"yearsNoClaims":  years,
		"ncdEntitlement": entitlement,
		"nextLevel":      nextLevel,
		"maxNCD":         maxNCD,
		"explanation": fmt.Sprintf(
			"After %d year(s) without claims, you're entitled to %.2f%% NCD. NCD maxes out at 55%% after 5 years.",
			years, entitlement),
	}, nil
}
