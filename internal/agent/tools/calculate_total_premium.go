package tools

import (
	"context"
	"fmt"

	"insurance-renewal-assistant/internal/agent"
)

// CalculateTotalPremiumTool sums premium, add-ons, and road tax.
type CalculateTotalPremiumTool struct{}

// NewCalculateTotalPremiumTool creates a new total premium tool.
func NewCalculateTotalPremiumTool() agent.Tool {
	return &CalculateTotalPremiumTool{}
}

func (t *CalculateTotalPremiumTool) Name() string {
	return "calculate_total_premium"
}

func (t *CalculateTotalPremiumTool) Description() string {
	return "Calculate the total premium including base insurance, add-ons, and road tax. Use this when user asks about total price or wants to know the final amount."
}

func (t *CalculateTotalPremiumTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"basePremium": map[string]interface{}{
				"type":        "number",
				"description": "Base insurance premium after NCD",
			},
			"addOns": map[string]interface{}{
				"type":        "array",
				"description": "Array of selected add-on prices",
				"items":       map[string]interface{}{"type": "number"},
			},
			"roadTax": map[string]interface{}{
				"type":        "number",
				"description": "Road tax amount (optional)",
			},
		},
		"required": []string{"basePremium"},
	}
}

func (t *CalculateTotalPremiumTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	basePremium, ok := params["basePremium"].(float64)
	if !ok {
		return nil, fmt.Errorf("basePremium parameter is required")
	}

	var addOnsTotal float64
	if addOns, ok := params["addOns"].([]interface{}); ok {
		for _, price := range addOns {
			if p, ok := price.(float64); ok {
				addOnsTotal += p
			}
		}
	}

	var roadTax float64
	if rt, ok := params["roadTax"].(float64); ok {
		roadTax = rt
	}

	return map[string]interface{}{
		"basePremium": basePremium,
		"addOnsTotal": addOnsTotal,
		"roadTax":     roadTax,
		"grandTotal":  basePremium + addOnsTotal + roadTax,
	}, nil
}
