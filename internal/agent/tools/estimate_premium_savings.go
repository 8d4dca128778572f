package tools

import (
	"context"
	"fmt"
	"math"

	"insurance-renewal-assistant/internal/agent"
)

// EstimatePremiumSavingsTool shows how NCD reduces the premium.
type EstimatePremiumSavingsTool struct{}

// NewEstimatePremiumSavingsTool creates a new premium savings tool.
func NewEstimatePremiumSavingsTool() agent.Tool {
	return &EstimatePremiumSavingsTool{}
}

func (t *EstimatePremiumSavingsTool) Name() string {
	return "estimate_premium_savings"
}

func (t *EstimatePremiumSavingsTool) Description() string {
	return "Estimate how much the user saves on their premium thanks to NCD. Use this when the user asks how much NCD saves them."
}

func (t *EstimatePremiumSavingsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"basePremium": map[string]interface{}{
				"type":        "number",
				"description": "Premium before NCD in RM",
			},
			"ncdPercent": map[string]interface{}{
				"type":        "number",
				"description": "NCD percentage to apply",
			},
			"compareScenarios": map[string]interface{}{
				"type":        "boolean",
				"description": "Whether to show savings at other NCD levels too",
			},
		},
		"required": []string{"basePremium"},
	}
}

func (t *EstimatePremiumSavingsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	basePremium, ok := params["basePremium"].(float64)
	if !ok {
		return nil, fmt.Errorf("basePremium parameter is required")
	}

	var ncdPercent float64
	if ncd, ok := params["ncdPercent"].(float64); ok {
		ncdPercent = ncd
	}

	savings := math.Round(basePremium * ncdPercent / 100)
	finalPremium := basePremium - savings

	result := map[string]interface{}{
		"basePremium":   basePremium,
		"ncdPercent":    ncdPercent,
		"savingsAmount": savings,
		"finalPremium":  finalPremium,
		"breakdown": fmt.Sprintf("Base Premium: RM%.2f - NCD (%.0f%%): RM%.2f = Final Premium: RM%.2f",
			basePremium, ncdPercent, savings, finalPremium),
	}

	if compare, ok := params["compareScenarios"].(bool); ok && compare {
		scenarios := []map[string]interface{}{}
		for _, level := range []float64{25, 30, 45, 55} {
			s := math.Round(basePremium * level / 100)
			scenarios = append(scenarios, map[string]interface{}{
				"ncdPercent":   level,
				"savings":      s,
				"finalPremium": basePremium - s,
			})
		}
		result["scenarios"] = scenarios
	}

	return result, nil
}
