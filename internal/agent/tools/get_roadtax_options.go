package tools

import (
	"context"

	"insurance-renewal-assistant/internal/agent"
	"insurance-renewal-assistant/internal/catalog"
)

// GetRoadTaxOptionsTool lists road tax renewal options for a vehicle.
type GetRoadTaxOptionsTool struct{}

// NewGetRoadTaxOptionsTool creates a new road tax options tool.
func NewGetRoadTaxOptionsTool() agent.Tool {
	return &GetRoadTaxOptionsTool{}
}

func (t *GetRoadTaxOptionsTool) Name() string {
	return "get_roadtax_options"
}

func (t *GetRoadTaxOptionsTool) Description() string {
	return "Get road tax renewal options including delivery and digital options. Use this when user asks about road tax renewal."
}

func (t *GetRoadTaxOptionsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"cc": map[string]interface{}{
				"type":        "number",
				"description": "Engine capacity in CC to calculate road tax amount",
			},
		},
		"required": []string{"cc"},
	}
}

func (t *GetRoadTaxOptionsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	// JPJ private car bands for reference alongside the fixed menu.
	annualAmount := 90.0
	if cc, ok := params["cc"].(float64); ok {
		switch {
		case cc > 2500:
			annualAmount = 520
		case cc > 2000:
			annualAmount = 380
		case cc > 1600:
			annualAmount = 200
		}
	}

	return map[string]interface{}{
		"annualRoadTax": annualAmount,
		"options":       catalog.RoadTaxOptions(),
	}, nil
}
