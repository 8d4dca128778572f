package tools

import (
	"context"

	"insurance-renewal-assistant/internal/agent"
	"insurance-renewal-assistant/internal/catalog"
)

// GetInsuranceQuotesTool returns the fixed quote panel for a vehicle.
type GetInsuranceQuotesTool struct{}

// NewGetInsuranceQuotesTool creates a new quotes tool.
func NewGetInsuranceQuotesTool() agent.Tool {
	return &GetInsuranceQuotesTool{}
}

func (t *GetInsuranceQuotesTool) Name() string {
	return "get_insurance_quotes"
}

func (t *GetInsuranceQuotesTool) Description() string {
	return "Fetch insurance quotes from multiple insurers based on vehicle information. Use this when the user wants to see quotes, compare prices, or start the renewal process."
}

func (t *GetInsuranceQuotesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"vehicleType": map[string]interface{}{
				"type":        "string",
				"description": "Type of vehicle",
				"enum":        []string{"Private Car", "Motorcycle", "Commercial Vehicle"},
			},
			"cc": map[string]interface{}{
				"type":        "number",
				"description": "Engine capacity in CC",
			},
			"sumInsured": map[string]interface{}{
				"type":        "number",
				"description": "Sum insured / market value of the vehicle in RM",
			},
			"ncd": map[string]interface{}{
				"type":        "number",
				"description": "No Claims Discount percentage (0-55)",
			},
		},
		"required": []string{"vehicleType", "cc", "sumInsured"},
	}
}

func (t *GetInsuranceQuotesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	quoteParams := catalog.QuoteParams{}
	if cc, ok := params["cc"].(float64); ok {
		quoteParams.EngineCC = int(cc)
	}
	if sumInsured, ok := params["sumInsured"].(float64); ok {
		quoteParams.VehicleValue = sumInsured
	}
	if ncd, ok := params["ncd"].(float64); ok {
		quoteParams.NCDPercent = ncd
	}

	quotes := catalog.Quotes(quoteParams)
	return map[string]interface{}{
		"count":  len(quotes),
		"quotes": quotes,
	}, nil
}
