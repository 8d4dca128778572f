package tools

import (
	"context"

	"insurance-renewal-assistant/internal/agent"
	"insurance-renewal-assistant/internal/catalog"
)

// GetAvailableAddOnsTool lists the add-on menu.
type GetAvailableAddOnsTool struct{}

// NewGetAvailableAddOnsTool creates a new add-ons tool.
func NewGetAvailableAddOnsTool() agent.Tool {
	return &GetAvailableAddOnsTool{}
}

func (t *GetAvailableAddOnsTool) Name() string {
	return "get_available_addons"
}

func (t *GetAvailableAddOnsTool) Description() string {
	return "Get the list of available insurance add-ons like windscreen protection, flood coverage, etc. Use this when user asks what add-ons are available."
}

func (t *GetAvailableAddOnsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"insurerId": map[string]interface{}{
				"type":        "string",
				"description": "ID of the selected insurer (optional)",
			},
		},
	}
}

func (t *GetAvailableAddOnsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	// Same menu for every insurer in the current panel.
	return map[string]interface{}{
		"addOns": catalog.AddOns(),
	}, nil
}
