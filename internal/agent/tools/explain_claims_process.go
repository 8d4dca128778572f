package tools

import (
	"context"
	"fmt"

	"insurance-renewal-assistant/internal/agent"
	"insurance-renewal-assistant/internal/knowledge"
)

const defaultClaimsProcess = "Standard claim process: 1) Report to insurer, 2) Submit documents, 3) Vehicle inspection, 4) Repair approval, 5) Claim settlement"

const claimRequirements = "Police report (if required), claim form, photos, IC, license, policy document"

// ExplainClaimsProcessTool walks through the claims process for a claim type.
type ExplainClaimsProcessTool struct{}

// NewExplainClaimsProcessTool creates a new claims process tool.
func NewExplainClaimsProcessTool() agent.Tool {
	return &ExplainClaimsProcessTool{}
}

func (t *ExplainClaimsProcessTool) Name() string {
	return "explain_claims_process"
}

func (t *ExplainClaimsProcessTool) Description() string {
	return "Explain how to make an insurance claim for a specific situation. Use this when the user asks about making claims."
}

func (t *ExplainClaimsProcessTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"claimType": map[string]interface{}{
				"type":        "string",
				"description": "Type of claim the user is asking about",
				"enum":        []string{"accident", "theft", "total loss", "windscreen", "flood", "general"},
			},
		},
	}
}

func (t *ExplainClaimsProcessTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	claimType := "general"
	if ct, ok := params["claimType"].(string); ok && ct != "" {
		claimType = ct
	}

	process := defaultClaimsProcess
	results := knowledge.Search(fmt.Sprintf("%s claim process", claimType))
	if len(results) > 0 {
		process = results[0].Answer
	}

	return map[string]interface{}{
		"claimType":    claimType,
		"process":      process,
		"requirements": claimRequirements,
	}, nil
}
