package tools

import (
	"context"
	"fmt"

	"insurance-renewal-assistant/internal/agent"
	"insurance-renewal-assistant/internal/knowledge"
)

// ExplainInsuranceTermTool explains a single insurance term.
type ExplainInsuranceTermTool struct{}

// NewExplainInsuranceTermTool creates a new term explanation tool.
func NewExplainInsuranceTermTool() agent.Tool {
	return &ExplainInsuranceTermTool{}
}

func (t *ExplainInsuranceTermTool) Name() string {
	return "explain_insurance_term"
}

func (t *ExplainInsuranceTermTool) Description() string {
	return "Explain a specific insurance term or concept in simple language. Use this when the user asks what a term means."
}

func (t *ExplainInsuranceTermTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"term": map[string]interface{}{
				"type":        "string",
				"description": "The insurance term to explain",
				"enum": []string{
					"NCD", "sum insured", "comprehensive", "third party", "takaful",
					"betterment", "excess", "special perils", "panel workshop",
				},
			},
		},
		"required": []string{"term"},
	}
}

func (t *ExplainInsuranceTermTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	term, ok := params["term"].(string)
	if !ok || term == "" {
		return nil, fmt.Errorf("term parameter is required")
	}

	results := knowledge.Search(term)
	if len(results) == 0 {
		return map[string]interface{}{
			"term":        term,
			"explanation": fmt.Sprintf("%s is a common insurance term. Let me explain it in the context of your renewal.", term),
		}, nil
	}

	related := make([]string, 0, 2)
	for _, r := range results[1:] {
		related = append(related, r.Question)
	}
	return map[string]interface{}{
		"term":        term,
		"explanation": results[0].Answer,
		"relatedInfo": related,
	}, nil
}
