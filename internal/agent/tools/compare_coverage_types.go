package tools

import (
	"context"
	"fmt"

	"insurance-renewal-assistant/internal/agent"
	"insurance-renewal-assistant/internal/knowledge"
)

// CompareCoverageTypesTool compares two coverage or product types.
type CompareCoverageTypesTool struct{}

// NewCompareCoverageTypesTool creates a new coverage comparison tool.
func NewCompareCoverageTypesTool() agent.Tool {
	return &CompareCoverageTypesTool{}
}

func (t *CompareCoverageTypesTool) Name() string {
	return "compare_coverage_types"
}

func (t *CompareCoverageTypesTool) Description() string {
	return "Compare two types of insurance coverage (e.g., comprehensive vs third party, takaful vs conventional). Use this when the user wants to compare options."
}

func (t *CompareCoverageTypesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"type1": map[string]interface{}{
				"type":        "string",
				"description": "First coverage type to compare",
			},
			"type2": map[string]interface{}{
				"type":        "string",
				"description": "Second coverage type to compare",
			},
		},
		"required": []string{"type1", "type2"},
	}
}

func (t *CompareCoverageTypesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	type1, ok := params["type1"].(string)
	if !ok || type1 == "" {
		return nil, fmt.Errorf("type1 parameter is required")
	}
	type2, ok := params["type2"].(string)
	if !ok || type2 == "" {
		return nil, fmt.Errorf("type2 parameter is required")
	}

	results := knowledge.Search(type1 + " vs " + type2)
	if len(results) == 0 {
		return map[string]interface{}{
			"comparison": fmt.Sprintf("Comparing %s and %s based on general insurance principles.", type1, type2),
			"type1":      type1,
			"type2":      type2,
		}, nil
	}
	return map[string]interface{}{
		"comparison": results[0].Answer,
		"type1":      type1,
		"type2":      type2,
	}, nil
}
