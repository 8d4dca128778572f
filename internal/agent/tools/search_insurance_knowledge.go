package tools

import (
	"context"
	"fmt"

	"insurance-renewal-assistant/internal/agent"
	"insurance-renewal-assistant/internal/knowledge"
)

// SearchInsuranceKnowledgeTool queries the built-in insurance knowledge base.
type SearchInsuranceKnowledgeTool struct{}

// NewSearchInsuranceKnowledgeTool creates a new knowledge search tool.
func NewSearchInsuranceKnowledgeTool() agent.Tool {
	return &SearchInsuranceKnowledgeTool{}
}

func (t *SearchInsuranceKnowledgeTool) Name() string {
	return "search_insurance_knowledge"
}

func (t *SearchInsuranceKnowledgeTool) Description() string {
	return "Search the insurance knowledge base for answers about NCD, coverage types, claims process, takaful, and other insurance topics. Use this when the user asks a general insurance question."
}

func (t *SearchInsuranceKnowledgeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The insurance question or topic to search for",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchInsuranceKnowledgeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	results := knowledge.Search(query)
	if len(results) == 0 {
		return map[string]interface{}{
			"found":   false,
			"message": "I don't have specific information about that in my knowledge base, but I can help you with general insurance questions.",
		}, nil
	}

	items := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		items = append(items, map[string]interface{}{
			"question": r.Question,
			"answer":   r.Answer,
			"category": r.Category,
		})
	}
	return map[string]interface{}{
		"found":   true,
		"results": items,
	}, nil
}
