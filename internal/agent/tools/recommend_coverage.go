package tools

import (
	"context"
	"fmt"
	"strings"

	"insurance-renewal-assistant/internal/agent"
)

var floodProneAreas = []string{"penang", "kelantan", "pahang", "terengganu", "johor", "selangor"}

// RecommendCoverageTool suggests coverage and add-ons for the user's situation.
type RecommendCoverageTool struct{}

// NewRecommendCoverageTool creates a new coverage recommendation tool.
func NewRecommendCoverageTool() agent.Tool {
	return &RecommendCoverageTool{}
}

func (t *RecommendCoverageTool) Name() string {
	return "recommend_coverage"
}

func (t *RecommendCoverageTool) Description() string {
	return "Recommend coverage and add-ons based on the user's vehicle value, location, and usage. Use this when the user asks what coverage they should get."
}

func (t *RecommendCoverageTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"carValue": map[string]interface{}{
				"type":        "number",
				"description": "Market value of the car in RM",
			},
			"location": map[string]interface{}{
				"type":        "string",
				"description": "Where the user lives or drives (state or city)",
			},
			"usage": map[string]interface{}{
				"type":        "string",
				"description": "How the car is used",
				"enum":        []string{"daily commute", "occasional", "business", "family"},
			},
		},
		"required": []string{"carValue"},
	}
}

func (t *RecommendCoverageTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	carValue, ok := params["carValue"].(float64)
	if !ok {
		return nil, fmt.Errorf("carValue parameter is required")
	}

	location, _ := params["location"].(string)
	usage, _ := params["usage"].(string)

	recommendations := []map[string]interface{}{}

	if carValue > 30000 {
		recommendations = append(recommendations, map[string]interface{}{
			"item":     "Comprehensive Coverage",
			"priority": "Essential",
			"reason":   "Your car's value justifies full protection against damage, theft, and third-party liability.",
		})
	}

	locLower := strings.ToLower(location)
	for _, area := range floodProneAreas {
		if strings.Contains(locLower, area) {
			recommendations = append(recommendations, map[string]interface{}{
				"item":     "Flood Coverage (Special Perils)",
				"priority": "Highly Recommended",
				"reason":   "Your area has a history of flooding. Flood damage is not covered by standard policies.",
			})
			break
		}
	}

	if usage == "daily commute" || usage == "business" {
		recommendations = append(recommendations, map[string]interface{}{
			"item":     "Windscreen Protection",
			"priority": "Recommended",
			"reason":   "High mileage increases the chance of windscreen damage. Claiming it won't affect your NCD.",
		})
	}

	return map[string]interface{}{
		"carValue":        carValue,
		"location":        location,
		"usage":           usage,
		"recommendations": recommendations,
	}, nil
}
