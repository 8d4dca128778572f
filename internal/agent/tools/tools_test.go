package tools

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGetInsuranceQuotes(t *testing.T) {
	tool := NewGetInsuranceQuotesTool()
	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"vehicleType": "Private Car",
		"cc":          float64(1500),
		"sumInsured":  float64(34000),
		"ncd":         float64(25),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	m := result.(map[string]interface{})
	if m["count"] != 3 {
		t.Errorf("Expected 3 quotes, got %v", m["count"])
	}
}

func TestCalculateTotalPremium(t *testing.T) {
	tool := NewCalculateTotalPremiumTool()

	t.Run("full breakdown", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"basePremium": float64(796),
			"addOns":      []interface{}{float64(85), float64(65)},
			"roadTax":     float64(90),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["addOnsTotal"] != float64(150) {
			t.Errorf("Expected addOnsTotal 150, got %v", m["addOnsTotal"])
		}
		if m["grandTotal"] != float64(1036) {
			t.Errorf("Expected grandTotal 1036, got %v", m["grandTotal"])
		}
	})

	t.Run("missing base premium", func(t *testing.T) {
		_, err := tool.Execute(context.Background(), map[string]interface{}{})
		if err == nil {
			t.Error("Expected error when basePremium is missing")
		}
	})
}

func TestCalculateNCDEntitlement(t *testing.T) {
	tool := NewCalculateNCDEntitlementTool()

	t.Run("three years", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"yearsNoClaims": float64(3),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["ncdEntitlement"] != 38.33 {
			t.Errorf("Expected 38.33, got %v", m["ncdEntitlement"])
		}
		if m["nextLevel"] != float64(45) {
			t.Errorf("Expected next level 45, got %v", m["nextLevel"])
		}
	})

	t.Run("capped at five years", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"yearsNoClaims": float64(8),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["ncdEntitlement"] != float64(55) {
			t.Errorf("Expected max NCD 55, got %v", m["ncdEntitlement"])
		}
		if m["nextLevel"] != float64(55) {
			t.Errorf("Expected next level 55 at cap, got %v", m["nextLevel"])
		}
	})
}

func TestEstimatePremiumSavings(t *testing.T) {
	tool := NewEstimatePremiumSavingsTool()
	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"basePremium":      float64(1000),
		"ncdPercent":       float64(25),
		"compareScenarios": true,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	m := result.(map[string]interface{})
	if m["savingsAmount"] != float64(250) {
		t.Errorf("Expected savings 250, got %v", m["savingsAmount"])
	}
	if m["finalPremium"] != float64(750) {
		t.Errorf("Expected final premium 750, got %v", m["finalPremium"])
	}

	scenarios, ok := m["scenarios"].([]map[string]interface{})
	if !ok || len(scenarios) != 4 {
		t.Fatalf("Expected 4 scenarios, got %v", m["scenarios"])
	}
	if scenarios[3]["finalPremium"] != float64(450) {
		t.Errorf("Expected 55%% scenario final premium 450, got %v", scenarios[3]["finalPremium"])
	}
}

func TestRecommendCoverage(t *testing.T) {
	tool := NewRecommendCoverageTool()

	t.Run("high value flood prone daily commute", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"carValue": float64(45000),
			"location": "Shah Alam, Selangor",
			"usage":    "daily commute",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		recs := m["recommendations"].([]map[string]interface{})
		if len(recs) != 3 {
			t.Fatalf("Expected 3 recommendations, got %d", len(recs))
		}
		if recs[0]["item"] != "Comprehensive Coverage" {
			t.Errorf("Expected comprehensive first, got %v", recs[0]["item"])
		}
		if recs[1]["item"] != "Flood Coverage (Special Perils)" {
			t.Errorf("Expected flood coverage second, got %v", recs[1]["item"])
		}
	})

	t.Run("low value occasional", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"carValue": float64(12000),
			"usage":    "occasional",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		recs := m["recommendations"].([]map[string]interface{})
		if len(recs) != 0 {
			t.Errorf("Expected no recommendations, got %d", len(recs))
		}
	})
}

func TestCheckRenewalEligibility(t *testing.T) {
	tool := NewCheckRenewalEligibilityTool()

	t.Run("no expiry date", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["eligible"] != true {
			t.Error("Expected eligible without a date")
		}
		if !strings.Contains(m["message"].(string), "anytime") {
			t.Errorf("Expected anytime message, got %v", m["message"])
		}
	})

	t.Run("expired policy", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"policyExpiryDate": "2020-01-01",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["isExpired"] != true {
			t.Error("Expected expired policy")
		}
		if !strings.Contains(m["message"].(string), "immediately") {
			t.Errorf("Expected urgent message, got %v", m["message"])
		}
	})

	t.Run("within renewal window", func(t *testing.T) {
		expiry := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"policyExpiryDate": expiry,
			"hasActiveClaims":  true,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["canRenewNow"] != true {
			t.Error("Expected renewable within 60 days")
		}
		if _, ok := m["claimsWarning"]; !ok {
			t.Error("Expected claims warning when active claims present")
		}
	})
}

func TestSearchInsuranceKnowledge(t *testing.T) {
	tool := NewSearchInsuranceKnowledgeTool()

	t.Run("known topic", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"query": "what is NCD discount",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["found"] != true {
			t.Fatal("Expected results for NCD query")
		}
		results := m["results"].([]map[string]interface{})
		if len(results) == 0 || len(results) > 3 {
			t.Errorf("Expected 1-3 results, got %d", len(results))
		}
	})

	t.Run("unknown topic", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"query": "quantum blockchain synergy",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["found"] != false {
			t.Error("Expected no results for unrelated query")
		}
	})
}

func TestExplainInsuranceTerm(t *testing.T) {
	tool := NewExplainInsuranceTermTool()
	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"term": "betterment",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	m := result.(map[string]interface{})
	if m["term"] != "betterment" {
		t.Errorf("Expected term echoed back, got %v", m["term"])
	}
	explanation, _ := m["explanation"].(string)
	if explanation == "" {
		t.Error("Expected a non-empty explanation")
	}
}

func TestExplainClaimsProcess(t *testing.T) {
	tool := NewExplainClaimsProcessTool()
	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"claimType": "windscreen",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	m := result.(map[string]interface{})
	if m["claimType"] != "windscreen" {
		t.Errorf("Expected windscreen claim type, got %v", m["claimType"])
	}
	if !strings.Contains(m["requirements"].(string), "Police report") {
		t.Errorf("Expected document requirements, got %v", m["requirements"])
	}
}

func TestLookupPreviousPolicy(t *testing.T) {
	tool := NewLookupPreviousPolicyTool()

	t.Run("known plate normalized", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"registrationNumber": "wxy 1234",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["found"] != true {
			t.Fatal("Expected policy for WXY1234")
		}
		policy := m["policy"].(previousPolicy)
		if policy.PolicyNumber != "POL2024-001234" {
			t.Errorf("Expected POL2024-001234, got %s", policy.PolicyNumber)
		}
	})

	t.Run("unknown plate", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"registrationNumber": "ZZZ9999",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["found"] != false {
			t.Error("Expected no policy for unknown plate")
		}
	})
}

func TestValidateRegistrationNumber(t *testing.T) {
	tool := NewValidateRegistrationNumberTool()

	t.Run("valid with history", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"registrationNumber": "WXY1234",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["isValid"] != true {
			t.Error("Expected valid format")
		}
		if m["hasHistory"] != true {
			t.Error("Expected history for WXY1234")
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{
			"registrationNumber": "12345678",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		m := result.(map[string]interface{})
		if m["isValid"] != false {
			t.Error("Expected invalid format")
		}
	})
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()
	if len(registry.List()) != 14 {
		t.Fatalf("Expected 14 registered tools, got %d", len(registry.List()))
	}

	for _, name := range []string{
		"get_insurance_quotes", "search_insurance_knowledge",
		"check_renewal_eligibility", "lookup_previous_policy",
	} {
		if _, ok := registry.Get(name); !ok {
			t.Errorf("Expected tool %s to be registered", name)
		}
	}
}
