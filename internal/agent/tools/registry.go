package tools

import (
	"insurance-renewal-assistant/internal/agent"
)

// NewRegistry returns a registry with every renewal assistant tool registered.
func NewRegistry() *agent.ToolRegistry {
	registry := agent.NewToolRegistry()
	registry.Register(NewGetInsuranceQuotesTool())
	registry.Register(NewGetAvailableAddOnsTool())
	registry.Register(NewGetRoadTaxOptionsTool())
	registry.Register(NewCalculateTotalPremiumTool())
	registry.Register(NewSearchInsuranceKnowledgeTool())
	registry.Register(NewExplainInsuranceTermTool())
	registry.Register(NewCompareCoverageTypesTool())
	registry.Register(NewExplainClaimsProcessTool())
	registry.Register(NewCalculateNCDEntitlementTool())
	registry.Register(NewRecommendCoverageTool())
	registry.Register(NewEstimatePremiumSavingsTool())
	registry.Register(NewCheckRenewalEligibilityTool())
	registry.Register(NewLookupPreviousPolicyTool())
	registry.Register(NewValidateRegistrationNumberTool())
	return registry
}
