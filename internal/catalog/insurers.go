package catalog

import (
	"strings"

	"insurance-renewal-assistant/internal/model"
)

// Insurer IDs.
const (
	InsurerTakafulIkhlas = "takaful-ikhlas"
	InsurerEtiqa         = "etiqa"
	InsurerAllianz       = "allianz"
)

// Insurers returns the insurance partners offered for renewal.
func Insurers() []model.Insurer {
	return []model.Insurer{
		{
			ID:          InsurerTakafulIkhlas,
			Name:        "Takaful Ikhlas",
			DisplayName: "Takaful Ikhlas",
			LogoURL:     "/partners/takaful.svg",
			Type:        "takaful",
			Rating:      4.5,
			Features: []string{
				"Shariah-compliant (Islamic insurance)",
				"Fast claim payout",
				"Great value for money",
			},
		},
		{
			ID:          InsurerEtiqa,
			Name:        "Etiqa Insurance",
			DisplayName: "Etiqa Insurance",
			LogoURL:     "/partners/etiqa.svg",
			Type:        "conventional",
			Rating:      4.3,
			Features: []string{
				"Free towing service up to 200km",
				"Good customer service",
				"Well-established local insurer",
			},
		},
		{
			ID:          InsurerAllianz,
			Name:        "Allianz Insurance",
			DisplayName: "Allianz Insurance",
			LogoURL:     "/partners/allianz.svg",
			Type:        "conventional",
			Rating:      4.7,
			Features: []string{
				"Premium service quality",
				"Excellent claims network",
				"Best customer service ratings",
			},
		},
	}
}

// InsurerByID returns an insurer by its ID, or false when unknown.
func InsurerByID(id string) (model.Insurer, bool) {
	for _, ins := range Insurers() {
		if ins.ID == id {
			return ins, true
		}
	}
	return model.Insurer{}, false
}

// QuoteParams tune the mock quote generation. Zero values use the demo vehicle.
type QuoteParams struct {
	VehicleValue float64
	NCDPercent   float64
	EngineCC     int
}

// Quotes returns renewal quotes sorted cheapest first.
// Pricing is mock data; a real integration would call insurer APIs here.
func Quotes(params QuoteParams) []model.Quote {
	ncd := params.NCDPercent
	if ncd == 0 {
		ncd = 20
	}

	takaful, _ := InsurerByID(InsurerTakafulIkhlas)
	etiqa, _ := InsurerByID(InsurerEtiqa)
	allianz, _ := InsurerByID(InsurerAllianz)

	quotes := []model.Quote{
		{
			InsurerID:    takaful.ID,
			Insurer:      takaful.DisplayName,
			LogoURL:      takaful.LogoURL,
			BasePremium:  995,
			NCDDiscount:  199,
			FinalPremium: 796,
			SumInsured:   34000,
			CoverType:    "Comprehensive",
			NCDPercent:   ncd,
			Tag:          "CHEAPEST",
			Benefits:     append([]string{"CHEAPEST option"}, takaful.Features...),
			Recommendation: "Best for budget-conscious drivers seeking Shariah-compliant coverage",
		},
		{
			InsurerID:    etiqa.ID,
			Insurer:      etiqa.DisplayName,
			LogoURL:      etiqa.LogoURL,
			BasePremium:  1090,
			NCDDiscount:  218,
			FinalPremium: 872,
			SumInsured:   35000,
			CoverType:    "Comprehensive",
			NCDPercent:   ncd,
			Tag:          "BALANCED",
			Benefits:     append([]string{"Balanced price and coverage"}, etiqa.Features...),
			Recommendation: "Best for drivers who travel frequently and want roadside assistance",
		},
		{
			InsurerID:    allianz.ID,
			Insurer:      allianz.DisplayName,
			LogoURL:      allianz.LogoURL,
			BasePremium:  1150,
			NCDDiscount:  230,
			FinalPremium: 920,
			SumInsured:   36000,
			CoverType:    "Comprehensive",
			NCDPercent:   ncd,
			Tag:          "PREMIUM",
			Benefits:     append([]string{"Highest sum insured (RM36,000)"}, allianz.Features...),
			Recommendation: "Best for drivers who prioritize premium service and maximum coverage",
		},
	}

	// Already cheapest first; kept explicit so reordering the literals is safe.
	for i := 0; i < len(quotes); i++ {
		for j := i + 1; j < len(quotes); j++ {
			if quotes[j].FinalPremium < quotes[i].FinalPremium {
				quotes[i], quotes[j] = quotes[j], quotes[i]
			}
		}
	}

	return quotes
}

// FindQuoteByInsurer resolves a quote from a free-form insurer mention.
// Tolerates common typos (etika, alianz).
func FindQuoteByInsurer(name string) (model.Quote, bool) {
	normalized := strings.ToLower(name)

	var id string
	switch {
	case strings.Contains(normalized, "takaful") || strings.Contains(normalized, "ikhlas"):
		id = InsurerTakafulIkhlas
	case strings.Contains(normalized, "etiqa") || strings.Contains(normalized, "etika"):
		id = InsurerEtiqa
	case strings.Contains(normalized, "allianz") || strings.Contains(normalized, "alianz"):
		id = InsurerAllianz
	default:
		return model.Quote{}, false
	}

	for _, q := range Quotes(QuoteParams{}) {
		if q.InsurerID == id {
			return q, true
		}
	}
	return model.Quote{}, false
}
