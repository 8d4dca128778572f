package catalog

import "insurance-renewal-assistant/internal/model"

// Road tax option IDs.
const (
	RoadTax6MonthDigital  = "6month-digital"
	RoadTax6MonthDeliver  = "6month-deliver"
	RoadTax12MonthDigital = "12month-digital"
	RoadTax12MonthDeliver = "12month-deliver"
	RoadTaxNone           = "none"
)

// RoadTaxOptions returns the road tax renewal choices.
// Prices include the delivery fee where applicable.
func RoadTaxOptions() []model.RoadTaxOption {
	return []model.RoadTaxOption{
		{
			ID:       RoadTax6MonthDigital,
			Name:     "6-Month (Digital Only)",
			Price:    45,
			Features: []string{"Digital road tax MYJPJ (Instant)"},
		},
		{
			ID:          RoadTax6MonthDeliver,
			Name:        "6-Month (Deliver to Me)",
			Price:       55,
			DeliveryFee: 10,
			Features: []string{
				"Digital road tax MYJPJ (Instant)",
				"Physical road tax sticker (3-5 business days)",
			},
		},
		{
			ID:       RoadTax12MonthDigital,
			Name:     "12-Month (Digital Only)",
			Price:    90,
			Features: []string{"Digital road tax MYJPJ (Instant)"},
		},
		{
			ID:          RoadTax12MonthDeliver,
			Name:        "12-Month (Deliver to Me)",
			Price:       100,
			DeliveryFee: 10,
			Features: []string{
				"Digital road tax MYJPJ (Instant)",
				"Physical road tax sticker (3-5 business days)",
			},
		},
		{
			ID:       RoadTaxNone,
			Name:     "No Road Tax Renewal",
			Price:    0,
			Features: []string{"Insurance renewal only"},
		},
	}
}

// RoadTaxByID returns a road tax option by its ID, or false when unknown.
func RoadTaxByID(id string) (model.RoadTaxOption, bool) {
	for _, opt := range RoadTaxOptions() {
		if opt.ID == id {
			return opt, true
		}
	}
	return model.RoadTaxOption{}, false
}

// IsDeliveredRoadTax reports whether the option ships a physical sticker.
func IsDeliveredRoadTax(id string) bool {
	return id == RoadTax6MonthDeliver || id == RoadTax12MonthDeliver
}
