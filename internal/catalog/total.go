package catalog

// OrderTotal is the price breakdown for a renewal order.
type OrderTotal struct {
	Insurance float64 `json:"insurance"`
	AddOns    float64 `json:"addOns"`
	RoadTax   float64 `json:"roadTax"`
	Total     float64 `json:"total"`
}

// CalculateTotal computes the order total from a premium, add-on IDs,
// and a road tax option ID. Unknown road tax IDs count zero.
func CalculateTotal(insurancePremium float64, addOnIDs []string, roadTaxID string) OrderTotal {
	addOnsTotal := AddOnsTotal(addOnIDs)

	var roadTaxPrice float64
	if opt, ok := RoadTaxByID(roadTaxID); ok {
		roadTaxPrice = opt.Price
	}

	return OrderTotal{
		Insurance: insurancePremium,
		AddOns:    addOnsTotal,
		RoadTax:   roadTaxPrice,
		Total:     insurancePremium + addOnsTotal + roadTaxPrice,
	}
}
