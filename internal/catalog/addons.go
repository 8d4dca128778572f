package catalog

import "insurance-renewal-assistant/internal/model"

// Add-on IDs.
const (
	AddOnWindscreen = "windscreen"
	AddOnFlood      = "flood"
	AddOnEHailing   = "ehailing"
)

// AddOns returns the optional coverage enhancements.
func AddOns() []model.AddOn {
	return []model.AddOn{
		{
			ID:          AddOnWindscreen,
			Name:        "Windscreen Protection",
			ShortName:   "Windscreen",
			Description: "Cover windscreen damage without affecting NCD",
			Price:       100,
			Benefits: []string{
				"Covers windscreen cracks and chips",
				"No effect on your NCD if claimed",
				"Common issue on Malaysian highways",
			},
			RecommendedFor: "daily commuters, highway users",
		},
		{
			ID:          AddOnFlood,
			Name:        "Flood & Natural Disaster (Special Perils)",
			ShortName:   "Special Perils",
			Description: "Protection against flood, landslide, and natural disasters",
			Price:       50,
			Benefits: []string{
				"Covers flood damage to vehicle",
				"Includes landslide and storm damage",
				"Essential during monsoon season (Nov-Feb)",
			},
			RecommendedFor: "Selangor, Penang, Kelantan, Johor, flood-prone areas",
		},
		{
			ID:          AddOnEHailing,
			Name:        "E-hailing Cover",
			ShortName:   "E-hailing",
			Description: "Required coverage for Grab, inDrive, and other ride-sharing drivers",
			Price:       500,
			Benefits: []string{
				"Legal requirement for e-hailing drivers",
				"Covers passengers during commercial trips",
				"Protects your NCD for work-related claims",
			},
			RecommendedFor: "Grab drivers, inDrive drivers, ride-sharing drivers",
		},
	}
}

// AddOnByID returns an add-on by its ID, or false when unknown.
func AddOnByID(id string) (model.AddOn, bool) {
	for _, a := range AddOns() {
		if a.ID == id {
			return a, true
		}
	}
	return model.AddOn{}, false
}

// AddOnsTotal sums the prices of the given add-on IDs. Unknown IDs count zero.
func AddOnsTotal(ids []string) float64 {
	var total float64
	for _, id := range ids {
		if a, ok := AddOnByID(id); ok {
			total += a.Price
		}
	}
	return total
}
