package model

// Insurer is an insurance partner offered for renewal.
type Insurer struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	LogoURL     string   `json:"logoUrl"`
	Type        string   `json:"type"` // "takaful" or "conventional"
	Rating      float64  `json:"rating"`
	Features    []string `json:"features"`
}

// Quote is a priced renewal offer from one insurer.
type Quote struct {
	InsurerID      string   `json:"insurerId"`
	Insurer        string   `json:"insurer"`
	LogoURL        string   `json:"logoUrl"`
	BasePremium    float64  `json:"basePremium"`
	NCDDiscount    float64  `json:"ncdDiscount"`
	FinalPremium   float64  `json:"finalPremium"`
	SumInsured     float64  `json:"sumInsured"`
	CoverType      string   `json:"coverType"`
	NCDPercent     float64  `json:"ncdPercent"`
	Tag            string   `json:"tag,omitempty"` // CHEAPEST, BALANCED, PREMIUM
	Benefits       []string `json:"benefits"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// AddOn is an optional coverage extension.
type AddOn struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ShortName      string   `json:"shortName,omitempty"`
	Price          float64  `json:"price"`
	Description    string   `json:"description"`
	Benefits       []string `json:"benefits"`
	RecommendedFor string   `json:"recommendedFor,omitempty"`
}

// RoadTaxOption is a road tax renewal choice.
type RoadTaxOption struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	DeliveryFee float64  `json:"deliveryFee,omitempty"`
	Features    []string `json:"features"`
}

// PaymentMethod is an accepted way to pay.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VehicleProfile is the looked-up vehicle and policy record.
type VehicleProfile struct {
	PlateNumber    string  `json:"plateNumber"`
	Make           string  `json:"make"`
	Model          string  `json:"model"`
	Variant        string  `json:"variant,omitempty"`
	Year           int     `json:"year"`
	EngineCC       int     `json:"engineCC"`
	MarketValueMin float64 `json:"marketValueMin"`
	MarketValueMax float64 `json:"marketValueMax"`
	CoverType      string  `json:"coverType"`
	CurrentInsurer string  `json:"currentInsurer"`
	NCDPercent     float64 `json:"ncdPercent"`
	OwnerID        string  `json:"ownerId"`
	Address        string  `json:"address"`
}
