package catalog

import (
	"fmt"
	"regexp"

	"insurance-renewal-assistant/internal/model"
)

var nricShapeRegex = regexp.MustCompile(`^\d{12}$`)

// FormatOwnerID formats a 12-digit NRIC as YYMMDD-PB-####.
// Non-NRIC owner IDs are returned unchanged.
func FormatOwnerID(ownerID string) string {
	if !nricShapeRegex.MatchString(ownerID) {
		return ownerID
	}
	return fmt.Sprintf("%s-%s-%s", ownerID[0:6], ownerID[6:8], ownerID[8:])
}

// VehicleProfile returns the vehicle and policy record for a plate + owner ID.
// Mock data; a real integration would call the JPJ / insurer lookup here.
func VehicleProfile(plateNumber, ownerID string) model.VehicleProfile {
	return model.VehicleProfile{
		PlateNumber:    plateNumber,
		OwnerID:        FormatOwnerID(ownerID),
		Make:           "Perodua",
		Model:          "Myvi 1.5L",
		Year:           2019,
		EngineCC:       1496,
		MarketValueMin: 51000,
		MarketValueMax: 68000,
		CoverType:      "Comprehensive (1st Party)",
		CurrentInsurer: "Takaful Ikhlas",
		NCDPercent:     20,
		Address:        "No. 12, Jalan Setia Prima, Setia Alam, 47000 Shah Alam, Selangor",
	}
}
