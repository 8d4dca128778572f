package nlp

import "testing"

func TestExtractVehicleInfo(t *testing.T) {
	t.Run("foreign passport ID", func(t *testing.T) {
		info := ExtractVehicleInfo("plate WXY1234, passport A1234567")
		if info.RegistrationNumber != "WXY1234" {
			t.Errorf("plate = %q, want WXY1234", info.RegistrationNumber)
		}
		if info.OwnerID != "A1234567" {
			t.Errorf("ownerId = %q, want A1234567", info.OwnerID)
		}
		if info.OwnerIDType != OwnerIDTypeForeignID {
			t.Errorf("ownerIdType = %q, want foreign_id", info.OwnerIDType)
		}
	})

	t.Run("company registration", func(t *testing.T) {
		info := ExtractVehicleInfo("plate VEV8899 company reg SSM 202301234567")
		if info.RegistrationNumber != "VEV8899" {
			t.Errorf("plate = %q, want VEV8899", info.RegistrationNumber)
		}
		if info.OwnerID != "202301234567" {
			t.Errorf("ownerId = %q, want 202301234567", info.OwnerID)
		}
		if info.OwnerIDType != OwnerIDTypeCompanyReg {
			t.Errorf("ownerIdType = %q, want company_reg", info.OwnerIDType)
		}
	})

	t.Run("plate and NRIC in one message", func(t *testing.T) {
		info := ExtractVehicleInfo("jrt 9289 951018145405")
		if info.RegistrationNumber != "JRT9289" {
			t.Errorf("plate = %q, want JRT9289", info.RegistrationNumber)
		}
		if info.OwnerID != "951018145405" || info.OwnerIDType != OwnerIDTypeNRIC {
			t.Errorf("ownerId = %q (%s), want 951018145405 (nric)", info.OwnerID, info.OwnerIDType)
		}
	})

	t.Run("dashed NRIC", func(t *testing.T) {
		info := ExtractVehicleInfo("plate JRT9289, ic 951018-14-5405")
		if info.RegistrationNumber != "JRT9289" {
			t.Errorf("plate = %q, want JRT9289", info.RegistrationNumber)
		}
		if info.OwnerID != "951018145405" || info.OwnerIDType != OwnerIDTypeNRIC {
			t.Errorf("ownerId = %q (%s), want 951018145405 (nric)", info.OwnerID, info.OwnerIDType)
		}
	})

	t.Run("plain 12 digits with imperfect date still accepted", func(t *testing.T) {
		info := ExtractVehicleInfo("951810145405")
		if info.RegistrationNumber != "" {
			t.Errorf("plate = %q, want empty", info.RegistrationNumber)
		}
		if info.OwnerID != "951810145405" || info.OwnerIDType != OwnerIDTypeNRIC {
			t.Errorf("ownerId = %q (%s), want 951810145405 (nric)", info.OwnerID, info.OwnerIDType)
		}
	})

	t.Run("plain renewal request has no plate", func(t *testing.T) {
		info := ExtractVehicleInfo("i want to renew my car insurance")
		if info.RegistrationNumber != "" {
			t.Errorf("plate = %q, want empty", info.RegistrationNumber)
		}
	})
}

func TestExtractPersonalInfo(t *testing.T) {
	t.Run("email phone and address in one message", func(t *testing.T) {
		info := ExtractPersonalInfo("jasonyapkarjuen@gmail.com 0126420803 3a, elitis maya, valencia, sungai buloh, 47000 selangor")
		if info.Email != "jasonyapkarjuen@gmail.com" {
			t.Errorf("email = %q", info.Email)
		}
		if info.Phone != "0126420803" {
			t.Errorf("phone = %q", info.Phone)
		}
		if info.Address != "3a, elitis maya, valencia, sungai buloh, 47000 selangor" {
			t.Errorf("address = %q", info.Address)
		}
	})

	t.Run("short non-address text yields no address", func(t *testing.T) {
		info := ExtractPersonalInfo("deliver to me please")
		if info.Address != "" {
			t.Errorf("address = %q, want empty", info.Address)
		}
	})

	t.Run("question about address yields no address", func(t *testing.T) {
		info := ExtractPersonalInfo("can you deliver to jalan setia prima?")
		if info.Address != "" {
			t.Errorf("address = %q, want empty", info.Address)
		}
	})

	t.Run("street keyword address", func(t *testing.T) {
		info := ExtractPersonalInfo("no. 12, jalan setia prima, setia alam, 40170 shah alam")
		if info.Address == "" {
			t.Error("expected street address to be extracted")
		}
	})
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain mobile", "call me at 012-642 0803", "0126420803"},
		{"country code", "+60 12-642 0803", "0126420803"},
		{"bare digits", "0126420803", "0126420803"},
		{"not a phone", "my NCD is 20", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPhone(tt.in); got != tt.want {
				t.Errorf("ExtractPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractOwnerIdentification(t *testing.T) {
	t.Run("army ic label", func(t *testing.T) {
		id, ok := ExtractOwnerIdentification("army ic T12345")
		if !ok || id.Type != OwnerIDTypeArmyIC {
			t.Errorf("got %+v ok=%v, want army_ic", id, ok)
		}
	})

	t.Run("long sentence without context yields nothing", func(t *testing.T) {
		_, ok := ExtractOwnerIdentification("i would like to know more about the windscreen protection option")
		if ok {
			t.Error("expected no owner ID in plain question text")
		}
	})
}
