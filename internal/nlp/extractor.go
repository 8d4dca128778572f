// Package nlp extracts structured renewal fields from free-text chat messages.
// Extractors never fail: a miss returns the zero value.
package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// OwnerIDType classifies the identity document used for vehicle ownership.
const (
	OwnerIDTypeNRIC       = "nric"
	OwnerIDTypeForeignID  = "foreign_id"
	OwnerIDTypeArmyIC     = "army_ic"
	OwnerIDTypePoliceIC   = "police_ic"
	OwnerIDTypeCompanyReg = "company_reg"
	OwnerIDTypeOtherID    = "other_id"
)

// OwnerID is an extracted owner identification with its classified type.
type OwnerID struct {
	Value string
	Type  string
}

// PersonalInfo holds contact fields pulled from one message.
type PersonalInfo struct {
	Email   string
	Phone   string
	Address string
}

// VehicleInfo holds vehicle identity fields pulled from one message.
type VehicleInfo struct {
	RegistrationNumber string
	OwnerID            string
	OwnerIDType        string
}

var (
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	mobileRegex      = regexp.MustCompile(`\b0?1[0-9][\s\-]?[0-9]{3,4}[\s\-]?[0-9]{4}\b`)
	countryCodeRegex = regexp.MustCompile(`\+?60[\s\-]?1[0-9][\s\-]?[0-9]{3,4}[\s\-]?[0-9]{4}\b`)
	simplePhoneRegex = regexp.MustCompile(`\b(01[0-9]{8})\b`)

	plateRegex = regexp.MustCompile(`(?i)\b([A-Z]{1,3}\s?[0-9]{1,4}|[0-9]\s?[A-Z]{3}\s?[0-9]{1,4})\b`)

	nricRegex = regexp.MustCompile(`\b(\d{6})[-\s]?(\d{2})[-\s]?(\d{4})\b`)

	labeledIDRegex = regexp.MustCompile(`(?i)\b(passport|foreign id|foreign identification|army ic|police ic|company reg(?:istration)?|ssm|brn|roc|owner id|id number|id no)\b[\s:,-]*([a-zA-Z0-9\-/]{5,24})`)

	companyNumberRegex  = regexp.MustCompile(`\b(\d{8,12})\b`)
	companyContextRegex = regexp.MustCompile(`(?i)\b(ssm|brn|roc|company|sdn|berhad|bhd)\b`)

	alphaNumTokenRegex = regexp.MustCompile(`(?i)\b([A-Z]{1,4}[0-9]{4,12}|[0-9]{3,12}[A-Z]{1,4}[0-9]{1,8}|[A-Z0-9]{6,18})\b`)
	idContextRegex     = regexp.MustCompile(`(?i)\b(id|passport|owner|army|police|foreign|company)\b`)

	questionStartRegex = regexp.MustCompile(`(?i)^(how|what|when|where|why|which|can|do|does|is|are|will)\b`)
	nonDigitRegex      = regexp.MustCompile(`\D`)
	postcodeRegex      = regexp.MustCompile(`\b\d{5}\b`)

	houseStreetRegex = regexp.MustCompile(`(?i)\b(\d+[a-z]?\s*,?\s*(?:jalan|jln|lorong|taman|persiaran|lebuh)\s+[^@\n]+)`)
	noLotStreetRegex = regexp.MustCompile(`(?i)\b((?:no\.?|lot)\s*\d+[a-z]?\s*,?\s*(?:jalan|jln|lorong|taman|persiaran|lebuh)\s+[^@\n]+)`)
	bareStreetRegex  = regexp.MustCompile(`(?i)\b((?:jalan|jln|lorong|taman|persiaran|lebuh|kampung|kg)\s+[^@\n]+)`)

	trailingPunctRegex = regexp.MustCompile(`[.!?]+$`)
)

var streetIndicators = []string{"jalan", "jln", "lorong", "taman", "persiaran", "lebuh", "kampung", "kg"}

var stateNames = []string{
	"johor", "kedah", "kelantan", "melaka", "malacca", "negeri sembilan",
	"pahang", "perak", "perlis", "penang", "pulau pinang", "sabah",
	"sarawak", "selangor", "terengganu", "kuala lumpur", "labuan", "putrajaya",
}

var plateExclusions = map[string]bool{
	"NCD": true, "CC": true, "RM": true, "EMAIL": true, "NRIC": true, "IC": true,
}

var tokenBlocklist = map[string]bool{
	"NCD": true, "EMAIL": true, "PHONE": true, "ROADTAX": true,
	"QUOTE": true, "ADDON": true, "IC": true,
}

// ExtractEmail returns the first email address in text.
func ExtractEmail(text string) string {
	return emailRegex.FindString(text)
}

// ExtractPhone returns a Malaysian mobile number normalized to the
// leading-zero local form (01XXXXXXXX), or "" when none is found.
func ExtractPhone(text string) string {
	if m := mobileRegex.FindString(text); m != "" {
		phone := nonDigitRegex.ReplaceAllString(m, "")
		if len(phone) == 10 && strings.HasPrefix(phone, "01") {
			return phone
		}
	}

	if m := countryCodeRegex.FindString(text); m != "" {
		phone := nonDigitRegex.ReplaceAllString(m, "")
		if strings.HasPrefix(phone, "60") && len(phone) == 11 {
			return "0" + phone[2:]
		}
	}

	if m := simplePhoneRegex.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	return ""
}

// ExtractAddress returns a delivery address when the text carries a strong
// positive signal: a Malaysian street keyword, or a postcode together with
// at least two commas or a known state name. Question-shaped text never
// yields an address, and email/phone substrings are stripped first so their
// digits cannot collide with postcode matching.
func ExtractAddress(text string) string {
	if strings.Contains(text, "?") || questionStartRegex.MatchString(strings.TrimSpace(text)) {
		return ""
	}

	stripped := text
	if email := emailRegex.FindString(stripped); email != "" {
		stripped = strings.Replace(stripped, email, "", 1)
	}
	for _, re := range []*regexp.Regexp{countryCodeRegex, mobileRegex, simplePhoneRegex} {
		if m := re.FindString(stripped); m != "" {
			stripped = strings.Replace(stripped, m, "", 1)
		}
	}

	lower := strings.ToLower(stripped)

	hasStreet := false
	for _, indicator := range streetIndicators {
		if strings.Contains(lower, indicator) {
			hasStreet = true
			break
		}
	}

	if hasStreet {
		for _, re := range []*regexp.Regexp{noLotStreetRegex, houseStreetRegex, bareStreetRegex} {
			if m := re.FindStringSubmatch(stripped); m != nil {
				address := strings.TrimSpace(m[1])
				address = strings.TrimSpace(trailingPunctRegex.ReplaceAllString(address, ""))
				if len(address) > 10 {
					return address
				}
			}
		}
		return ""
	}

	// No street keyword: accept only postcode-anchored forms.
	if !postcodeRegex.MatchString(stripped) {
		return ""
	}

	hasState := false
	for _, state := range stateNames {
		if strings.Contains(lower, state) {
			hasState = true
			break
		}
	}

	if strings.Count(stripped, ",") >= 2 || hasState {
		address := strings.Trim(strings.TrimSpace(stripped), ",. ")
		address = strings.TrimSpace(trailingPunctRegex.ReplaceAllString(address, ""))
		if len(address) > 10 {
			return address
		}
	}

	return ""
}

// ExtractPlate returns a Malaysian vehicle registration number, uppercased
// with whitespace removed. Short matches and common abbreviations are
// rejected to avoid mistaking "NCD" or "RM" for a plate.
func ExtractPlate(text string) string {
	for _, match := range plateRegex.FindAllString(text, -1) {
		normalized := strings.ToUpper(strings.ReplaceAll(match, " ", ""))
		if len(normalized) < 4 {
			continue
		}
		if plateExclusions[normalized] {
			continue
		}
		return normalized
	}
	return ""
}

// ExtractOwnerIdentification classifies an owner ID by tiered matching.
// Tiers are checked in confidence order and only the first match fires:
//  1. 12-digit NRIC with a plausible embedded date
//  2. explicit label (passport, army ic, company reg, ...) + token
//  3. company registration number with company-context keyword
//  4. bare 12-digit run in a short or identity-context message
//  5. generic mixed alphanumeric token with identity context
func ExtractOwnerIdentification(text string) (OwnerID, bool) {
	if text == "" {
		return OwnerID{}, false
	}

	lower := strings.ToLower(text)
	tokenCount := len(strings.Fields(strings.TrimSpace(text)))

	// Tier 1: NRIC with plausible date.
	digits12, found := findTwelveDigits(text)
	if found && plausibleNRICDate(digits12) {
		return OwnerID{Value: digits12, Type: OwnerIDTypeNRIC}, true
	}

	// Tier 2: labeled identification.
	if m := labeledIDRegex.FindStringSubmatch(text); m != nil {
		label := strings.ToLower(m[1])
		value := strings.ToUpper(m[2])
		if len(value) >= 5 {
			idType := OwnerIDTypeOtherID
			switch {
			case strings.Contains(label, "passport") || strings.Contains(label, "foreign"):
				idType = OwnerIDTypeForeignID
			case strings.Contains(label, "army"):
				idType = OwnerIDTypeArmyIC
			case strings.Contains(label, "police"):
				idType = OwnerIDTypePoliceIC
			case strings.Contains(label, "company") || label == "ssm" || label == "brn" || label == "roc":
				idType = OwnerIDTypeCompanyReg
			}
			return OwnerID{Value: value, Type: idType}, true
		}
	}

	// Tier 3: company registration number near company context.
	if companyContextRegex.MatchString(lower) {
		if m := companyNumberRegex.FindStringSubmatch(text); m != nil {
			return OwnerID{Value: m[1], Type: OwnerIDTypeCompanyReg}, true
		}
	}

	// Tier 4: bare 12-digit run, NRIC-shaped but with an odd date.
	// Only in short messages or with identity context, and never when the
	// digits could plausibly be a local mobile number.
	if found && !looksLikeMobile(digits12) {
		if tokenCount <= 4 || idContextRegex.MatchString(lower) {
			return OwnerID{Value: digits12, Type: OwnerIDTypeNRIC}, true
		}
	}

	// Tier 5: generic alphanumeric ID token.
	if m := alphaNumTokenRegex.FindStringSubmatch(text); m != nil {
		token := strings.ToUpper(m[1])
		hasLetter := strings.IndexFunc(token, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
		hasDigit := strings.IndexFunc(token, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
		likelyIDContext := idContextRegex.MatchString(lower) || tokenCount <= 4
		if !tokenBlocklist[token] && hasLetter && hasDigit && likelyIDContext {
			return OwnerID{Value: token, Type: OwnerIDTypeOtherID}, true
		}
	}

	return OwnerID{}, false
}

// ExtractPersonalInfo pulls email, phone, and address from one message.
func ExtractPersonalInfo(text string) PersonalInfo {
	return PersonalInfo{
		Email:   ExtractEmail(text),
		Phone:   ExtractPhone(text),
		Address: ExtractAddress(text),
	}
}

// ExtractVehicleInfo pulls the registration number and owner ID from one message.
func ExtractVehicleInfo(text string) VehicleInfo {
	info := VehicleInfo{RegistrationNumber: ExtractPlate(text)}
	if ownerID, ok := ExtractOwnerIdentification(text); ok {
		info.OwnerID = ownerID.Value
		info.OwnerIDType = ownerID.Type
	}
	return info
}

// ContainsPersonalInfo reports whether the text carries any contact field.
func ContainsPersonalInfo(text string) bool {
	info := ExtractPersonalInfo(text)
	return info.Email != "" || info.Phone != "" || info.Address != ""
}

// findTwelveDigits locates a 12-digit run, tolerating the common
// YYMMDD-PB-#### separator form.
func findTwelveDigits(text string) (string, bool) {
	if m := nricRegex.FindStringSubmatch(text); m != nil {
		return m[1] + m[2] + m[3], true
	}
	return "", false
}

// plausibleNRICDate checks the embedded month (01-12) and day (01-31).
func plausibleNRICDate(digits string) bool {
	if len(digits) != 12 {
		return false
	}
	month, err := strconv.Atoi(digits[2:4])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	day, err := strconv.Atoi(digits[4:6])
	if err != nil || day < 1 || day > 31 {
		return false
	}
	return true
}

// looksLikeMobile guards tier 4 against phone numbers written with a
// country code and extra digits.
func looksLikeMobile(digits string) bool {
	return strings.HasPrefix(digits, "601") || strings.HasPrefix(digits, "01")
}
