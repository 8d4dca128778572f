// Package conversation holds the renewal flow state machine, the intent
// classifier, and the flow guard predicates. State is round-tripped through
// the caller every turn; nothing here persists between requests.
package conversation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/internal/nlp"
)

// Step is a stage of the renewal journey.
type Step string

const (
	StepStart            Step = "start"
	StepVehicleLookup    Step = "vehicle_lookup"
	StepVehicleConfirmed Step = "vehicle_confirmed"
	StepQuotes           Step = "quotes"
	StepAddOns           Step = "addons"
	StepRoadTax          Step = "roadtax"
	StepPersonalDetails  Step = "personal_details"
	StepOTP              Step = "otp"
	StepPayment          Step = "payment"
	StepSuccess          Step = "success"
)

// QuoteValidity is how long a selected quote's pricing stays valid.
const QuoteValidity = 30 * time.Minute

// PendingActionConfirmQuoteChange guards the destructive insurer-switch reset.
const PendingActionConfirmQuoteChange = "confirm_quote_change"

// nowFunc is swapped in tests to control quote expiry.
var nowFunc = time.Now

// SelectedQuote is the quote the user committed to.
type SelectedQuote struct {
	Insurer    string  `json:"insurer"`
	PriceAfter float64 `json:"priceAfter"`
}

// SelectedAddOn is one chosen add-on with its locked price.
type SelectedAddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SelectedRoadTax is the chosen road tax option.
type SelectedRoadTax struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PersonalDetails tracks presence only; raw contact values never enter state.
type PersonalDetails struct {
	Email   bool `json:"email"`
	Phone   bool `json:"phone"`
	Address bool `json:"address"`
}

// Complete reports whether all three contact fields were collected.
func (p *PersonalDetails) Complete() bool {
	return p != nil && p.Email && p.Phone && p.Address
}

// PendingAction is a one-turn confirmation gate for a destructive transition.
type PendingAction struct {
	Type       string `json:"type"`
	NewInsurer string `json:"newInsurer,omitempty"`
}

// State is the conversation aggregate for one renewal session.
// The owner ID is carried on the wire as nricNumber for frontend
// compatibility even when it holds a non-NRIC document.
type State struct {
	Step             Step                  `json:"step"`
	VehicleInfo      *model.VehicleProfile `json:"vehicleInfo"`
	PlateNumber      string                `json:"plateNumber"`
	OwnerID          string                `json:"nricNumber"`
	OwnerIDType      string                `json:"ownerIdType"`
	SelectedQuote    *SelectedQuote        `json:"selectedQuote"`
	QuoteGeneratedAt int64                 `json:"quoteGeneratedAt,omitempty"`
	QuoteValidUntil  int64                 `json:"quoteValidUntil,omitempty"`
	SelectedAddOns   []SelectedAddOn       `json:"selectedAddOns"`
	AddOnsConfirmed  bool                  `json:"addOnsConfirmed"`
	SelectedRoadTax  *SelectedRoadTax      `json:"selectedRoadTax"`
	PersonalDetails  *PersonalDetails      `json:"personalDetails"`
	OTPVerified      bool                  `json:"otpVerified"`
	PaymentMethod    string                `json:"paymentMethod,omitempty"`
	PendingAction    *PendingAction        `json:"pendingAction,omitempty"`
}

// Snapshot is the wire form returned to the caller, with the two
// computed quote-validity fields the frontend renders.
type Snapshot struct {
	*State
	QuoteExpired       bool `json:"quoteExpired"`
	QuoteTimeRemaining int  `json:"quoteTimeRemaining"`
}

// New returns a fresh session state at the start step.
func New() *State {
	return &State{
		Step:           StepStart,
		SelectedAddOns: []SelectedAddOn{},
	}
}

// FromJSON hydrates state from the caller's serialized blob.
// Returns nil on absent or malformed input so the caller can fall back
// to reconstructing from message history.
func FromJSON(raw json.RawMessage) *State {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	state := New()
	if err := json.Unmarshal(raw, state); err != nil {
		return nil
	}

	if state.Step == "" {
		state.Step = StepStart
	}
	if state.SelectedAddOns == nil {
		state.SelectedAddOns = []SelectedAddOn{}
	}
	// Older clients sent the owner ID without its type.
	if state.OwnerID != "" && state.OwnerIDType == "" {
		if twelveDigitsRegex.MatchString(state.OwnerID) {
			state.OwnerIDType = nlp.OwnerIDTypeNRIC
		} else {
			state.OwnerIDType = nlp.OwnerIDTypeOtherID
		}
	}

	return state
}

var twelveDigitsRegex = regexp.MustCompile(`^\d{12}$`)

var (
	historyQuestionRegex  = regexp.MustCompile(`(?i)\?|tell me about|what about|how about|do i need|should i|explain|which one|recommend`)
	historyDilemmaRegex   = regexp.MustCompile(`(?i)can'?t|cannot|couldn'?t|between .+ and|torn between|stuck between|not sure|help me (choose|decide)`)
	historySelectionRegex = regexp.MustCompile(`(?i)\b(go with|choose|select|pick|i'll take|i will take|confirm)\b`)
)

// FromMessages reconstructs state by scanning the transcript.
// Lower-fidelity fallback used only when no serialized state was round-tripped.
func FromMessages(messages []model.ChatMessage) *State {
	state := New()

	for _, msg := range messages {
		if msg.Role != model.RoleUser {
			continue
		}

		extracted := nlp.ExtractVehicleInfo(msg.Content)
		if state.PlateNumber == "" && extracted.RegistrationNumber != "" {
			state.PlateNumber = extracted.RegistrationNumber
		}
		if state.OwnerID == "" && extracted.OwnerID != "" {
			state.OwnerID = extracted.OwnerID
			state.OwnerIDType = extracted.OwnerIDType
		}
	}

	// Quote selection needs an explicit confirmation verb. "want" + insurer
	// is interest, not a selection.
	if state.SelectedQuote == nil {
		for _, msg := range messages {
			if msg.Role != model.RoleUser {
				continue
			}
			content := strings.ToLower(msg.Content)

			if historyQuestionRegex.MatchString(content) {
				continue
			}
			if historyDilemmaRegex.MatchString(content) {
				continue
			}
			if !historySelectionRegex.MatchString(content) {
				continue
			}

			switch {
			case strings.Contains(content, "takaful") || strings.Contains(content, "ikhlas"):
				state.SelectedQuote = &SelectedQuote{Insurer: "Takaful Ikhlas", PriceAfter: 796}
			case strings.Contains(content, "etiqa"):
				state.SelectedQuote = &SelectedQuote{Insurer: "Etiqa Insurance", PriceAfter: 872}
			case strings.Contains(content, "allianz"):
				state.SelectedQuote = &SelectedQuote{Insurer: "Allianz Insurance", PriceAfter: 920}
			}
		}
	}

	state.Step = state.DeriveStep()
	return state
}

// DeriveStep recomputes the step from accumulated facts. This waterfall is
// the ground truth; the cached Step field must never diverge from it outside
// the single turn where an intent is being applied.
func (s *State) DeriveStep() Step {
	switch {
	case s.PaymentMethod != "":
		return StepSuccess
	case s.OTPVerified:
		return StepPayment
	case s.PersonalDetails.Complete():
		return StepOTP
	case s.SelectedRoadTax != nil:
		return StepPersonalDetails
	case s.AddOnsConfirmed:
		// Pre-selected add-ons alone never advance; confirmation gates this.
		return StepRoadTax
	case s.SelectedQuote != nil:
		return StepAddOns
	case s.PlateNumber != "" && s.OwnerID != "":
		return StepQuotes
	case s.PlateNumber != "" || s.OwnerID != "":
		return StepVehicleLookup
	default:
		return StepStart
	}
}

// HasCompleteVehicleIdentification reports whether both identifiers are set.
func (s *State) HasCompleteVehicleIdentification() bool {
	return s.PlateNumber != "" && s.OwnerID != ""
}

// MissingIdentification lists which identifiers are still needed.
func (s *State) MissingIdentification() []string {
	var missing []string
	if s.PlateNumber == "" {
		missing = append(missing, "plate_number")
	}
	if s.OwnerID == "" {
		missing = append(missing, "nric")
	}
	return missing
}

// IsQuoteExpired reports whether the selected quote's window has passed.
// No quote means nothing to expire.
func (s *State) IsQuoteExpired() bool {
	if s.QuoteValidUntil == 0 {
		return false
	}
	return nowFunc().UnixMilli() > s.QuoteValidUntil
}

// QuoteTimeRemaining returns whole minutes until expiry, floored at zero.
func (s *State) QuoteTimeRemaining() int {
	if s.QuoteValidUntil == 0 {
		return 0
	}
	remaining := s.QuoteValidUntil - nowFunc().UnixMilli()
	if remaining <= 0 {
		return 0
	}
	return int((remaining + 59999) / 60000)
}

// SetQuoteTimestamps starts the quote validity window.
func (s *State) SetQuoteTimestamps() *State {
	now := nowFunc().UnixMilli()
	s.QuoteGeneratedAt = now
	s.QuoteValidUntil = now + QuoteValidity.Milliseconds()
	return s
}

// RefreshQuoteTimestamps renews the validity window, keeping selections.
func (s *State) RefreshQuoteTimestamps() *State {
	return s.SetQuoteTimestamps()
}

// SelectQuote commits a quote, starts its validity window, and moves to add-ons.
func (s *State) SelectQuote(quote SelectedQuote) *State {
	s.SelectedQuote = &quote
	s.SetQuoteTimestamps()
	s.Step = StepAddOns
	s.PendingAction = nil
	return s
}

// SelectAddOns confirms the add-on set and moves to road tax.
func (s *State) SelectAddOns(addOns []SelectedAddOn) *State {
	if addOns == nil {
		addOns = []SelectedAddOn{}
	}
	s.SelectedAddOns = addOns
	s.AddOnsConfirmed = true
	s.Step = StepRoadTax
	s.PendingAction = nil
	return s
}

// PreSelectAddOns records add-ons mentioned in chat without confirming them.
// The step does not advance until an explicit confirmation.
func (s *State) PreSelectAddOns(addOns []SelectedAddOn) *State {
	if addOns == nil {
		addOns = []SelectedAddOn{}
	}
	s.SelectedAddOns = addOns
	s.AddOnsConfirmed = false
	s.PendingAction = nil
	return s
}

// SelectRoadTax commits a road tax option and moves to personal details.
func (s *State) SelectRoadTax(roadTax SelectedRoadTax) *State {
	s.SelectedRoadTax = &roadTax
	s.Step = StepPersonalDetails
	s.PendingAction = nil
	return s
}

// ResetToQuotes discards all selections and returns to the quotes step.
// Vehicle identification is kept. Only called after the pending-action
// double confirmation because it destroys user progress.
func (s *State) ResetToQuotes() *State {
	s.SelectedQuote = nil
	s.QuoteGeneratedAt = 0
	s.QuoteValidUntil = 0
	s.SelectedAddOns = []SelectedAddOn{}
	s.AddOnsConfirmed = false
	s.SelectedRoadTax = nil
	s.PersonalDetails = nil
	s.OTPVerified = false
	s.PaymentMethod = ""
	s.PendingAction = nil
	s.Step = StepQuotes
	return s
}

// SetPersonalDetails records contact presence and moves to OTP.
func (s *State) SetPersonalDetails(details PersonalDetails) *State {
	s.PersonalDetails = &details
	s.Step = StepOTP
	s.PendingAction = nil
	return s
}

// VerifyOTP marks the session verified and moves to payment.
func (s *State) VerifyOTP() *State {
	s.OTPVerified = true
	s.Step = StepPayment
	s.PendingAction = nil
	return s
}

// SetPaymentMethod records the payment method and completes the flow.
func (s *State) SetPaymentMethod(method string) *State {
	s.PaymentMethod = method
	s.Step = StepSuccess
	s.PendingAction = nil
	return s
}

// SetPendingAction arms the one-turn confirmation gate.
func (s *State) SetPendingAction(action *PendingAction) *State {
	s.PendingAction = action
	return s
}

// Snapshot returns the wire form sent back to the caller.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		State:              s,
		QuoteExpired:       s.IsQuoteExpired(),
		QuoteTimeRemaining: s.QuoteTimeRemaining(),
	}
}

var ownerIDTypeLabels = map[string]string{
	nlp.OwnerIDTypeNRIC:       "NRIC",
	nlp.OwnerIDTypeForeignID:  "Foreign ID",
	nlp.OwnerIDTypeArmyIC:     "Army IC",
	nlp.OwnerIDTypePoliceIC:   "Police IC",
	nlp.OwnerIDTypeCompanyReg: "Company Reg",
	nlp.OwnerIDTypeOtherID:    "Owner ID",
}

// AIContext renders the state as plain lines for the system prompt.
// The owner ID is masked; only the leading digits stay visible.
func (s *State) AIContext() string {
	parts := []string{fmt.Sprintf("Current Step: %s", s.Step)}

	if s.PlateNumber != "" {
		parts = append(parts, fmt.Sprintf("Vehicle Plate: %s", s.PlateNumber))
	}
	if s.OwnerID != "" {
		label, ok := ownerIDTypeLabels[s.OwnerIDType]
		if !ok {
			label = "Owner ID"
		}
		visible := len(s.OwnerID)
		if visible > 6 {
			visible = 6
		}
		maskLen := len(s.OwnerID) - visible
		if maskLen < 4 {
			maskLen = 4
		}
		parts = append(parts, fmt.Sprintf("%s: %s%s", label, s.OwnerID[:visible], strings.Repeat("*", maskLen)))
	}
	if s.VehicleInfo != nil {
		parts = append(parts, fmt.Sprintf("Vehicle: %s %s %d", s.VehicleInfo.Make, s.VehicleInfo.Model, s.VehicleInfo.Year))
	}
	if s.SelectedQuote != nil {
		parts = append(parts, fmt.Sprintf("Selected Quote: %s - RM%g", s.SelectedQuote.Insurer, s.SelectedQuote.PriceAfter))
		if s.IsQuoteExpired() {
			parts = append(parts, "⚠️ QUOTE EXPIRED - needs refresh before payment")
		} else {
			mins := s.QuoteTimeRemaining()
			unit := "minutes"
			if mins == 1 {
				unit = "minute"
			}
			parts = append(parts, fmt.Sprintf("Quote valid for: %d %s", mins, unit))
		}
	}
	if len(s.SelectedAddOns) > 0 {
		status := "Pre-selected (waiting for confirmation)"
		if s.AddOnsConfirmed {
			status = "Confirmed"
		}
		names := make([]string, len(s.SelectedAddOns))
		for i, a := range s.SelectedAddOns {
			names[i] = a.Name
		}
		parts = append(parts, fmt.Sprintf("Add-ons (%s): %s", status, strings.Join(names, ", ")))
	}
	if s.SelectedRoadTax != nil {
		parts = append(parts, fmt.Sprintf("Road Tax: %s", s.SelectedRoadTax.Name))
	}
	if s.PersonalDetails != nil {
		collected := 0
		for _, present := range []bool{s.PersonalDetails.Email, s.PersonalDetails.Phone, s.PersonalDetails.Address} {
			if present {
				collected++
			}
		}
		parts = append(parts, fmt.Sprintf("Personal details collected: %d/3", collected))
	}

	return strings.Join(parts, "\n")
}
