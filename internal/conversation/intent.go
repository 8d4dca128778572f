package conversation

import (
	"regexp"
	"strings"

	"insurance-renewal-assistant/internal/catalog"
	"insurance-renewal-assistant/internal/nlp"
)

// Intent is the deterministic classification of a user message.
type Intent string

const (
	IntentStartRenewal     Intent = "start_renewal"
	IntentProvideInfo      Intent = "provide_info"
	IntentConfirm          Intent = "confirm"
	IntentSelectQuote      Intent = "select_quote"
	IntentChangeQuote      Intent = "change_quote"
	IntentConfirmChange    Intent = "confirm_change"
	IntentSelectAddOn      Intent = "select_addon"
	IntentSelectRoadTax    Intent = "select_roadtax"
	IntentAskQuestion      Intent = "ask_question"
	IntentSubmitDetails    Intent = "submit_details"
	IntentVerifyOTP        Intent = "verify_otp"
	IntentSelectPayment    Intent = "select_payment"
	IntentUnclearOrPlayful Intent = "unclear_or_playful"
	IntentOther            Intent = "other"
)

// ClassifiedIntent carries the matched intent with its confidence and
// any structured data pulled from the message.
type ClassifiedIntent struct {
	Intent     Intent
	Confidence float64
	Data       map[string]interface{}
}

var (
	pendingYesRegex = regexp.MustCompile(`(?i)^(yes|ya|ok|okay|confirm|sure|proceed|do it|change it|yes please)$`)
	pendingNoRegex  = regexp.MustCompile(`(?i)^(no|nope|cancel|don'?t|do not|never mind|nevermind|continue|keep current|stay)$`)

	changeVerbRegex    = regexp.MustCompile(`(?i)change|switch|go with|choose|pick|select|can i change|can i switch`)
	insurerNameRegex   = regexp.MustCompile(`(?i)takaful|ikhlas|etiqa|allianz`)
	otpRegex           = regexp.MustCompile(`^\d{4}$`)
	paymentMethodRegex = regexp.MustCompile(`(?i)card|fpx|wallet|instalment|atome|pay later`)
	paymentReadyRegex  = regexp.MustCompile(`(?i)^(yes|ya|ok|okay|sure|proceed|continue|yes please|let'?s go|ready|pay now|confirm)$`)

	bareAffirmationRegex = regexp.MustCompile(`(?i)^(ok|okay|yes|ya|sure|alright|proceed|continue)$`)
	dilemmaRegex         = regexp.MustCompile(`(?i)can'?t (choose|decide|pick|select)|torn between|stuck between|not sure which|help me (choose|decide|pick)|which (one|should)|which is better|what(?:'s| is) better|better one|best one|between .+ and`)
	playfulRegex         = regexp.MustCompile(`(?i)you choose|you pick|up to you|whatever|whichever|surprise me|idk|dunno|not sure|hmm+|haha|lol`)
	quoteQuestionRegex   = regexp.MustCompile(`(?i)\?|tell me|what about|how about|about\s+(takaful|ikhlas|etiqa|allianz)|do i need|should i|explain|interested|want to know|more about|details|which is better|what(?:'s| is) better|better one|best one`)
	quoteDiscussionRegex = regexp.MustCompile(`(?i)which|what|why|compare|difference|better|best|recommend`)
	selectionVerbRegex   = regexp.MustCompile(`(?i)\b(go with|choose|select|pick|i'll take|i will take|confirm)\b`)
	negatedSelectRegex   = regexp.MustCompile(`(?i)can'?t|cannot|couldn'?t`)
	softSelectionRegex   = regexp.MustCompile(`(?i)\b(ok|okay|maybe)\b`)
	insurerWordRegex     = regexp.MustCompile(`(?i)\b(takaful|ikhlas|etiqa|allianz)\b`)
	inquiryCueRegex      = regexp.MustCompile(`(?i)\b(about|tell|explain|compare|difference|why|what|which|recommend|info|details)\b`)
	negationCueRegex     = regexp.MustCompile(`(?i)\b(no|not|don'?t|dont|can'?t|cannot|couldn'?t|not sure)\b`)
	nonAlnumRegex        = regexp.MustCompile(`[^a-z0-9\s]`)

	skipAddOnsRegex      = regexp.MustCompile(`(?i)no add.?on|none|skip add|no thanks|don't need|dont need|proceed without|no insurance add|skip$|no$|nope`)
	windscreenRegex      = regexp.MustCompile(`(?i)windscreen`)
	floodRegex           = regexp.MustCompile(`(?i)flood|disaster|perils|special perils`)
	ehailingRegex        = regexp.MustCompile(`(?i)e.?hailing|grab|ride.?sharing|ride.?share`)
	allAddOnsRegex       = regexp.MustCompile(`(?i)both|all`)
	addOnQuestionRegex   = regexp.MustCompile(`(?i)\?|what is|what's|do i need|should i|tell me|explain|which one|recommend|need this|worth it|necessary|how does|what does`)
	addOnIndecisionRegex = regexp.MustCompile(`(?i)can'?t (choose|decide)|not sure|help me (choose|decide)|which (one|should)`)
	addOnIntentRegex     = regexp.MustCompile(`(?i)\b(add|want|yes|ok|okay|take|get|include|i'll take|i will take|give me|with)\b`)
	directAddOnRegex     = regexp.MustCompile(`(?i)^(windscreen|flood|special perils|e.?hailing|both|all)(\s*(and|,|\+)\s*(windscreen|flood|special perils|e.?hailing))*\.?$`)
	shortAffirmRegex     = regexp.MustCompile(`(?i)^(ok|okay|yes|ya|sure|alright)$`)

	roadTax6DigitalRegex  = regexp.MustCompile(`(?i)6.*month.*digital|digital.*6`)
	roadTax6DeliverRegex  = regexp.MustCompile(`(?i)6.*month.*deliver|deliver.*6`)
	roadTax12DigitalRegex = regexp.MustCompile(`(?i)12.*month.*digital|digital.*12|year.*digital`)
	roadTax12DeliverRegex = regexp.MustCompile(`(?i)12.*month.*deliver|deliver.*12|year.*deliver`)
	bareTwelveRegex       = regexp.MustCompile(`(?i)\b12\s*(month|months|mth|mths|year|yr)?\b`)
	bareSixRegex          = regexp.MustCompile(`(?i)\b6\s*(month|months|mth|mths)?\b`)
	noRoadTaxRegex        = regexp.MustCompile(`(?i)no road tax|just insurance|insurance only|skip`)

	genericQuestionRegex = regexp.MustCompile(`(?i)\?|do i need|should i|what is|what's|how does|explain|tell me about|why|which one|recommend|need this|need these|worth it|necessary`)

	confirmExactRegex  = regexp.MustCompile(`(?i)^(yes|correct|confirm|ok|okay|ya|betul|proceed|looks good|that's right|continue|all good|all is good|good|yep|yup|right|thats? correct)$`)
	confirmPhraseRegex = regexp.MustCompile(`(?i)\b(yes|correct|confirm|proceed|looks good|all good|all is good)\b`)

	startRenewalRegex = regexp.MustCompile(`(?i)renew|insurance|start|begin|get quote`)

	playfulStartRegex = regexp.MustCompile(`(?i)^(haha|lol|lmao|hehe|hmm+|umm+|uhh+|idk|dunno|whatever|anything|up to you|you choose|you pick|as you say|as you think|whichever)\b`)
	playfulAnyRegex   = regexp.MustCompile(`(?i)\b(haha|lol|idk|dunno|whatever|up to you|you choose|you pick|whichever)\b`)

	emailPresentRegex = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePresentRegex = regexp.MustCompile(`\b0?1[0-9][\s\-]?[0-9]{3,4}[\s\-]?[0-9]{4}\b`)
	addressCueRegex   = regexp.MustCompile(`(?i)jalan|jln|lorong|taman|persiaran|lebuh`)
)

// selection words too short to fuzzy match are noise, not insurer names
var insurerFillerWords = map[string]bool{
	"please":    true,
	"pls":       true,
	"lah":       true,
	"la":        true,
	"insurance": true,
}

var insurerAliases = []struct {
	key     string
	aliases []string
}{
	{"takaful", []string{"takaful", "ikhlas"}},
	{"etiqa", []string{"etiqa"}},
	{"allianz", []string{"allianz"}},
}

func insurerKeyFromText(text string) string {
	switch {
	case strings.Contains(text, "takaful") || strings.Contains(text, "ikhlas"):
		return "takaful"
	case strings.Contains(text, "etiqa"):
		return "etiqa"
	case strings.Contains(text, "allianz"):
		return "allianz"
	default:
		return ""
	}
}

// Classify runs the ordered rule set against one user message. Rules earlier
// in the chain are more specific; the first hit wins.
func Classify(message string, state *State) ClassifiedIntent {
	msg := strings.ToLower(strings.TrimSpace(message))
	step := state.Step

	// Pending confirmation outranks everything; a bare "yes" means the
	// armed action, not a generic confirmation.
	if state.PendingAction != nil && state.PendingAction.Type == PendingActionConfirmQuoteChange {
		if pendingYesRegex.MatchString(msg) {
			return ClassifiedIntent{Intent: IntentConfirmChange, Confidence: 0.95}
		}
		if pendingNoRegex.MatchString(msg) {
			return ClassifiedIntent{
				Intent:     IntentOther,
				Confidence: 0.9,
				Data:       map[string]interface{}{"cancelPendingAction": true},
			}
		}
	}

	// Switching insurer after a quote is locked in.
	if state.SelectedQuote != nil && isPostQuoteStep(step) {
		if changeVerbRegex.MatchString(msg) && insurerNameRegex.MatchString(msg) {
			newInsurer := insurerKeyFromText(msg)
			currentInsurer := insurerKeyFromText(strings.ToLower(state.SelectedQuote.Insurer))
			if newInsurer != "" && newInsurer != currentInsurer {
				return ClassifiedIntent{
					Intent:     IntentChangeQuote,
					Confidence: 0.95,
					Data: map[string]interface{}{
						"newInsurer":     newInsurer,
						"currentInsurer": currentInsurer,
					},
				}
			}
		}
	}

	if otpRegex.MatchString(msg) && step == StepOTP {
		return ClassifiedIntent{
			Intent:     IntentVerifyOTP,
			Confidence: 1.0,
			Data:       map[string]interface{}{"otp": msg, "valid": true},
		}
	}

	if step == StepPayment {
		if paymentMethodRegex.MatchString(msg) {
			method := catalog.PaymentMethodCard
			switch {
			case strings.Contains(msg, "card"):
				method = catalog.PaymentMethodCard
			case strings.Contains(msg, "fpx"):
				method = catalog.PaymentMethodFPX
			case strings.Contains(msg, "wallet"):
				method = catalog.PaymentMethodEWallet
			case strings.Contains(msg, "atome") || strings.Contains(msg, "instalment"):
				method = catalog.PaymentMethodBNPL
			}
			return ClassifiedIntent{
				Intent:     IntentSelectPayment,
				Confidence: 0.9,
				Data:       map[string]interface{}{"method": method},
			}
		}
		if paymentReadyRegex.MatchString(msg) {
			return ClassifiedIntent{
				Intent:     IntentSelectPayment,
				Confidence: 0.85,
				Data:       map[string]interface{}{"method": "any"},
			}
		}
	}

	if step == StepQuotes {
		if bareAffirmationRegex.MatchString(msg) {
			return ClassifiedIntent{Intent: IntentConfirm, Confidence: 0.7}
		}
		if dilemmaRegex.MatchString(msg) {
			return ClassifiedIntent{Intent: IntentAskQuestion, Confidence: 0.95}
		}
		if playfulRegex.MatchString(msg) {
			return ClassifiedIntent{Intent: IntentUnclearOrPlayful, Confidence: 0.88}
		}
		if quoteQuestionRegex.MatchString(msg) || quoteDiscussionRegex.MatchString(msg) {
			return ClassifiedIntent{Intent: IntentAskQuestion, Confidence: 0.9}
		}

		hasSelectionVerb := selectionVerbRegex.MatchString(msg) && !negatedSelectRegex.MatchString(msg)
		hasSoftSelection := softSelectionRegex.MatchString(msg) && insurerWordRegex.MatchString(msg)

		// A near-bare insurer name is a selection even without a verb, but
		// only when the message carries no inquiry or negation cue. Fuzzy
		// matching covers typos like "etiqqa".
		if !inquiryCueRegex.MatchString(msg) && !negationCueRegex.MatchString(msg) {
			normalized := nonAlnumRegex.ReplaceAllString(msg, " ")
			var candidates []string
			for _, word := range strings.Fields(normalized) {
				if !insurerFillerWords[word] {
					candidates = append(candidates, word)
				}
			}
			if len(candidates) >= 1 && len(candidates) <= 2 {
				var matchedKeys []string
				for _, entry := range insurerAliases {
					for _, word := range candidates {
						if _, ok := fuzzyMatch(word, entry.aliases, 2); ok {
							matchedKeys = append(matchedKeys, entry.key)
							break
						}
					}
				}
				if len(matchedKeys) == 1 {
					return ClassifiedIntent{
						Intent:     IntentSelectQuote,
						Confidence: 0.9,
						Data:       map[string]interface{}{"insurer": matchedKeys[0]},
					}
				}
			}
		}

		if hasSelectionVerb || hasSoftSelection {
			for _, word := range strings.Fields(msg) {
				if len(word) < 3 {
					continue
				}
				for _, entry := range insurerAliases {
					if _, ok := fuzzyMatch(word, entry.aliases, 2); ok {
						return ClassifiedIntent{
							Intent:     IntentSelectQuote,
							Confidence: 0.9,
							Data:       map[string]interface{}{"insurer": entry.key},
						}
					}
				}
			}
		}
	}

	if step == StepAddOns {
		if skipAddOnsRegex.MatchString(msg) {
			return ClassifiedIntent{
				Intent:     IntentSelectAddOn,
				Confidence: 0.9,
				Data:       map[string]interface{}{"addOns": []string{}, "confirmed": true},
			}
		}

		var mentioned []string
		if windscreenRegex.MatchString(msg) {
			mentioned = append(mentioned, catalog.AddOnWindscreen)
		}
		if floodRegex.MatchString(msg) {
			mentioned = append(mentioned, catalog.AddOnFlood)
		}
		if ehailingRegex.MatchString(msg) {
			mentioned = append(mentioned, catalog.AddOnEHailing)
		}
		if allAddOnsRegex.MatchString(msg) {
			mentioned = []string{catalog.AddOnWindscreen, catalog.AddOnFlood, catalog.AddOnEHailing}
		}

		if addOnQuestionRegex.MatchString(msg) || addOnIndecisionRegex.MatchString(msg) {
			return ClassifiedIntent{Intent: IntentAskQuestion, Confidence: 0.9}
		}

		if len(mentioned) > 0 {
			isDirect := directAddOnRegex.MatchString(strings.TrimSpace(msg))
			if addOnIntentRegex.MatchString(msg) || isDirect {
				return ClassifiedIntent{
					Intent:     IntentSelectAddOn,
					Confidence: 0.9,
					Data:       map[string]interface{}{"addOns": mentioned, "confirmed": true},
				}
			}
			return ClassifiedIntent{Intent: IntentAskQuestion, Confidence: 0.7}
		}

		if shortAffirmRegex.MatchString(msg) {
			return ClassifiedIntent{Intent: IntentOther, Confidence: 0.5}
		}
		if playfulRegex.MatchString(msg) {
			return ClassifiedIntent{Intent: IntentUnclearOrPlayful, Confidence: 0.82}
		}
	}

	if step == StepRoadTax || state.AddOnsConfirmed {
		if bareAffirmationRegex.MatchString(msg) {
			// Road tax was just presented with the 12-month digital option as
			// the default; a bare yes takes it. At later steps a bare yes is
			// ambiguous and falls through.
			if step == StepRoadTax {
				return ClassifiedIntent{
					Intent:     IntentSelectRoadTax,
					Confidence: 0.85,
					Data:       map[string]interface{}{"roadTaxId": catalog.RoadTax12MonthDigital},
				}
			}
			return ClassifiedIntent{Intent: IntentOther, Confidence: 0.5}
		}
		switch {
		case roadTax6DigitalRegex.MatchString(msg):
			return roadTaxIntent(catalog.RoadTax6MonthDigital, 0.9)
		case roadTax6DeliverRegex.MatchString(msg):
			return roadTaxIntent(catalog.RoadTax6MonthDeliver, 0.9)
		case roadTax12DigitalRegex.MatchString(msg):
			return roadTaxIntent(catalog.RoadTax12MonthDigital, 0.9)
		case roadTax12DeliverRegex.MatchString(msg):
			return roadTaxIntent(catalog.RoadTax12MonthDeliver, 0.9)
		case bareTwelveRegex.MatchString(msg):
			return roadTaxIntent(catalog.RoadTax12MonthDigital, 0.85)
		case bareSixRegex.MatchString(msg):
			return roadTaxIntent(catalog.RoadTax6MonthDigital, 0.85)
		case noRoadTaxRegex.MatchString(msg):
			return roadTaxIntent(catalog.RoadTaxNone, 0.9)
		}
		if step == StepRoadTax && playfulRegex.MatchString(msg) {
			return ClassifiedIntent{Intent: IntentUnclearOrPlayful, Confidence: 0.82}
		}
	}

	if genericQuestionRegex.MatchString(msg) {
		return ClassifiedIntent{Intent: IntentAskQuestion, Confidence: 0.9}
	}

	if confirmExactRegex.MatchString(msg) || confirmPhraseRegex.MatchString(msg) {
		return ClassifiedIntent{Intent: IntentConfirm, Confidence: 0.7}
	}

	if startRenewalRegex.MatchString(msg) && step == StepStart {
		return ClassifiedIntent{Intent: IntentStartRenewal, Confidence: 0.8}
	}

	if playfulStartRegex.MatchString(msg) || playfulAnyRegex.MatchString(msg) {
		return ClassifiedIntent{Intent: IntentUnclearOrPlayful, Confidence: 0.75}
	}

	if emailPresentRegex.MatchString(message) {
		return ClassifiedIntent{Intent: IntentSubmitDetails, Confidence: 0.95}
	}
	if phonePresentRegex.MatchString(message) && addressCueRegex.MatchString(msg) && step == StepPersonalDetails {
		return ClassifiedIntent{Intent: IntentSubmitDetails, Confidence: 0.85}
	}

	// At the details step long digit runs are phone numbers, not IDs.
	if step != StepPersonalDetails {
		extracted := nlp.ExtractVehicleInfo(message)
		hasPlate := extracted.RegistrationNumber != ""
		hasOwnerID := extracted.OwnerID != ""
		if hasPlate || hasOwnerID {
			return ClassifiedIntent{
				Intent:     IntentProvideInfo,
				Confidence: 0.9,
				Data:       map[string]interface{}{"hasPlate": hasPlate, "hasNRIC": hasOwnerID},
			}
		}
	}

	return ClassifiedIntent{Intent: IntentOther, Confidence: 0.5}
}

func roadTaxIntent(roadTaxID string, confidence float64) ClassifiedIntent {
	return ClassifiedIntent{
		Intent:     IntentSelectRoadTax,
		Confidence: confidence,
		Data:       map[string]interface{}{"roadTaxId": roadTaxID},
	}
}

func isPostQuoteStep(step Step) bool {
	switch step {
	case StepAddOns, StepRoadTax, StepPersonalDetails, StepOTP, StepPayment:
		return true
	}
	return false
}
