package usecase

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"insurance-renewal-assistant/internal/catalog"
	"insurance-renewal-assistant/internal/conversation"
	"insurance-renewal-assistant/internal/model"
)

// Deterministic markdown blocks the model is instructed to include verbatim.
// Prices and totals are computed here so the LLM can never drift from them.

var insurerLogos = map[string]string{
	"Takaful Ikhlas":    "/partners/takaful.svg",
	"Etiqa Insurance":   "/partners/etiqa.svg",
	"Allianz Insurance": "/partners/allianz.svg",
}

var postcodeRegex = regexp.MustCompile(`\b\d{5}\b`)

// formatRM renders a whole-ringgit amount with thousand separators.
func formatRM(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	intPart := s
	fracPart := ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String() + fracPart
}

func selectionTotal(state *conversation.State) (insurerPrice, addOnsTotal, roadTaxTotal, total float64) {
	if state.SelectedQuote != nil {
		insurerPrice = state.SelectedQuote.PriceAfter
	}
	for _, a := range state.SelectedAddOns {
		addOnsTotal += a.Price
	}
	if state.SelectedRoadTax != nil {
		roadTaxTotal = state.SelectedRoadTax.Price
	}
	return insurerPrice, addOnsTotal, roadTaxTotal, insurerPrice + addOnsTotal + roadTaxTotal
}

// buildSummaryBox renders the "Your Selection" box from current state.
func buildSummaryBox(state *conversation.State) string {
	insurerPrice, _, _, total := selectionTotal(state)

	insurerLine := "Not selected"
	if state.SelectedQuote != nil && insurerPrice > 0 {
		insurer := state.SelectedQuote.Insurer
		insurerLine = fmt.Sprintf("![%s](%s) %s — RM %s", insurer, insurerLogos[insurer], insurer, formatRM(insurerPrice))
	}

	addOnsLine := "Not selected"
	if len(state.SelectedAddOns) > 0 {
		parts := make([]string, 0, len(state.SelectedAddOns))
		for _, a := range state.SelectedAddOns {
			parts = append(parts, fmt.Sprintf("%s - RM %s", a.Name, formatRM(a.Price)))
		}
		addOnsLine = strings.Join(parts, ", ")
	}

	roadTaxLine := "Not selected"
	if state.SelectedRoadTax != nil {
		if state.SelectedRoadTax.Price > 0 {
			roadTaxLine = fmt.Sprintf("%s - RM %s", state.SelectedRoadTax.Name, formatRM(state.SelectedRoadTax.Price))
		} else {
			roadTaxLine = state.SelectedRoadTax.Name
		}
	}

	return fmt.Sprintf(`---
**Your Selection**
**Insurance:** %s
**Add-ons:** %s
**Road tax:** %s

💰 <u>**Total: RM %s**</u>
---`, insurerLine, addOnsLine, roadTaxLine, formatRM(total))
}

// buildQuotesBlock renders the three quote cards.
func buildQuotesBlock() string {
	quotes := catalog.Quotes(catalog.QuoteParams{})
	cards := make([]string, 0, len(quotes))
	for _, q := range quotes {
		var features []string
		if ins, ok := catalog.InsurerByID(q.InsurerID); ok {
			for _, f := range ins.Features {
				features = append(features, "✓ "+f)
			}
		}
		cards = append(cards, fmt.Sprintf(`![%s](%s) **%s** — **RM %s**
Sum Insured: RM %s
%s
~~RM %s~~ → RM %s (%.0f%% NCD)`,
			q.Insurer, q.LogoURL, q.Insurer, formatRM(q.FinalPremium),
			formatRM(q.SumInsured),
			strings.Join(features, " "),
			formatRM(q.BasePremium), formatRM(q.FinalPremium), q.NCDPercent))
	}
	return strings.Join(cards, "\n\n")
}

// buildAddOnsMenu renders the add-on price list.
func buildAddOnsMenu() string {
	windscreen, _ := catalog.AddOnByID(catalog.AddOnWindscreen)
	flood, _ := catalog.AddOnByID(catalog.AddOnFlood)
	ehailing, _ := catalog.AddOnByID(catalog.AddOnEHailing)
	return fmt.Sprintf(`- **Windscreen** — RM %s
- **Special Perils (Flood & Natural Disaster)** — RM %s
- **E-hailing** — RM %s`,
		formatRM(windscreen.Price), formatRM(flood.Price), formatRM(ehailing.Price))
}

func canUseDeliveredRoadTax(state *conversation.State) bool {
	return conversation.CanUseDeliveredRoadTax(state.OwnerIDType)
}

// buildRoadTaxMenu renders the road tax options for the owner's eligibility.
func buildRoadTaxMenu(state *conversation.State) string {
	if canUseDeliveredRoadTax(state) {
		return `- **6 months**: RM 45 (digital) | RM 55 (delivered)
- **12 months**: RM 90 (digital) | RM 100 (delivered)

Or continue without road tax.`
	}

	return `- **6 months**: RM 45 (digital only)
- **12 months**: RM 90 (digital only)

Printed + delivered road tax is available only for **Foreign ID** or **Company Registration** vehicle ownership.

Or continue without road tax.`
}

// buildVehicleBlock renders the looked-up vehicle record.
func buildVehicleBlock(profile *model.VehicleProfile) string {
	if profile == nil {
		return ""
	}

	// Policy effective: roughly the next renewal window.
	start := nowFunc().AddDate(0, 0, 30)
	end := start.AddDate(1, 0, 0)

	return fmt.Sprintf(`**Vehicle Reg.Num**: %s
**Vehicle**: %d %s %s
**Engine**: Auto - %scc
**Postcode**: %s
**NCD**: %.0f%%
**Cover Type**: %s
**Policy Effective**: %s - %s`,
		profile.PlateNumber,
		profile.Year, profile.Make, profile.Model,
		formatRM(float64(profile.EngineCC)),
		postcodeRegex.FindString(profile.Address),
		profile.NCDPercent,
		profile.CoverType,
		start.Format("2 Jan 2006"), end.Format("2 Jan 2006"))
}

// buildPaymentLink renders the pay CTA with the locked totals in the URL.
func buildPaymentLink(state *conversation.State) string {
	insurerPrice, addOnsTotal, roadTaxTotal, total := selectionTotal(state)

	insurer := ""
	if state.SelectedQuote != nil {
		insurer = state.SelectedQuote.Insurer
	}
	payID := fmt.Sprintf("PAY-%d", nowFunc().UnixMilli())
	return fmt.Sprintf("[**Pay RM %s →**](/my/payment/%s?total=%s&insurer=%s&plate=%s&insurance=%s&addons=%s&roadtax=%s)",
		formatRM(total), payID,
		strconv.FormatFloat(total, 'f', -1, 64),
		url.QueryEscape(insurer),
		url.QueryEscape(state.PlateNumber),
		strconv.FormatFloat(insurerPrice, 'f', -1, 64),
		strconv.FormatFloat(addOnsTotal, 'f', -1, 64),
		strconv.FormatFloat(roadTaxTotal, 'f', -1, 64))
}
