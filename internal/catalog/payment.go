package catalog

import "insurance-renewal-assistant/internal/model"

// Payment method IDs.
const (
	PaymentMethodCard    = "card"
	PaymentMethodFPX     = "fpx"
	PaymentMethodEWallet = "ewallet"
	PaymentMethodBNPL    = "bnpl"
)

// PaymentMethods returns the accepted payment methods.
func PaymentMethods() []model.PaymentMethod {
	return []model.PaymentMethod{
		{ID: PaymentMethodCard, Name: "Credit/Debit Card"},
		{ID: PaymentMethodFPX, Name: "Online Banking (FPX)"},
		{ID: PaymentMethodEWallet, Name: "E-Wallet"},
		{ID: PaymentMethodBNPL, Name: "Pay Later (0% Instalment)"},
	}
}

// IsValidPaymentMethod reports whether id names a known method.
// "cc-instalment" is accepted as a legacy alias from the payment page.
func IsValidPaymentMethod(id string) bool {
	switch id {
	case PaymentMethodCard, PaymentMethodFPX, PaymentMethodEWallet, PaymentMethodBNPL, "cc-instalment":
		return true
	}
	return false
}
