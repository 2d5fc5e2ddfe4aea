package reconcile

import (
	"fmt"
	"strings"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
)

// ContactFooter is the fixed support line appended to every token message.
const ContactFooter = "**Piga Bure 0750013030 na 0777901467**"

// BuildTokenMessage renders the SMS body for a token resend. Domestic meters
// get the two-step Swahili message (luku first, then passcode); everything
// else gets the single-token receipt form. Sections whose source field is
// absent are omitted entirely. Returns "" when the token carries no fields
// worth sending.
func BuildTokenMessage(payment *entity.PaymentRecord, token *entity.TokenRecord) string {
	if token == nil || (token.Luku == "" && token.Passcode == "") {
		return ""
	}
	if payment.IsDomesticMeter() {
		return domesticMessage(payment, token)
	}
	return generalMessage(payment, token)
}

func domesticMessage(payment *entity.PaymentRecord, token *entity.TokenRecord) string {
	var b strings.Builder
	if token.Luku != "" {
		b.WriteString("MUHIMU SANA ANZA KUWEKA LUKU: \n")
		b.WriteString(token.Luku)
		b.WriteString(" \n\n")
	}
	if token.Passcode != "" {
		b.WriteString("MALIZIA KUWEKA PASSCODE: \n")
		b.WriteString(token.Passcode)
		b.WriteString(" \n\n")
	}
	if payment.CustomerReferenceID != "" {
		fmt.Fprintf(&b, "Mita # %s \n", payment.CustomerReferenceID)
	}
	if payment.Amount > 0 {
		fmt.Fprintf(&b, "Kiasi: %.2f \n", payment.Amount)
	}
	if token.Units != "" {
		fmt.Fprintf(&b, "Units: %s \n", token.Units)
	}
	b.WriteString("\n")
	b.WriteString(ContactFooter)
	return b.String()
}

func generalMessage(payment *entity.PaymentRecord, token *entity.TokenRecord) string {
	var b strings.Builder
	if token.Passcode != "" {
		fmt.Fprintf(&b, "Token: %s \n", token.Passcode)
	}
	if payment.CustomerReferenceID != "" {
		fmt.Fprintf(&b, "Meter # %s \n", payment.CustomerReferenceID)
	}
	if payment.TransactionID != "" {
		fmt.Fprintf(&b, "Receipt: %s \n", payment.TransactionID)
	}
	if payment.Amount > 0 {
		fmt.Fprintf(&b, "Amount: %.2f \n", payment.Amount)
	}
	if token.Units != "" {
		fmt.Fprintf(&b, "Units: %s \n", token.Units)
	}
	b.WriteString("\n")
	b.WriteString(ContactFooter)
	return b.String()
}
