package entity

// PaymentMethod identifies the mobile-money channel a payment arrived through.
type PaymentMethod string

const (
	MethodMPesa       PaymentMethod = "M-PESA"
	MethodTigoPesa    PaymentMethod = "TIGO-PESA"
	MethodAirtelMoney PaymentMethod = "AIRTEL-MONEY"
	MethodSelcom      PaymentMethod = "SELCOM"
)

// IsValidPaymentMethod reports whether the given string is a known channel.
func IsValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case MethodMPesa, MethodTigoPesa, MethodAirtelMoney, MethodSelcom:
		return true
	}
	return false
}

// PaymentStatus is the internal view of the stored payment_status field.
//
// The store uses the literals "SUCCESFUL" and "NOT SUCCESFUL" (both missing a
// letter). These spellings are the wire contract with the upstream gateway
// and must never be corrected; internal code goes through this type so the
// literals appear in exactly one place.
type PaymentStatus string

const (
	PaymentStatusSuccessful    PaymentStatus = "SUCCESFUL"
	PaymentStatusNotSuccessful PaymentStatus = "NOT SUCCESFUL"
)

// MeterType distinguishes domestic prepaid meters, which receive a two-part
// (luku + passcode) token message, from everything else.
type MeterType string

const (
	MeterDomestic MeterType = "DOMESTIC"
)

// PaymentRecord is a row from the mobile-payments table. Records are created
// and status-transitioned by the upstream gateway integration; this system
// only ever reads them.
type PaymentRecord struct {
	ID                  uint64
	TransactionID       string
	MSISDN              string
	CustomerReferenceID string
	PaymentMethod       string
	PaymentStatus       string
	Amount              float64
	TransactionDate     string // stored as YYYY-MM-DD text, not a native date
	MeterType           string
}

// HasTransactionID reports whether the record carries a usable join key.
// Empty transaction IDs exist in the store and must never match any token.
func (p *PaymentRecord) HasTransactionID() bool {
	return p.TransactionID != ""
}

// StatusIs compares the stored free-text status against a canonical value.
func (p *PaymentRecord) StatusIs(status PaymentStatus) bool {
	return p.PaymentStatus == string(status)
}

// IsDomesticMeter reports whether the payment targets a domestic prepaid meter.
func (p *PaymentRecord) IsDomesticMeter() bool {
	return p.MeterType == string(MeterDomestic)
}
