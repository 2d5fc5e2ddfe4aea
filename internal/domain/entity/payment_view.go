package entity

// Status is the reconciled classification of a payment, derived from the
// stored status field and the token side-channel together.
type Status string

const (
	StatusSuccessful    Status = "SUCCESSFUL"
	StatusNotSuccessful Status = "NOT SUCCESSFUL"
	StatusNotFound      Status = "NOT FOUND"
	StatusPending       Status = "PENDING"
)

// PaymentView is a payment merged with its correlated token record, as
// exposed to listing callers. Token is nil when no token row matched the
// payment's transaction ID.
type PaymentView struct {
	Payment PaymentRecord
	Token   *TokenRecord
}
