// Package reconcile holds the classification rules that decide whether a
// payment actually produced utility credit. The stored payment status and
// the token side-channel can disagree; token validity is always the
// tie-breaker.
package reconcile

import (
	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
)

// Classify derives the trustworthy status of a payment from its stored
// status field and the token record correlated to it (nil when absent).
//
// A valid token is authoritative proof of success regardless of the stored
// status. Without token proof, an explicit SUCCESFUL status is still honored
// as success; an explicit NOT SUCCESFUL maps to NOT SUCCESSFUL; anything
// else, including an absent status, is PENDING.
func Classify(payment *entity.PaymentRecord, token *entity.TokenRecord) entity.Status {
	if hasTokenProof(payment, token) {
		return entity.StatusSuccessful
	}
	if payment.StatusIs(entity.PaymentStatusSuccessful) {
		return entity.StatusSuccessful
	}
	if payment.StatusIs(entity.PaymentStatusNotSuccessful) {
		return entity.StatusNotSuccessful
	}
	return entity.StatusPending
}

// IsRefundEligible is the stricter predicate used by refund flows. The
// status-fallback leniency of Classify does not apply here: only token proof
// can veto a refund, and only an explicit NOT SUCCESFUL status nominates one.
func IsRefundEligible(payment *entity.PaymentRecord, token *entity.TokenRecord) bool {
	if !payment.StatusIs(entity.PaymentStatusNotSuccessful) {
		return false
	}
	return !hasTokenProof(payment, token)
}

// hasTokenProof guards the join key: a payment with an empty transaction ID
// never matches any token, even if callers handed one in by mistake.
func hasTokenProof(payment *entity.PaymentRecord, token *entity.TokenRecord) bool {
	if !payment.HasTransactionID() || token == nil {
		return false
	}
	if token.TxnID != payment.TransactionID {
		return false
	}
	return token.HasValidToken()
}
