package persistence

import (
	"context"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
)

// PaymentQuery bounds a page listing against the payments table.
type PaymentQuery struct {
	// Search is OR-matched as a substring across customer reference, MSISDN
	// and transaction ID. Empty means no text filter.
	Search string
	// Status filters by the stored payment_status literal, exact match.
	Status string
	// PaymentMethod filters by channel, exact match.
	PaymentMethod string
	// StartDate/EndDate are reserved date-only bounds on transaction_date.
	// Empty means unbounded.
	StartDate string
	EndDate   string
	// Offset/Limit page the result. Ordering is always id DESC.
	Offset int
	Limit  int
}

// RefundRangeQuery selects refund candidates for the date-range strategy.
type RefundRangeQuery struct {
	PaymentMethod string
	// StartDate/EndDate are inclusive date-only bounds (YYYY-MM-DD) compared
	// against the transaction_date text column.
	StartDate string
	EndDate   string
	// ExcludePrefix drops transaction IDs starting with this prefix
	// (internally generated non-refundable reference codes).
	ExcludePrefix string
}

// PaymentRepository reads from the mobile-payments table. The table is owned
// by the upstream gateway; this system never writes to it.
type PaymentRepository interface {
	// FindPage returns one page of payments matching the query, id DESC.
	//
	// Possible errors:
	// - ErrRecordStore: if the underlying query fails
	FindPage(ctx context.Context, q PaymentQuery) ([]entity.PaymentRecord, error)

	// Count returns the total number of payments matching the query,
	// ignoring Offset/Limit.
	Count(ctx context.Context, q PaymentQuery) (int64, error)

	// FindRefundCandidates returns payments with status NOT SUCCESFUL inside
	// the date range, excluding empty and prefix-excluded transaction IDs.
	FindRefundCandidates(ctx context.Context, q RefundRangeQuery) ([]entity.PaymentRecord, error)

	// FindByTransactionIDs returns payments whose transaction ID is in ids,
	// restricted to the given payment method. Empty-string IDs never match.
	FindByTransactionIDs(ctx context.Context, ids []string, method string) ([]entity.PaymentRecord, error)
}
