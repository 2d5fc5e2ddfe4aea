package usecase

import (
	"context"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
)

// ListPaymentsRequest carries user-supplied filter and pagination input.
// Zero values are permitted everywhere; the usecase applies defaults.
type ListPaymentsRequest struct {
	Page          int
	PageSize      int
	Search        string
	Status        string
	PaymentMethod string
}

// Pagination is the metadata block returned alongside every page.
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalCount      int64 `json:"totalCount"`
	Limit           int   `json:"limit"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// PaymentPage is one page of merged payment+token views.
type PaymentPage struct {
	Items      []entity.PaymentView
	Pagination Pagination
}

// PaymentUseCase serves the paginated payment listing.
type PaymentUseCase interface {
	// ListPayments returns a bounded page of payments, each merged with its
	// correlated token record via a single bulk lookup.
	//
	// Possible errors:
	// - ErrRecordStore: if either the count or the page query fails
	ListPayments(ctx context.Context, req ListPaymentsRequest) (*PaymentPage, error)
}
