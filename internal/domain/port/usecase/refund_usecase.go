package usecase

import (
	"context"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
)

// DateRangeRequest is the input for the date-range refund extraction.
// All three fields are required.
type DateRangeRequest struct {
	StartDate     string
	EndDate       string
	PaymentMethod string
}

// UploadRequest is the input for the uploaded-batch reconciliation. The ID
// list has already been extracted from the tabular file by the caller.
type UploadRequest struct {
	TransactionIDs []string
	PaymentMethod  string
}

// RefundUseCase produces refund-eligible subsets of the payment store.
type RefundUseCase interface {
	// ExportByDateRange returns the ordered refund-eligible rows for the
	// given range and channel. Payments with a valid token are excluded
	// even when the store says NOT SUCCESFUL.
	//
	// Possible errors:
	// - ErrMissingDateRange, ErrMissingPaymentMethod, ErrInvalidPaymentMethod
	// - ErrRecordStore
	ExportByDateRange(ctx context.Context, req DateRangeRequest) ([]entity.RefundExportRow, error)

	// ReconcileUpload partitions the supplied transaction IDs into
	// unsuccessful, successful and not-found against the store.
	//
	// Possible errors:
	// - ErrMissingTransactionIDs, ErrMissingPaymentMethod, ErrInvalidPaymentMethod
	// - ErrRecordStore
	ReconcileUpload(ctx context.Context, req UploadRequest) (*entity.UploadReport, error)
}
