package dto

import "github.com/payless-tz/payment-reconciler/internal/domain/entity"

// RefundListResponse is the payload for GET /api/refunds.
type RefundListResponse struct {
	Payments []entity.RefundExportRow `json:"payments"`
	Count    int                      `json:"count"`
}

// UploadRequest is the JSON body variant of POST /api/refunds/upload, used
// when the caller has already extracted the IDs client-side.
type UploadRequest struct {
	TransactionIDs []string `json:"transactionIds" binding:"required"`
	PaymentMethod  string   `json:"paymentMethod" binding:"required"`
}
