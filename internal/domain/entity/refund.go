package entity

// Refund export field fallbacks. The export format predates this service and
// its consumers depend on these exact placeholder values.
const (
	RefundMissingTransactionID = "N/A"
	RefundMissingStatus        = string(StatusPending)
)

// RefundExportRow is one line of a refund export file. Rows are derived on
// demand for payments classified as refund-eligible and never persisted.
type RefundExportRow struct {
	TransactionID string  `json:"TRANSACTION_ID"`
	MSISDN        string  `json:"MSISDN"`
	Status        string  `json:"STATUS"`
	Amount        float64 `json:"AMOUNT"`
}

// NewRefundExportRow builds an export row from a payment, applying the
// legacy placeholder values for absent fields.
func NewRefundExportRow(p *PaymentRecord) RefundExportRow {
	row := RefundExportRow{
		TransactionID: p.TransactionID,
		MSISDN:        p.MSISDN,
		Status:        p.PaymentStatus,
		Amount:        p.Amount,
	}
	if row.TransactionID == "" {
		row.TransactionID = RefundMissingTransactionID
	}
	if row.Status == "" {
		row.Status = RefundMissingStatus
	}
	return row
}

// UploadReport is the outcome of reconciling an uploaded batch of external
// transaction IDs against the store. Every supplied ID lands in exactly one
// partition; Total is the sum of the three partition sizes.
type UploadReport struct {
	Unsuccessful []RefundExportRow `json:"unsuccessful"`
	Successful   []RefundExportRow `json:"successful"`
	NotFound     []RefundExportRow `json:"notFound"`
	Total        int               `json:"total"`
}
