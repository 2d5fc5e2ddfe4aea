package model

// MobilePayment maps the production payments table. The table is owned by
// the upstream gateway integration; every column except id is nullable
// there, hence the pointer fields.
type MobilePayment struct {
	ID                  uint64   `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionID       *string  `gorm:"column:transaction_id;size:255;index"`
	MSISDN              *string  `gorm:"column:msisdn;size:20"`
	CustomerReferenceID *string  `gorm:"column:customer_reference_id;size:255"`
	PaymentMethod       *string  `gorm:"column:payment_method;size:50"`
	PaymentStatus       *string  `gorm:"column:payment_status;size:50"`
	Amount              *float64 `gorm:"column:amount"`
	TransactionDate     *string  `gorm:"column:transaction_date;size:10"`
	MeterType           *string  `gorm:"column:meter_type;size:50"`
}

// TableName specifies the production table name for MobilePayment
func (MobilePayment) TableName() string {
	return "tbl_mobile_payments"
}
