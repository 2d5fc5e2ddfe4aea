package model

// TokenHistory maps the token history table written by the external vending
// process. txn_id correlates to tbl_mobile_payments.transaction_id by value
// only; there is no foreign key.
type TokenHistory struct {
	ID       uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	TxnID    *string `gorm:"column:txn_id;size:255;index"`
	Luku     *string `gorm:"column:luku;size:64"`
	Passcode *string `gorm:"column:passcode;size:64"`
	Units    *string `gorm:"column:units;size:32"`
}

// TableName specifies the production table name for TokenHistory
func (TokenHistory) TableName() string {
	return "token_history_data"
}
