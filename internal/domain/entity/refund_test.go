package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRefundExportRow(t *testing.T) {
	t.Run("All fields present", func(t *testing.T) {
		p := &PaymentRecord{
			TransactionID: "TX100",
			MSISDN:        "255712345678",
			PaymentStatus: string(PaymentStatusNotSuccessful),
			Amount:        25000,
		}

		row := NewRefundExportRow(p)

		assert.Equal(t, "TX100", row.TransactionID)
		assert.Equal(t, "255712345678", row.MSISDN)
		assert.Equal(t, "NOT SUCCESFUL", row.Status)
		assert.Equal(t, float64(25000), row.Amount)
	})

	t.Run("Missing fields fall back to placeholders", func(t *testing.T) {
		row := NewRefundExportRow(&PaymentRecord{})

		assert.Equal(t, RefundMissingTransactionID, row.TransactionID)
		assert.Equal(t, "", row.MSISDN)
		assert.Equal(t, string(StatusPending), row.Status)
		assert.Equal(t, float64(0), row.Amount)
	})
}

func TestPaymentRecordHelpers(t *testing.T) {
	p := &PaymentRecord{
		TransactionID: "TX1",
		PaymentStatus: "SUCCESFUL",
		MeterType:     "DOMESTIC",
	}

	assert.True(t, p.HasTransactionID())
	assert.True(t, p.StatusIs(PaymentStatusSuccessful))
	assert.False(t, p.StatusIs(PaymentStatusNotSuccessful))
	assert.True(t, p.IsDomesticMeter())

	empty := &PaymentRecord{}
	assert.False(t, empty.HasTransactionID())
	assert.False(t, empty.StatusIs(PaymentStatusSuccessful))
	assert.False(t, empty.IsDomesticMeter())
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod("M-PESA"))
	assert.True(t, IsValidPaymentMethod("TIGO-PESA"))
	assert.True(t, IsValidPaymentMethod("AIRTEL-MONEY"))
	assert.True(t, IsValidPaymentMethod("SELCOM"))
	assert.False(t, IsValidPaymentMethod(""))
	assert.False(t, IsValidPaymentMethod("m-pesa"))
	assert.False(t, IsValidPaymentMethod("VISA"))
}
