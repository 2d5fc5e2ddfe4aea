package reconcile

import (
	"testing"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

const validToken = "12345678901234567890"

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		payment  entity.PaymentRecord
		token    *entity.TokenRecord
		expected entity.Status
	}{
		{
			name:     "Stored SUCCESFUL without token",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "SUCCESFUL"},
			token:    nil,
			expected: entity.StatusSuccessful,
		},
		{
			name:     "Stored NOT SUCCESFUL without token",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "NOT SUCCESFUL"},
			token:    nil,
			expected: entity.StatusNotSuccessful,
		},
		{
			name:     "Token proof overrides NOT SUCCESFUL",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "NOT SUCCESFUL"},
			token:    &entity.TokenRecord{TxnID: "TX1", Luku: validToken},
			expected: entity.StatusSuccessful,
		},
		{
			name:     "Invalid token does not override",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "NOT SUCCESFUL"},
			token:    &entity.TokenRecord{TxnID: "TX1", Luku: "FAILED"},
			expected: entity.StatusNotSuccessful,
		},
		{
			name:     "Mismatched txn id is not proof",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "NOT SUCCESFUL"},
			token:    &entity.TokenRecord{TxnID: "TX2", Luku: validToken},
			expected: entity.StatusNotSuccessful,
		},
		{
			name:     "Empty transaction id never matches a token",
			payment:  entity.PaymentRecord{TransactionID: "", PaymentStatus: "NOT SUCCESFUL"},
			token:    &entity.TokenRecord{TxnID: "", Luku: validToken},
			expected: entity.StatusNotSuccessful,
		},
		{
			name:     "Unknown stored status is pending",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "IN PROGRESS"},
			token:    nil,
			expected: entity.StatusPending,
		},
		{
			name:     "Empty stored status is pending",
			payment:  entity.PaymentRecord{TransactionID: "TX1"},
			token:    nil,
			expected: entity.StatusPending,
		},
		{
			name:     "Token proof with empty stored status",
			payment:  entity.PaymentRecord{TransactionID: "TX1"},
			token:    &entity.TokenRecord{TxnID: "TX1", Passcode: validToken},
			expected: entity.StatusSuccessful,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(&tc.payment, tc.token))
		})
	}
}

func TestIsRefundEligible(t *testing.T) {
	testCases := []struct {
		name     string
		payment  entity.PaymentRecord
		token    *entity.TokenRecord
		expected bool
	}{
		{
			name:     "NOT SUCCESFUL without token is eligible",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "NOT SUCCESFUL"},
			token:    nil,
			expected: true,
		},
		{
			name:     "Token proof vetoes the refund",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "NOT SUCCESFUL"},
			token:    &entity.TokenRecord{TxnID: "TX1", Luku: validToken},
			expected: false,
		},
		{
			name:     "Invalid token does not veto",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "NOT SUCCESFUL"},
			token:    &entity.TokenRecord{TxnID: "TX1", Luku: "000"},
			expected: true,
		},
		{
			name:     "SUCCESFUL is never eligible",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "SUCCESFUL"},
			token:    nil,
			expected: false,
		},
		{
			name:     "Pending is never eligible",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: ""},
			token:    nil,
			expected: false,
		},
		{
			name:     "Unknown status is never eligible",
			payment:  entity.PaymentRecord{TransactionID: "TX1", PaymentStatus: "REVERSED"},
			token:    nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsRefundEligible(&tc.payment, tc.token))
		})
	}
}
