package refund

import (
	"context"
	"testing"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/persistence"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
	coremocks "github.com/payless-tz/payment-reconciler/mocks/port/core"
	persistencemocks "github.com/payless-tz/payment-reconciler/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "12345678901234567890"

func newRefundService(t *testing.T) (*Service, *persistencemocks.MockPaymentRepository, *persistencemocks.MockTokenRepository) {
	mockPayments := persistencemocks.NewMockPaymentRepository(t)
	mockTokens := persistencemocks.NewMockTokenRepository(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	return NewService(mockPayments, mockTokens, mockLogger, ""), mockPayments, mockTokens
}

func TestExportByDateRange(t *testing.T) {
	ctx := context.Background()

	t.Run("Token-proven candidates are dropped", func(t *testing.T) {
		svc, mockPayments, mockTokens := newRefundService(t)

		candidates := []entity.PaymentRecord{
			{ID: 3, TransactionID: "TX3", MSISDN: "255712000003", PaymentStatus: "NOT SUCCESFUL", Amount: 3000},
			{ID: 2, TransactionID: "TX2", MSISDN: "255712000002", PaymentStatus: "NOT SUCCESFUL", Amount: 2000},
			{ID: 1, TransactionID: "TX1", MSISDN: "255712000001", PaymentStatus: "NOT SUCCESFUL", Amount: 1000},
		}

		mockPayments.EXPECT().FindRefundCandidates(mock.Anything, persistence.RefundRangeQuery{
			PaymentMethod: "M-PESA",
			StartDate:     "2024-01-01",
			EndDate:       "2024-01-31",
			ExcludePrefix: DefaultExcludePrefix,
		}).Return(candidates, nil).Once()
		mockTokens.EXPECT().FindByTxnIDs(mock.Anything, []string{"TX3", "TX2", "TX1"}).Return([]entity.TokenRecord{
			{TxnID: "TX2", Luku: validToken},
		}, nil).Once()

		rows, err := svc.ExportByDateRange(ctx, usecase.DateRangeRequest{
			StartDate:     "2024-01-01",
			EndDate:       "2024-01-31",
			PaymentMethod: "M-PESA",
		})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "TX3", rows[0].TransactionID)
		assert.Equal(t, "TX1", rows[1].TransactionID)
		assert.Equal(t, "NOT SUCCESFUL", rows[0].Status)
		assert.Equal(t, float64(3000), rows[0].Amount)
	})

	t.Run("Timestamps truncated to their day", func(t *testing.T) {
		svc, mockPayments, _ := newRefundService(t)

		mockPayments.EXPECT().FindRefundCandidates(mock.Anything, persistence.RefundRangeQuery{
			PaymentMethod: "SELCOM",
			StartDate:     "2024-03-05",
			EndDate:       "2024-03-06",
			ExcludePrefix: DefaultExcludePrefix,
		}).Return(nil, nil).Once()

		rows, err := svc.ExportByDateRange(ctx, usecase.DateRangeRequest{
			StartDate:     "2024-03-05T08:30:00Z",
			EndDate:       "2024-03-06T23:15:00Z",
			PaymentMethod: "SELCOM",
		})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Missing dates rejected", func(t *testing.T) {
		svc, _, _ := newRefundService(t)

		for _, req := range []usecase.DateRangeRequest{
			{StartDate: "", EndDate: "2024-01-31", PaymentMethod: "M-PESA"},
			{StartDate: "2024-01-01", EndDate: "", PaymentMethod: "M-PESA"},
			{StartDate: "", EndDate: "", PaymentMethod: "M-PESA"},
		} {
			rows, err := svc.ExportByDateRange(ctx, req)
			assert.Nil(t, rows)
			assert.ErrorIs(t, err, errs.ErrMissingDateRange)
		}
	})

	t.Run("Malformed dates rejected", func(t *testing.T) {
		svc, _, _ := newRefundService(t)

		rows, err := svc.ExportByDateRange(ctx, usecase.DateRangeRequest{
			StartDate:     "01/02/2024",
			EndDate:       "2024-01-31",
			PaymentMethod: "M-PESA",
		})
		assert.Nil(t, rows)
		assert.ErrorIs(t, err, errs.ErrMissingDateRange)
	})

	t.Run("Payment method validated", func(t *testing.T) {
		svc, _, _ := newRefundService(t)

		_, err := svc.ExportByDateRange(ctx, usecase.DateRangeRequest{
			StartDate: "2024-01-01", EndDate: "2024-01-31",
		})
		assert.ErrorIs(t, err, errs.ErrMissingPaymentMethod)

		_, err = svc.ExportByDateRange(ctx, usecase.DateRangeRequest{
			StartDate: "2024-01-01", EndDate: "2024-01-31", PaymentMethod: "VISA",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})

	t.Run("Custom exclusion prefix forwarded", func(t *testing.T) {
		mockPayments := persistencemocks.NewMockPaymentRepository(t)
		mockTokens := persistencemocks.NewMockTokenRepository(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
		svc := NewService(mockPayments, mockTokens, mockLogger, "INTERNAL")

		mockPayments.EXPECT().FindRefundCandidates(mock.Anything, persistence.RefundRangeQuery{
			PaymentMethod: "TIGO-PESA",
			StartDate:     "2024-01-01",
			EndDate:       "2024-01-02",
			ExcludePrefix: "INTERNAL",
		}).Return(nil, nil).Once()

		_, err := svc.ExportByDateRange(ctx, usecase.DateRangeRequest{
			StartDate: "2024-01-01", EndDate: "2024-01-02", PaymentMethod: "TIGO-PESA",
		})
		require.NoError(t, err)
	})

	t.Run("Store failure surfaces", func(t *testing.T) {
		svc, mockPayments, _ := newRefundService(t)

		storeErr := &errs.QueryError{Operation: "selecting refund candidates", Err: assert.AnError}
		mockPayments.EXPECT().FindRefundCandidates(mock.Anything, mock.Anything).Return(nil, storeErr).Once()

		rows, err := svc.ExportByDateRange(ctx, usecase.DateRangeRequest{
			StartDate: "2024-01-01", EndDate: "2024-01-31", PaymentMethod: "M-PESA",
		})
		assert.Nil(t, rows)
		assert.ErrorIs(t, err, errs.ErrRecordStore)
	})
}
