package refund

import (
	"context"
	"testing"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("Every supplied ID lands in exactly one partition", func(t *testing.T) {
		svc, mockPayments, mockTokens := newRefundService(t)

		payments := []entity.PaymentRecord{
			{ID: 1, TransactionID: "TX-FAIL", MSISDN: "255712000001", PaymentStatus: "NOT SUCCESFUL", Amount: 1000},
			{ID: 2, TransactionID: "TX-OK", MSISDN: "255712000002", PaymentStatus: "SUCCESFUL", Amount: 2000},
			{ID: 3, TransactionID: "TX-TOKEN", MSISDN: "255712000003", PaymentStatus: "NOT SUCCESFUL", Amount: 3000},
		}
		ids := []string{"TX-FAIL", "TX-OK", "TX-TOKEN", "TX-GHOST"}

		mockPayments.EXPECT().FindByTransactionIDs(mock.Anything, ids, "M-PESA").Return(payments, nil).Once()
		mockTokens.EXPECT().FindByTxnIDs(mock.Anything, []string{"TX-FAIL", "TX-OK", "TX-TOKEN"}).
			Return([]entity.TokenRecord{{TxnID: "TX-TOKEN", Luku: validToken}}, nil).Once()

		report, err := svc.ReconcileUpload(ctx, usecase.UploadRequest{
			TransactionIDs: ids,
			PaymentMethod:  "M-PESA",
		})

		require.NoError(t, err)
		require.Len(t, report.Unsuccessful, 1)
		assert.Equal(t, "TX-FAIL", report.Unsuccessful[0].TransactionID)
		assert.Equal(t, "NOT SUCCESSFUL", report.Unsuccessful[0].Status)
		assert.Equal(t, float64(1000), report.Unsuccessful[0].Amount)

		require.Len(t, report.Successful, 2)
		assert.Equal(t, "TX-OK", report.Successful[0].TransactionID)
		assert.Equal(t, "SUCCESSFUL", report.Successful[0].Status)
		// Token proof moves a stored NOT SUCCESFUL into the successful bucket.
		assert.Equal(t, "TX-TOKEN", report.Successful[1].TransactionID)

		require.Len(t, report.NotFound, 1)
		assert.Equal(t, "TX-GHOST", report.NotFound[0].TransactionID)
		assert.Equal(t, "NOT FOUND", report.NotFound[0].Status)

		assert.Equal(t, 4, report.Total)
	})

	t.Run("Duplicates and blanks deduplicated before matching", func(t *testing.T) {
		svc, mockPayments, mockTokens := newRefundService(t)

		mockPayments.EXPECT().FindByTransactionIDs(mock.Anything, []string{"TX1", "TX2"}, "SELCOM").
			Return([]entity.PaymentRecord{
				{ID: 1, TransactionID: "TX1", PaymentStatus: "NOT SUCCESFUL"},
			}, nil).Once()
		mockTokens.EXPECT().FindByTxnIDs(mock.Anything, []string{"TX1"}).Return(nil, nil).Once()

		report, err := svc.ReconcileUpload(ctx, usecase.UploadRequest{
			TransactionIDs: []string{"TX1", "", "TX2", "TX1", ""},
			PaymentMethod:  "SELCOM",
		})

		require.NoError(t, err)
		assert.Len(t, report.Unsuccessful, 1)
		assert.Len(t, report.NotFound, 1)
		assert.Equal(t, "TX2", report.NotFound[0].TransactionID)
		assert.Equal(t, 2, report.Total)
	})

	t.Run("No usable IDs rejected", func(t *testing.T) {
		svc, _, _ := newRefundService(t)

		for _, ids := range [][]string{nil, {}, {"", "", ""}} {
			report, err := svc.ReconcileUpload(ctx, usecase.UploadRequest{
				TransactionIDs: ids,
				PaymentMethod:  "M-PESA",
			})
			assert.Nil(t, report)
			assert.ErrorIs(t, err, errs.ErrMissingTransactionIDs)
		}
	})

	t.Run("Payment method validated", func(t *testing.T) {
		svc, _, _ := newRefundService(t)

		_, err := svc.ReconcileUpload(ctx, usecase.UploadRequest{TransactionIDs: []string{"TX1"}})
		assert.ErrorIs(t, err, errs.ErrMissingPaymentMethod)

		_, err = svc.ReconcileUpload(ctx, usecase.UploadRequest{
			TransactionIDs: []string{"TX1"}, PaymentMethod: "CASH",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})

	t.Run("Nothing matched reports everything not found", func(t *testing.T) {
		svc, mockPayments, _ := newRefundService(t)

		mockPayments.EXPECT().FindByTransactionIDs(mock.Anything, []string{"A", "B"}, "M-PESA").
			Return(nil, nil).Once()

		report, err := svc.ReconcileUpload(ctx, usecase.UploadRequest{
			TransactionIDs: []string{"A", "B"},
			PaymentMethod:  "M-PESA",
		})

		require.NoError(t, err)
		assert.Empty(t, report.Unsuccessful)
		assert.Empty(t, report.Successful)
		require.Len(t, report.NotFound, 2)
		assert.Equal(t, 2, report.Total)
	})

	t.Run("Store failure surfaces", func(t *testing.T) {
		svc, mockPayments, _ := newRefundService(t)

		storeErr := &errs.QueryError{Operation: "matching uploaded transaction IDs", Err: assert.AnError}
		mockPayments.EXPECT().FindByTransactionIDs(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storeErr).Once()

		report, err := svc.ReconcileUpload(ctx, usecase.UploadRequest{
			TransactionIDs: []string{"TX1"},
			PaymentMethod:  "M-PESA",
		})
		assert.Nil(t, report)
		assert.ErrorIs(t, err, errs.ErrRecordStore)
	})
}
