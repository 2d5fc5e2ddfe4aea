// Package refund implements the two refund extraction strategies. Both
// funnel through the reconcile package so that a valid token always vetoes a
// refund, whatever the stored payment status claims.
package refund

import (
	"context"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/persistence"
)

// DefaultExcludePrefix marks internally-generated reference codes that are
// never refundable through the mobile-money channels.
const DefaultExcludePrefix = "PAYLESS"

// Service implements usecase.RefundUseCase.
type Service struct {
	payments      persistence.PaymentRepository
	tokens        persistence.TokenRepository
	logger        coreport.Logger
	excludePrefix string
}

// NewService creates a refund service. excludePrefix may be empty to accept
// the default.
func NewService(
	payments persistence.PaymentRepository,
	tokens persistence.TokenRepository,
	logger coreport.Logger,
	excludePrefix string,
) *Service {
	if excludePrefix == "" {
		excludePrefix = DefaultExcludePrefix
	}
	return &Service{
		payments:      payments,
		tokens:        tokens,
		logger:        logger,
		excludePrefix: excludePrefix,
	}
}

func validatePaymentMethod(method string) error {
	if method == "" {
		return errs.ErrMissingPaymentMethod
	}
	if !entity.IsValidPaymentMethod(method) {
		return errs.ErrInvalidPaymentMethod
	}
	return nil
}

// tokensByTxnID bulk-fetches token rows for the given payments and indexes
// them by txn_id. Must run only after the payment set is known; its filter
// depends on the payments' transaction IDs.
func (s *Service) tokensByTxnID(ctx context.Context, payments []entity.PaymentRecord) (map[string]*entity.TokenRecord, error) {
	ids := make([]string, 0, len(payments))
	seen := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		if !p.HasTransactionID() {
			continue
		}
		if _, ok := seen[p.TransactionID]; ok {
			continue
		}
		seen[p.TransactionID] = struct{}{}
		ids = append(ids, p.TransactionID)
	}
	if len(ids) == 0 {
		return map[string]*entity.TokenRecord{}, nil
	}

	tokens, err := s.tokens.FindByTxnIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to fetch token history for refund batch", map[string]any{
			"txn_ids": len(ids),
			"error":   err.Error(),
		})
		return nil, err
	}

	byID := make(map[string]*entity.TokenRecord, len(tokens))
	for i := range tokens {
		byID[tokens[i].TxnID] = &tokens[i]
	}
	return byID, nil
}
