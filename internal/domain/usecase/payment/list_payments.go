// Package payment implements the paginated payment listing: a bounded query
// against the payment store with each row merged against its token record.
package payment

import (
	"context"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/persistence"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
)

// Pagination defaults applied when the caller sends nothing or garbage.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Service implements usecase.PaymentUseCase.
type Service struct {
	payments persistence.PaymentRepository
	tokens   persistence.TokenRepository
	logger   coreport.Logger
}

// NewService creates a payment listing service.
func NewService(
	payments persistence.PaymentRepository,
	tokens persistence.TokenRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		payments: payments,
		tokens:   tokens,
		logger:   logger,
	}
}

// ListPayments returns one page of payments merged with token data.
//
// The token lookup is a single bulk query keyed by the page's non-empty
// transaction IDs, so the query count stays constant regardless of page
// size. No classification status is computed here; callers apply
// reconcile.Classify as needed for display.
func (s *Service) ListPayments(ctx context.Context, req usecase.ListPaymentsRequest) (*usecase.PaymentPage, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	query := persistence.PaymentQuery{
		Search:        req.Search,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		Offset:        (page - 1) * pageSize,
		Limit:         pageSize,
	}

	totalCount, err := s.payments.Count(ctx, query)
	if err != nil {
		s.logger.Error("Failed to count payments", map[string]any{
			"search": req.Search,
			"status": req.Status,
			"error":  err.Error(),
		})
		return nil, err
	}

	records, err := s.payments.FindPage(ctx, query)
	if err != nil {
		s.logger.Error("Failed to fetch payment page", map[string]any{
			"page":      page,
			"page_size": pageSize,
			"error":     err.Error(),
		})
		return nil, err
	}

	tokenMap, err := s.fetchTokens(ctx, records)
	if err != nil {
		// No partial results: a page without its token merge would
		// misreport token-proven successes, so the whole listing fails.
		return nil, err
	}

	items := make([]entity.PaymentView, 0, len(records))
	for _, rec := range records {
		view := entity.PaymentView{Payment: rec}
		if rec.HasTransactionID() {
			if tok, ok := tokenMap[rec.TransactionID]; ok {
				view.Token = tok
			}
		}
		items = append(items, view)
	}

	totalPages := 0
	if totalCount > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}

	return &usecase.PaymentPage{
		Items: items,
		Pagination: usecase.Pagination{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalCount:      totalCount,
			Limit:           pageSize,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}, nil
}

// fetchTokens bulk-loads token rows for the page and indexes them by txn_id.
// When several token rows share a txn_id the last one returned wins, which
// reproduces the store's observed overwrite semantics.
func (s *Service) fetchTokens(ctx context.Context, records []entity.PaymentRecord) (map[string]*entity.TokenRecord, error) {
	ids := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if !rec.HasTransactionID() {
			continue
		}
		if _, ok := seen[rec.TransactionID]; ok {
			continue
		}
		seen[rec.TransactionID] = struct{}{}
		ids = append(ids, rec.TransactionID)
	}
	if len(ids) == 0 {
		return map[string]*entity.TokenRecord{}, nil
	}

	tokens, err := s.tokens.FindByTxnIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to fetch token history for page", map[string]any{
			"txn_ids": len(ids),
			"error":   err.Error(),
		})
		return nil, err
	}

	tokenMap := make(map[string]*entity.TokenRecord, len(tokens))
	for i := range tokens {
		tokenMap[tokens[i].TxnID] = &tokens[i]
	}
	return tokenMap, nil
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
