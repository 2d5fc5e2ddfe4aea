package refund

import (
	"context"
	"fmt"
	"time"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/persistence"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
	"github.com/payless-tz/payment-reconciler/internal/domain/usecase/reconcile"
)

// ExportByDateRange implements strategy A: select NOT SUCCESFUL payments in
// the date range for one channel, then drop every payment whose token
// history proves the credit was actually issued.
//
// transaction_date is stored as YYYY-MM-DD text, so day-boundary
// normalization reduces to comparing the date-only portion as an inclusive
// string range. Re-running with identical inputs against an unchanged store
// yields an identical ordered result.
func (s *Service) ExportByDateRange(ctx context.Context, req usecase.DateRangeRequest) ([]entity.RefundExportRow, error) {
	start, end, err := normalizeDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := validatePaymentMethod(req.PaymentMethod); err != nil {
		return nil, err
	}

	candidates, err := s.payments.FindRefundCandidates(ctx, persistence.RefundRangeQuery{
		PaymentMethod: req.PaymentMethod,
		StartDate:     start,
		EndDate:       end,
		ExcludePrefix: s.excludePrefix,
	})
	if err != nil {
		s.logger.Error("Failed to fetch refund candidates", map[string]any{
			"payment_method": req.PaymentMethod,
			"start_date":     start,
			"end_date":       end,
			"error":          err.Error(),
		})
		return nil, err
	}

	tokenMap, err := s.tokensByTxnID(ctx, candidates)
	if err != nil {
		return nil, err
	}

	rows := make([]entity.RefundExportRow, 0, len(candidates))
	for i := range candidates {
		p := &candidates[i]
		if !reconcile.IsRefundEligible(p, tokenMap[p.TransactionID]) {
			continue
		}
		rows = append(rows, entity.NewRefundExportRow(p))
	}

	s.logger.Info("Refund export built", map[string]any{
		"payment_method": req.PaymentMethod,
		"start_date":     start,
		"end_date":       end,
		"candidates":     len(candidates),
		"eligible":       len(rows),
	})
	return rows, nil
}

// normalizeDateRange validates both bounds and returns them in date-only
// form. Inputs with a time component are truncated to their day.
func normalizeDateRange(startDate, endDate string) (string, string, error) {
	if startDate == "" || endDate == "" {
		return "", "", errs.ErrMissingDateRange
	}
	start, err := parseDay(startDate)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid start date %q", errs.ErrMissingDateRange, startDate)
	}
	end, err := parseDay(endDate)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid end date %q", errs.ErrMissingDateRange, endDate)
	}
	return start.Format(time.DateOnly), end.Format(time.DateOnly), nil
}

func parseDay(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
