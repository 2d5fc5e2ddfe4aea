package refund

import (
	"context"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
)

// ReconcileUpload implements strategy B: match externally supplied
// transaction IDs against the store and partition them.
//
// The join key is the transaction ID throughout. An earlier variant of this
// feature joined token rows by the payment's numeric row id; that join is
// not equivalent (token_history_data ids do not correspond to payment ids)
// and was rejected in favor of the key used everywhere else.
func (s *Service) ReconcileUpload(ctx context.Context, req usecase.UploadRequest) (*entity.UploadReport, error) {
	ids := dedupeNonEmpty(req.TransactionIDs)
	if len(ids) == 0 {
		return nil, errs.ErrMissingTransactionIDs
	}
	if err := validatePaymentMethod(req.PaymentMethod); err != nil {
		return nil, err
	}

	payments, err := s.payments.FindByTransactionIDs(ctx, ids, req.PaymentMethod)
	if err != nil {
		s.logger.Error("Failed to fetch payments for uploaded batch", map[string]any{
			"payment_method": req.PaymentMethod,
			"supplied_ids":   len(ids),
			"error":          err.Error(),
		})
		return nil, err
	}

	tokenMap, err := s.tokensByTxnID(ctx, payments)
	if err != nil {
		return nil, err
	}

	// Transaction IDs proven successful by a valid luku or passcode.
	validTokenIDs := make(map[string]struct{}, len(tokenMap))
	for id, tok := range tokenMap {
		if tok.HasValidToken() {
			validTokenIDs[id] = struct{}{}
		}
	}

	report := &entity.UploadReport{
		Unsuccessful: make([]entity.RefundExportRow, 0, len(payments)),
		Successful:   make([]entity.RefundExportRow, 0, len(payments)),
		NotFound:     make([]entity.RefundExportRow, 0),
	}

	matched := make(map[string]struct{}, len(payments))
	for i := range payments {
		p := &payments[i]
		matched[p.TransactionID] = struct{}{}

		_, tokenProven := validTokenIDs[p.TransactionID]
		row := entity.RefundExportRow{
			TransactionID: p.TransactionID,
			MSISDN:        p.MSISDN,
			Amount:        p.Amount,
		}
		if p.StatusIs(entity.PaymentStatusNotSuccessful) && !tokenProven {
			row.Status = string(entity.StatusNotSuccessful)
			report.Unsuccessful = append(report.Unsuccessful, row)
		} else {
			row.Status = string(entity.StatusSuccessful)
			report.Successful = append(report.Successful, row)
		}
	}

	// Supplied IDs with no payment row at all are a first-class outcome,
	// not an error.
	for _, id := range ids {
		if _, ok := matched[id]; ok {
			continue
		}
		report.NotFound = append(report.NotFound, entity.RefundExportRow{
			TransactionID: id,
			Status:        string(entity.StatusNotFound),
		})
	}

	report.Total = len(report.Unsuccessful) + len(report.Successful) + len(report.NotFound)

	s.logger.Info("Uploaded batch reconciled", map[string]any{
		"payment_method": req.PaymentMethod,
		"supplied_ids":   len(ids),
		"unsuccessful":   len(report.Unsuccessful),
		"successful":     len(report.Successful),
		"not_found":      len(report.NotFound),
	})
	return report, nil
}

// dedupeNonEmpty drops empty strings and duplicates, preserving first-seen
// order so repeated runs partition identically.
func dedupeNonEmpty(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
