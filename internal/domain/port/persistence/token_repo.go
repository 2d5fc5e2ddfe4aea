package persistence

import (
	"context"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
)

// TokenRepository reads from the token history table written by the external
// vending process. Correlation to payments is by value match on txn_id only;
// there is no foreign key.
type TokenRepository interface {
	// FindByTxnIDs returns all token rows whose txn_id is in ids. Callers
	// must pass only non-empty IDs; the bulk fetch exists so reconciliation
	// issues one query per batch instead of one per payment.
	//
	// Possible errors:
	// - ErrRecordStore: if the underlying query fails
	FindByTxnIDs(ctx context.Context, ids []string) ([]entity.TokenRecord, error)
}
