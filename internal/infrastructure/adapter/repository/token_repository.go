package repository

import (
	"context"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/database"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TokenRepository implements persistence.TokenRepository using GORM.
type TokenRepository struct {
	db       *gorm.DB
	logger   coreport.Logger
	errorMap *database.ErrorMapper
}

// NewTokenRepository creates a new TokenRepository instance
func NewTokenRepository(db *gorm.DB, logger coreport.Logger) *TokenRepository {
	return &TokenRepository{
		db:       db,
		logger:   logger,
		errorMap: database.NewErrorMapper(),
	}
}

// FindByTxnIDs returns every token row whose txn_id is in ids.
func (r *TokenRepository) FindByTxnIDs(ctx context.Context, ids []string) ([]entity.TokenRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []model.TokenHistory
	result := r.db.WithContext(ctx).
		Where("txn_id IN ?", ids).
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Token history query failed", map[string]any{
			"txn_ids": len(ids),
			"error":   result.Error.Error(),
		})
		return nil, r.errorMap.MapError(result.Error, "fetching token history")
	}

	records := make([]entity.TokenRecord, 0, len(models))
	for i := range models {
		m := &models[i]
		records = append(records, entity.TokenRecord{
			TxnID:    deref(m.TxnID),
			Luku:     deref(m.Luku),
			Passcode: deref(m.Passcode),
			Units:    deref(m.Units),
		})
	}
	return records, nil
}
