package repository

import (
	"context"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/persistence"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/database"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PaymentRepository implements persistence.PaymentRepository using GORM.
type PaymentRepository struct {
	db       *gorm.DB
	logger   coreport.Logger
	errorMap *database.ErrorMapper
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:       db,
		logger:   logger,
		errorMap: database.NewErrorMapper(),
	}
}

// modelToEntity converts a payment model to an entity, flattening the
// nullable columns into zero values.
func modelToEntity(m *model.MobilePayment) entity.PaymentRecord {
	return entity.PaymentRecord{
		ID:                  m.ID,
		TransactionID:       deref(m.TransactionID),
		MSISDN:              deref(m.MSISDN),
		CustomerReferenceID: deref(m.CustomerReferenceID),
		PaymentMethod:       deref(m.PaymentMethod),
		PaymentStatus:       deref(m.PaymentStatus),
		Amount:              derefFloat(m.Amount),
		TransactionDate:     deref(m.TransactionDate),
		MeterType:           deref(m.MeterType),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// pageScope applies the listing filters shared by FindPage and Count.
func pageScope(db *gorm.DB, q persistence.PaymentQuery) *gorm.DB {
	if q.Search != "" {
		like := "%" + q.Search + "%"
		db = db.Where(
			"customer_reference_id LIKE ? OR msisdn LIKE ? OR transaction_id LIKE ?",
			like, like, like,
		)
	}
	if q.Status != "" {
		db = db.Where("payment_status = ?", q.Status)
	}
	if q.PaymentMethod != "" {
		db = db.Where("payment_method = ?", q.PaymentMethod)
	}
	if q.StartDate != "" {
		db = db.Where("transaction_date >= ?", q.StartDate)
	}
	if q.EndDate != "" {
		db = db.Where("transaction_date <= ?", q.EndDate)
	}
	return db
}

// FindPage returns one page of payments matching the query, newest first.
func (r *PaymentRepository) FindPage(ctx context.Context, q persistence.PaymentQuery) ([]entity.PaymentRecord, error) {
	var models []model.MobilePayment
	result := pageScope(r.db.WithContext(ctx), q).
		Order("id DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&models)
	if result.Error != nil {
		return nil, r.queryError("listing payments", result.Error)
	}
	return r.toEntities(models), nil
}

// Count returns the total number of payments matching the query.
func (r *PaymentRepository) Count(ctx context.Context, q persistence.PaymentQuery) (int64, error) {
	var count int64
	result := pageScope(r.db.WithContext(ctx).Model(&model.MobilePayment{}), q).Count(&count)
	if result.Error != nil {
		return 0, r.queryError("counting payments", result.Error)
	}
	return count, nil
}

// FindRefundCandidates selects NOT SUCCESFUL payments for the date-range
// refund strategy: method match, stored status NOT SUCCESFUL, transaction ID
// non-empty and outside the exclusion prefix, transaction date inside the
// inclusive range. Ordered id DESC so identical inputs produce identical
// ordered output.
func (r *PaymentRepository) FindRefundCandidates(ctx context.Context, q persistence.RefundRangeQuery) ([]entity.PaymentRecord, error) {
	var models []model.MobilePayment
	db := r.db.WithContext(ctx).
		Where("payment_method = ?", q.PaymentMethod).
		Where("payment_status = ?", string(entity.PaymentStatusNotSuccessful)).
		Where("transaction_id IS NOT NULL AND transaction_id <> ''").
		Where("transaction_date >= ? AND transaction_date <= ?", q.StartDate, q.EndDate)
	if q.ExcludePrefix != "" {
		db = db.Where("transaction_id NOT LIKE ?", q.ExcludePrefix+"%")
	}
	result := db.Order("id DESC").Find(&models)
	if result.Error != nil {
		return nil, r.queryError("selecting refund candidates", result.Error)
	}
	return r.toEntities(models), nil
}

// FindByTransactionIDs returns payments whose transaction ID is in ids for
// one payment method. Empty-string IDs are excluded at the query level so
// they can never join.
func (r *PaymentRepository) FindByTransactionIDs(ctx context.Context, ids []string, method string) ([]entity.PaymentRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []model.MobilePayment
	result := r.db.WithContext(ctx).
		Where("transaction_id IN ?", ids).
		Where("transaction_id <> ''").
		Where("payment_method = ?", method).
		Order("id DESC").
		Find(&models)
	if result.Error != nil {
		return nil, r.queryError("matching uploaded transaction IDs", result.Error)
	}
	return r.toEntities(models), nil
}

func (r *PaymentRepository) toEntities(models []model.MobilePayment) []entity.PaymentRecord {
	records := make([]entity.PaymentRecord, 0, len(models))
	for i := range models {
		records = append(records, modelToEntity(&models[i]))
	}
	return records
}

func (r *PaymentRepository) queryError(operation string, err error) error {
	r.logger.Error("Payment query failed", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return r.errorMap.MapError(err, operation)
}
