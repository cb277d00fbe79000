// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
	"github.com/dompetku/backend/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create stores a new debt with its payments, if any.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	return r.db.WithContext(ctx).Create(model.DebtFromEntity(debt)).Error
}

// FindByID retrieves a debt with its payments in insertion order.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindAll retrieves every debt newest-first, each with its payments in
// insertion order.
func (r *debtRepository) FindAll(ctx context.Context) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i, dm := range debtModels {
		debts[i] = dm.ToEntity()
	}
	return debts, nil
}

// AppendPayment adds a payment at the end of the debt's payment list,
// deriving its position from the current payment count.
func (r *debtRepository) AppendPayment(ctx context.Context, debtID uuid.UUID, payment entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var debtModel model.DebtModel
		if err := tx.Where("id = ?", debtID).First(&debtModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrDebtNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.PaymentModel{}).
			Where("debt_id = ?", debtID).
			Count(&count).Error; err != nil {
			return err
		}

		paymentModel := model.PaymentModel{
			ID:       payment.ID,
			DebtID:   debtID,
			Amount:   payment.Amount,
			Date:     payment.Date,
			Note:     payment.Note,
			Position: int(count),
		}
		return tx.Create(&paymentModel).Error
	})
}

// Delete removes the debt and its payments. Absent IDs are a no-op.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("debt_id = ?", id).Delete(&model.PaymentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.DebtModel{}).Error
	})
}
