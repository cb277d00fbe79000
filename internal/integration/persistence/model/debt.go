// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Person      string          `gorm:"type:varchar(255);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	Description string          `gorm:"type:text"`
	DueDate     *string         `gorm:"type:varchar(10)"`
	CreatedAt   time.Time       `gorm:"not null;index"`

	// Payments are loaded explicitly with Preload, ordered by position.
	Payments []PaymentModel `gorm:"foreignKey:DebtID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// PaymentModel represents the payments table in the database. Position
// preserves insertion order within a debt.
type PaymentModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DebtID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	Date     string          `gorm:"type:varchar(16);not null"`
	Note     string          `gorm:"type:text"`
	Position int             `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a DebtModel with its payments to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	payments := make([]entity.Payment, len(m.Payments))
	for i, p := range m.Payments {
		payments[i] = entity.Payment{
			ID:     p.ID,
			Amount: p.Amount,
			Date:   p.Date,
			Note:   p.Note,
		}
	}

	return &entity.Debt{
		ID:          m.ID,
		Person:      m.Person,
		Type:        entity.DebtType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		DueDate:     m.DueDate,
		Payments:    payments,
		CreatedAt:   m.CreatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	payments := make([]PaymentModel, len(debt.Payments))
	for i, p := range debt.Payments {
		payments[i] = PaymentModel{
			ID:       p.ID,
			DebtID:   debt.ID,
			Amount:   p.Amount,
			Date:     p.Date,
			Note:     p.Note,
			Position: i,
		}
	}

	return &DebtModel{
		ID:          debt.ID,
		Person:      debt.Person,
		Type:        string(debt.Type),
		Amount:      debt.Amount,
		Description: debt.Description,
		DueDate:     debt.DueDate,
		CreatedAt:   debt.CreatedAt,
		Payments:    payments,
	}
}
