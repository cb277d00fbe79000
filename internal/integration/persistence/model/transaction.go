// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// The ID is allocated by the repository at append time, not by the driver.
type TransactionModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement:false"`
	Title           string          `gorm:"type:varchar(255);not null"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	Date            string          `gorm:"type:varchar(10);not null;index"`
	Time            string          `gorm:"type:varchar(5);not null"`
	Icon            string          `gorm:"type:varchar(64)"`
	Color           string          `gorm:"type:varchar(32)"`
	SourceKind      *string         `gorm:"type:varchar(16)"`
	SourceDebtID    *uuid.UUID      `gorm:"type:uuid;index"`
	SourcePaymentID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	transaction := &entity.Transaction{
		ID:        m.ID,
		Title:     m.Title,
		Type:      entity.TransactionType(m.Type),
		Amount:    m.Amount,
		Date:      m.Date,
		Time:      m.Time,
		Icon:      m.Icon,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}

	if m.SourceKind != nil && m.SourceDebtID != nil {
		transaction.Source = &entity.SourceRef{
			Kind:      entity.SourceKind(*m.SourceKind),
			DebtID:    *m.SourceDebtID,
			PaymentID: m.SourcePaymentID,
		}
	}

	return transaction
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	m := &TransactionModel{
		ID:        transaction.ID,
		Title:     transaction.Title,
		Type:      string(transaction.Type),
		Amount:    transaction.Amount,
		Date:      transaction.Date,
		Time:      transaction.Time,
		Icon:      transaction.Icon,
		Color:     transaction.Color,
		CreatedAt: transaction.CreatedAt,
	}

	if transaction.Source != nil {
		kind := string(transaction.Source.Kind)
		debtID := transaction.Source.DebtID
		m.SourceKind = &kind
		m.SourceDebtID = &debtID
		m.SourcePaymentID = transaction.Source.PaymentID
	}

	return m
}
