// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a ledger transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Wall-clock layouts used across the ledger. The application is
// single-device and timezone-naive: dates and times are stored exactly
// as the user sees them locally.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// SourceKind identifies which debt-domain event produced a mirrored
// transaction.
type SourceKind string

const (
	SourceKindDebtCreation SourceKind = "DEBT_CREATION"
	SourceKindDebtPayment  SourceKind = "DEBT_PAYMENT"
)

// SourceRef is an explicit link from a mirrored transaction back to the
// debt-domain event that produced it. Transactions entered directly by the
// user carry no source ref. Retracting a debt deletes every transaction
// whose ref points at it.
type SourceRef struct {
	Kind      SourceKind
	DebtID    uuid.UUID
	PaymentID *uuid.UUID
}

// Transaction represents a single cash movement in the ledger. Transactions
// are immutable once appended; the only supported mutation is deletion.
type Transaction struct {
	ID        int64 // assigned by the ledger repository at append time
	Title     string
	Type      TransactionType
	Amount    decimal.Decimal // whole-Rupiah, always positive; Type carries the sign
	Date      string          // YYYY-MM-DD, local wall-clock
	Time      string          // HH:mm, local wall-clock
	Icon      string
	Color     string
	Source    *SourceRef
	CreatedAt time.Time
}

// NewTransaction creates a new Transaction entity. The ID is left zero and
// is assigned by the ledger repository when the transaction is appended.
func NewTransaction(
	title string,
	transactionType TransactionType,
	amount decimal.Decimal,
	date string,
	timeOfDay string,
	icon string,
	color string,
) *Transaction {
	return &Transaction{
		Title:     title,
		Type:      transactionType,
		Amount:    amount,
		Date:      date,
		Time:      timeOfDay,
		Icon:      icon,
		Color:     color,
		CreatedAt: time.Now(),
	}
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for income, negative for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
