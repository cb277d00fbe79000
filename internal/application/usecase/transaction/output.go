// Package transaction contains ledger transaction use cases.
package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/domain/entity"
)

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID        int64
	Title     string
	Type      entity.TransactionType
	Amount    decimal.Decimal
	Date      string
	Time      string
	Icon      string
	Color     string
	Mirrored  bool // true when the transaction was produced by a debt event
	CreatedAt time.Time
}

// NewTransactionOutput maps a transaction entity to its output representation.
func NewTransactionOutput(transaction *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:        transaction.ID,
		Title:     transaction.Title,
		Type:      transaction.Type,
		Amount:    transaction.Amount,
		Date:      transaction.Date,
		Time:      transaction.Time,
		Icon:      transaction.Icon,
		Color:     transaction.Color,
		Mirrored:  transaction.Source != nil,
		CreatedAt: transaction.CreatedAt,
	}
}
