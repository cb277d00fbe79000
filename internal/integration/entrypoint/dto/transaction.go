// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dompetku/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for appending a
// ledger entry. Amounts are whole Rupiah.
type CreateTransactionRequest struct {
	Title  string `json:"title" binding:"required,min=1,max=255"`
	Type   string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount int64  `json:"amount" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Icon   string `json:"icon,omitempty"`
	Color  string `json:"color,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Mirrored  bool      `json:"mirrored"`
	CreatedAt time.Time `json:"created_at"`
}

// ListTransactionsResponse represents the flat ledger read. Export
// collaborators consume the same shape.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse maps a use case output to its API representation.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:        output.ID,
		Title:     output.Title,
		Type:      string(output.Type),
		Amount:    output.Amount.String(),
		Date:      output.Date,
		Time:      output.Time,
		Icon:      output.Icon,
		Color:     output.Color,
		Mirrored:  output.Mirrored,
		CreatedAt: output.CreatedAt,
	}
}
