// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dompetku/backend/internal/application/usecase/debt"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	Person      string  `json:"person" binding:"required,min=1,max=255"`
	Type        string  `json:"type" binding:"required,oneof=DEBT RECEIVABLE"`
	Amount      int64   `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// AddPaymentRequest represents the request body for recording a payment.
type AddPaymentRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Note   string `json:"note,omitempty"`
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Note   string `json:"note,omitempty"`
}

// DebtResponse represents a debt with derived settlement figures.
type DebtResponse struct {
	ID          string            `json:"id"`
	Person      string            `json:"person"`
	Type        string            `json:"type"`
	Amount      string            `json:"amount"`
	Description string            `json:"description,omitempty"`
	DueDate     *string           `json:"due_date,omitempty"`
	Status      string            `json:"status"`
	TotalPaid   string            `json:"total_paid"`
	Remaining   string            `json:"remaining"`
	Progress    float64           `json:"progress"`
	Payments    []PaymentResponse `json:"payments"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ListDebtsResponse represents the debt list.
type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// ToDebtResponse maps a use case output to its API representation.
func ToDebtResponse(output *debt.DebtOutput) DebtResponse {
	payments := make([]PaymentResponse, len(output.Payments))
	for i, p := range output.Payments {
		payments[i] = PaymentResponse{
			ID:     p.ID.String(),
			Amount: p.Amount.String(),
			Date:   p.Date,
			Note:   p.Note,
		}
	}

	return DebtResponse{
		ID:          output.ID.String(),
		Person:      output.Person,
		Type:        string(output.Type),
		Amount:      output.Amount.String(),
		Description: output.Description,
		DueDate:     output.DueDate,
		Status:      string(output.Status),
		TotalPaid:   output.TotalPaid.String(),
		Remaining:   output.Remaining.String(),
		Progress:    output.Progress,
		Payments:    payments,
		CreatedAt:   output.CreatedAt,
	}
}
