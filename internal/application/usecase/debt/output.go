// Package debt contains debt and receivable tracking use cases.
package debt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/domain/entity"
)

// PaymentOutput represents a payment in use case outputs.
type PaymentOutput struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	Date   string
	Note   string
}

// DebtOutput represents a debt with its derived settlement figures.
type DebtOutput struct {
	ID          uuid.UUID
	Person      string
	Type        entity.DebtType
	Amount      decimal.Decimal
	Description string
	DueDate     *string
	Status      entity.DebtStatus
	TotalPaid   decimal.Decimal
	Remaining   decimal.Decimal
	Progress    float64
	Payments    []PaymentOutput
	CreatedAt   time.Time
}

// NewDebtOutput maps a debt entity to its output representation,
// computing the derived fields once.
func NewDebtOutput(debt *entity.Debt) *DebtOutput {
	payments := make([]PaymentOutput, len(debt.Payments))
	for i, p := range debt.Payments {
		payments[i] = PaymentOutput{
			ID:     p.ID,
			Amount: p.Amount,
			Date:   p.Date,
			Note:   p.Note,
		}
	}

	return &DebtOutput{
		ID:          debt.ID,
		Person:      debt.Person,
		Type:        debt.Type,
		Amount:      debt.Amount,
		Description: debt.Description,
		DueDate:     debt.DueDate,
		Status:      debt.Status(),
		TotalPaid:   debt.TotalPaid(),
		Remaining:   debt.Remaining(),
		Progress:    debt.Progress(),
		Payments:    payments,
		CreatedAt:   debt.CreatedAt,
	}
}
