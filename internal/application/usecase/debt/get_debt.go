// Package debt contains debt and receivable tracking use cases.
package debt

import (
	"context"

	"github.com/google/uuid"

	"github.com/dompetku/backend/internal/application/adapter"
)

// GetDebtUseCase handles fetching a single debt.
type GetDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewGetDebtUseCase creates a new GetDebtUseCase instance.
func NewGetDebtUseCase(debtRepo adapter.DebtRepository) *GetDebtUseCase {
	return &GetDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute returns the debt with derived settlement figures, or
// ErrDebtNotFound.
func (uc *GetDebtUseCase) Execute(ctx context.Context, debtID uuid.UUID) (*DebtOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	return NewDebtOutput(debt), nil
}
