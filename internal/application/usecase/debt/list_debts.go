// Package debt contains debt and receivable tracking use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/dompetku/backend/internal/application/adapter"
)

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts []*DebtOutput
}

// ListDebtsUseCase handles listing all debts and receivables.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute returns all debts, newest-first.
func (uc *ListDebtsUseCase) Execute(ctx context.Context) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	outputs := make([]*DebtOutput, len(debts))
	for i, d := range debts {
		outputs[i] = NewDebtOutput(d)
	}
	return &ListDebtsOutput{Debts: outputs}, nil
}
