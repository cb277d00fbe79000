// Package analytics contains the derived-view use cases: balance, budget
// usage, expense trends, chart geometry and payoff projections. Everything
// here is recomputed on demand from the full store snapshots; there is no
// caching or incremental maintenance.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
)

// GetBalanceOutput represents the output of the balance computation.
type GetBalanceOutput struct {
	Balance decimal.Decimal
}

// GetBalanceUseCase computes the total balance over the whole ledger.
type GetBalanceUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(transactionRepo adapter.TransactionRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute sums income minus expenses over all transactions. The result is
// independent of insertion order.
func (uc *GetBalanceUseCase) Execute(ctx context.Context) (*GetBalanceOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	balance := decimal.Zero
	for _, t := range transactions {
		balance = balance.Add(t.SignedAmount())
	}
	return &GetBalanceOutput{Balance: balance}, nil
}

// sumExpensesByDate groups expense amounts by their wall-clock date string.
func sumExpensesByDate(transactions []*entity.Transaction) map[string]decimal.Decimal {
	byDate := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		byDate[t.Date] = byDate[t.Date].Add(t.Amount)
	}
	return byDate
}
