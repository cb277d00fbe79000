// Package transaction contains ledger transaction use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/dompetku/backend/internal/application/adapter"
)

// ListTransactionsOutput represents the output of listing ledger transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles listing the ledger. The flat list it
// returns is also what export collaborators (PDF/Excel) consume.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns all transactions, newest-first by insertion.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	outputs := make([]*TransactionOutput, len(transactions))
	for i, t := range transactions {
		outputs[i] = NewTransactionOutput(t)
	}

	return &ListTransactionsOutput{Transactions: outputs}, nil
}
