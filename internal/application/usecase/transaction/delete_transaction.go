// Package transaction contains ledger transaction use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/dompetku/backend/internal/application/adapter"
)

// DeleteTransactionUseCase handles ledger transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute removes the transaction with the given ID. Deletion is
// idempotent: an unknown ID is a no-op.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, id int64) error {
	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
