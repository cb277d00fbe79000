// Package transaction contains ledger transaction use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for appending a ledger entry.
type CreateTransactionInput struct {
	Title  string
	Type   entity.TransactionType
	Amount decimal.Decimal
	Date   string // YYYY-MM-DD
	Time   string // HH:mm
	Icon   string
	Color  string
}

// CreateTransactionOutput represents the output of appending a ledger entry.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles direct user entry of ledger transactions.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute validates the input and appends the transaction to the ledger.
// The repository assigns the monotonic ID.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionTitle,
			"title is required",
			domainerror.ErrEmptyTransactionTitle,
		)
	}

	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'INCOME' or 'EXPENSE'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	if _, err := time.Parse(entity.DateLayout, input.Date); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be a valid YYYY-MM-DD value",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if _, err := time.Parse(entity.TimeLayout, input.Time); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionTime,
			"time must be a valid HH:mm value",
			domainerror.ErrInvalidTransactionTime,
		)
	}

	transaction := entity.NewTransaction(
		input.Title,
		input.Type,
		input.Amount,
		input.Date,
		input.Time,
		input.Icon,
		input.Color,
	)

	if err := uc.transactionRepo.Append(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: NewTransactionOutput(transaction),
	}, nil
}

// validateAmount rejects amounts that are not positive whole numbers.
// Amounts are whole-Rupiah values with no minor unit.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(0)) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a positive whole number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}
