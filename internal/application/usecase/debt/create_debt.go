// Package debt contains debt and receivable tracking use cases.
package debt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/application/usecase/reconciliation"
	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	Person      string
	Type        entity.DebtType
	Amount      decimal.Decimal
	Description string
	DueDate     *string // YYYY-MM-DD, optional
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *DebtOutput
}

// CreateDebtUseCase handles debt creation. Creating a debt mirrors a
// ledger transaction through the reconciliation bridge and emits a
// notification.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
	bridge   *reconciliation.Bridge
	sink     adapter.NotificationSink
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(
	debtRepo adapter.DebtRepository,
	bridge *reconciliation.Bridge,
	sink adapter.NotificationSink,
) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
		bridge:   bridge,
		sink:     sink,
	}
}

// Execute validates the input, stores the debt and mirrors it into the
// ledger. Validation here is authoritative: the store never trusts the UI
// layer to have checked anything.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	if input.Person == "" {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeEmptyDebtPerson,
			"person is required",
			domainerror.ErrEmptyDebtPerson,
		)
	}

	if input.Type != entity.DebtTypeDebt && input.Type != entity.DebtTypeReceivable {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtType,
			"debt type must be 'DEBT' or 'RECEIVABLE'",
			domainerror.ErrInvalidDebtType,
		)
	}

	if err := validatePositiveWhole(input.Amount, domainerror.ErrCodeInvalidDebtAmount, domainerror.ErrInvalidDebtAmount); err != nil {
		return nil, err
	}

	if input.DueDate != nil {
		if _, err := time.Parse(entity.DateLayout, *input.DueDate); err != nil {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeInvalidDueDate,
				"due date must be a valid YYYY-MM-DD value",
				domainerror.ErrInvalidDueDate,
			)
		}
	}

	debt := entity.NewDebt(input.Person, input.Type, input.Amount, input.Description, input.DueDate)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	// The debt is committed at this point; a mirroring failure is
	// surfaced without rolling the debt back.
	if _, err := uc.bridge.MirrorDebtCreation(ctx, debt); err != nil {
		return nil, err
	}

	direction := "receivable from"
	if debt.Type == entity.DebtTypeDebt {
		direction = "debt to"
	}
	message := fmt.Sprintf("Added %s %s", direction, debt.Person)
	if err := uc.sink.Emit(ctx, "New Debt Record", message, entity.NotificationTypeInfo); err != nil {
		slog.Warn("Failed to emit debt creation notification", "debtID", debt.ID, "error", err)
	}

	return &CreateDebtOutput{Debt: NewDebtOutput(debt)}, nil
}

// validatePositiveWhole rejects amounts that are not positive whole numbers.
func validatePositiveWhole(amount decimal.Decimal, code domainerror.DebtErrorCode, sentinel error) error {
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(0)) {
		return domainerror.NewDebtError(code, "amount must be a positive whole number", sentinel)
	}
	return nil
}
