// Package debt contains debt and receivable tracking use cases.
package debt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/application/usecase/reconciliation"
	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// DeleteDebtUseCase handles debt deletion, retracting every ledger
// transaction the debt produced before removing the debt itself.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
	bridge   *reconciliation.Bridge
	sink     adapter.NotificationSink
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(
	debtRepo adapter.DebtRepository,
	bridge *reconciliation.Bridge,
	sink adapter.NotificationSink,
) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
		bridge:   bridge,
		sink:     sink,
	}
}

// Execute removes the debt and its mirrored transactions. Deleting an
// unknown debt is a no-op. Retraction is best-effort: the debt is removed
// even when some of its mirrors were already deleted from the ledger.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, debtID uuid.UUID) error {
	debt, err := uc.debtRepo.FindByID(ctx, debtID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil
		}
		return err
	}

	removed, err := uc.bridge.Retract(ctx, debtID)
	if err != nil {
		return err
	}
	// creation + one mirror per payment, unless the user already deleted some
	expected := int64(len(debt.Payments)) + 1
	if removed < expected {
		slog.Info("Some mirrored transactions were already gone during retraction",
			"debtID", debtID,
			"removed", removed,
			"expected", expected,
		)
	}

	if err := uc.debtRepo.Delete(ctx, debtID); err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}

	message := fmt.Sprintf("Removed %s's record and its ledger entries", debt.Person)
	if err := uc.sink.Emit(ctx, "Debt Record Deleted", message, entity.NotificationTypeInfo); err != nil {
		slog.Warn("Failed to emit debt deletion notification", "debtID", debtID, "error", err)
	}

	return nil
}
