// Package debt contains debt and receivable tracking use cases.
package debt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/application/usecase/reconciliation"
	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// Accepted payment date layouts: a bare date or a datetime-local value.
const paymentDateTimeLayout = "2006-01-02T15:04"

// AddPaymentInput represents the input for recording a payment.
type AddPaymentInput struct {
	DebtID uuid.UUID
	Amount decimal.Decimal
	Date   string // YYYY-MM-DD or YYYY-MM-DDTHH:mm
	Note   string
}

// AddPaymentOutput represents the output of recording a payment.
type AddPaymentOutput struct {
	Debt    *DebtOutput
	Payment *PaymentOutput
}

// AddPaymentUseCase handles appending a payment to a debt. Every payment
// mirrors a ledger transaction; a payment that settles the debt also emits
// a "paid off" notification.
type AddPaymentUseCase struct {
	debtRepo adapter.DebtRepository
	bridge   *reconciliation.Bridge
	sink     adapter.NotificationSink
}

// NewAddPaymentUseCase creates a new AddPaymentUseCase instance.
func NewAddPaymentUseCase(
	debtRepo adapter.DebtRepository,
	bridge *reconciliation.Bridge,
	sink adapter.NotificationSink,
) *AddPaymentUseCase {
	return &AddPaymentUseCase{
		debtRepo: debtRepo,
		bridge:   bridge,
		sink:     sink,
	}
}

// Execute validates and records the payment. Overpayment is rejected: a
// payment may at most settle the outstanding balance, which keeps the
// cumulative paid total at or below the principal.
func (uc *AddPaymentUseCase) Execute(ctx context.Context, input AddPaymentInput) (*AddPaymentOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		return nil, err
	}

	if err := validatePositiveWhole(input.Amount, domainerror.ErrCodeInvalidPaymentAmount, domainerror.ErrInvalidPaymentAmount); err != nil {
		return nil, err
	}

	if input.Amount.GreaterThan(debt.Remaining()) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodePaymentExceedsRemaining,
			fmt.Sprintf("payment exceeds the remaining balance of %s", debt.Remaining().String()),
			domainerror.ErrPaymentExceedsRemaining,
		)
	}

	if err := validatePaymentDate(input.Date); err != nil {
		return nil, err
	}

	statusBefore := debt.Status()

	payment := entity.NewPayment(input.Amount, input.Date, input.Note)
	if err := uc.debtRepo.AppendPayment(ctx, input.DebtID, payment); err != nil {
		return nil, fmt.Errorf("failed to append payment: %w", err)
	}
	debt.Payments = append(debt.Payments, payment)

	if _, err := uc.bridge.MirrorPayment(ctx, debt, payment); err != nil {
		return nil, err
	}

	if statusBefore != entity.DebtStatusPaid && debt.Status() == entity.DebtStatusPaid {
		message := fmt.Sprintf("%s's %s is fully paid.", debt.Person, strings.ToLower(string(debt.Type)))
		if err := uc.sink.Emit(ctx, "Debt Paid Off!", message, entity.NotificationTypeAlert); err != nil {
			slog.Warn("Failed to emit paid-off notification", "debtID", debt.ID, "error", err)
		}
	}

	paymentOutput := &PaymentOutput{
		ID:     payment.ID,
		Amount: payment.Amount,
		Date:   payment.Date,
		Note:   payment.Note,
	}
	return &AddPaymentOutput{
		Debt:    NewDebtOutput(debt),
		Payment: paymentOutput,
	}, nil
}

// validatePaymentDate accepts a bare date or a datetime-local value.
func validatePaymentDate(date string) error {
	layout := entity.DateLayout
	if strings.Contains(date, "T") {
		layout = paymentDateTimeLayout
	}
	if _, err := time.Parse(layout, date); err != nil {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidPaymentDate,
			"payment date must be YYYY-MM-DD or YYYY-MM-DDTHH:mm",
			domainerror.ErrInvalidPaymentDate,
		)
	}
	return nil
}
