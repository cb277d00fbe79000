// Package reconciliation keeps the ledger consistent with debt activity.
//
// Every debt creation and every payment is mirrored as exactly one ledger
// transaction, and deleting a debt retracts every transaction it produced.
// Mirrored transactions carry an explicit source ref back to the debt event
// that produced them, so retraction is an exact lookup rather than a
// field-matching heuristic.
package reconciliation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
)

// Icon and color tags attached to mirrored transactions. The UI renders
// these; the bridge only picks the pair matching the cash direction.
const (
	iconWallet   = "account_balance_wallet"
	iconTrendUp  = "trending_up"
	iconTrendDn  = "trending_down"
	colorPrimary = "primary"
	colorRoseRed = "rose-red"
)

// Bridge translates debt-domain events into ledger entries and reverses
// that translation when a debt is deleted.
//
// The bridge gives no cross-store atomicity: if mirroring fails after the
// debt-side mutation committed, the error is surfaced but nothing is rolled
// back. Execution is single-user and synchronous, so the mirrored write is
// always visible before analytics run again.
type Bridge struct {
	transactionRepo adapter.TransactionRepository
}

// NewBridge creates a new Bridge instance.
func NewBridge(transactionRepo adapter.TransactionRepository) *Bridge {
	return &Bridge{
		transactionRepo: transactionRepo,
	}
}

// MirrorDebtCreation appends the ledger transaction reflecting a newly
// created debt. Receiving a loan increases cash, extending one decreases
// it, so a DEBT mirrors as INCOME and a RECEIVABLE as EXPENSE.
func (b *Bridge) MirrorDebtCreation(ctx context.Context, debt *entity.Debt) (*entity.Transaction, error) {
	date, timeOfDay := splitLocalTimestamp(debt.CreatedAt)

	title := fmt.Sprintf("Loan to %s", debt.Person)
	transactionType := entity.TransactionTypeExpense
	icon, color := iconTrendDn, colorRoseRed
	if debt.Type == entity.DebtTypeDebt {
		title = fmt.Sprintf("Loan from %s", debt.Person)
		transactionType = entity.TransactionTypeIncome
		icon, color = iconWallet, colorPrimary
	}

	transaction := entity.NewTransaction(title, transactionType, debt.Amount, date, timeOfDay, icon, color)
	transaction.Source = &entity.SourceRef{
		Kind:   entity.SourceKindDebtCreation,
		DebtID: debt.ID,
	}

	if err := b.transactionRepo.Append(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to mirror debt creation: %w", err)
	}
	return transaction, nil
}

// MirrorPayment appends the ledger transaction reflecting a recorded
// payment. The direction is the inverse of creation: repaying a debt you
// owe reduces cash, receiving payment on a receivable increases it.
func (b *Bridge) MirrorPayment(ctx context.Context, debt *entity.Debt, payment entity.Payment) (*entity.Transaction, error) {
	date, timeOfDay := SplitPaymentDate(payment.Date)

	title := fmt.Sprintf("Payment from %s", debt.Person)
	transactionType := entity.TransactionTypeIncome
	icon, color := iconWallet, colorPrimary
	if debt.Type == entity.DebtTypeDebt {
		title = fmt.Sprintf("Repayment to %s", debt.Person)
		transactionType = entity.TransactionTypeExpense
		icon, color = iconTrendUp, colorRoseRed
	}

	paymentID := payment.ID
	transaction := entity.NewTransaction(title, transactionType, payment.Amount, date, timeOfDay, icon, color)
	transaction.Source = &entity.SourceRef{
		Kind:      entity.SourceKindDebtPayment,
		DebtID:    debt.ID,
		PaymentID: &paymentID,
	}

	if err := b.transactionRepo.Append(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to mirror payment: %w", err)
	}
	return transaction, nil
}

// Retract removes every mirrored transaction produced by the given debt,
// covering its creation and all of its payments. Retraction is best-effort:
// mirrors the user already deleted from the ledger are skipped silently.
func (b *Bridge) Retract(ctx context.Context, debtID uuid.UUID) (int64, error) {
	removed, err := b.transactionRepo.DeleteByDebt(ctx, debtID)
	if err != nil {
		return 0, fmt.Errorf("failed to retract mirrored transactions: %w", err)
	}
	return removed, nil
}

// splitLocalTimestamp splits a local timestamp into the ledger's
// YYYY-MM-DD date and HH:mm time strings.
func splitLocalTimestamp(t time.Time) (string, string) {
	return t.Format(entity.DateLayout), t.Format(entity.TimeLayout)
}

// SplitPaymentDate splits a payment date into the ledger's date and time
// strings. Payment dates arrive either as YYYY-MM-DD or as
// YYYY-MM-DDTHH:mm; a missing time part defaults to midnight.
func SplitPaymentDate(paymentDate string) (string, string) {
	date, rest, found := strings.Cut(paymentDate, "T")
	if !found {
		return date, "00:00"
	}
	if len(rest) > 5 {
		rest = rest[:5]
	}
	return date, rest
}
