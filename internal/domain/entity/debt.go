// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtType distinguishes money the user owes from money owed to the user.
type DebtType string

const (
	DebtTypeDebt       DebtType = "DEBT"       // owed by the user
	DebtTypeReceivable DebtType = "RECEIVABLE" // owed to the user
)

// DebtStatus is the derived settlement state of a debt.
type DebtStatus string

const (
	DebtStatusUnpaid DebtStatus = "UNPAID"
	DebtStatusPaid   DebtStatus = "PAID"
)

// Payment is a partial repayment recorded against a debt. Payments are
// owned by their debt: they are never edited or removed individually and
// disappear only when the whole debt is deleted.
type Payment struct {
	ID     uuid.UUID
	Amount decimal.Decimal // always positive
	Date   string          // YYYY-MM-DD or YYYY-MM-DDTHH:mm, local wall-clock
	Note   string
}

// NewPayment creates a new Payment entity with a fresh ID.
func NewPayment(amount decimal.Decimal, date string, note string) Payment {
	return Payment{
		ID:     uuid.New(),
		Amount: amount,
		Date:   date,
		Note:   note,
	}
}

// Debt represents a tracked obligation with its payment history. The
// settlement status is never stored: it is derived from the principal and
// the recorded payments, so it cannot drift.
type Debt struct {
	ID          uuid.UUID
	Person      string
	Type        DebtType
	Amount      decimal.Decimal // original principal, always positive
	Description string
	DueDate     *string // YYYY-MM-DD, optional
	Payments    []Payment
	CreatedAt   time.Time
}

// NewDebt creates a new Debt entity with an empty payment history.
func NewDebt(person string, debtType DebtType, amount decimal.Decimal, description string, dueDate *string) *Debt {
	return &Debt{
		ID:          uuid.New(),
		Person:      person,
		Type:        debtType,
		Amount:      amount,
		Description: description,
		DueDate:     dueDate,
		Payments:    []Payment{},
		CreatedAt:   time.Now(),
	}
}

// TotalPaid returns the sum of all recorded payment amounts.
func (d *Debt) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Remaining returns the outstanding principal, never negative.
func (d *Debt) Remaining() decimal.Decimal {
	remaining := d.Amount.Sub(d.TotalPaid())
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Status derives the settlement state: PAID once cumulative payments reach
// the principal, UNPAID otherwise. Payments are append-only, so a debt that
// reaches PAID can never revert.
func (d *Debt) Status() DebtStatus {
	if d.TotalPaid().GreaterThanOrEqual(d.Amount) {
		return DebtStatusPaid
	}
	return DebtStatusUnpaid
}

// Progress returns the repayment progress as a percentage capped at 100.
func (d *Debt) Progress() float64 {
	if d.Amount.IsZero() {
		return 0
	}
	progress, _ := d.TotalPaid().Div(d.Amount).Mul(decimal.NewFromInt(100)).Float64()
	if progress > 100 {
		return 100
	}
	return progress
}
