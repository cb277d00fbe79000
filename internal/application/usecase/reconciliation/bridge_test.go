// Package reconciliation keeps the ledger consistent with debt activity.
package reconciliation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository for bridge tests.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	nextID       int64
}

func (r *fakeTransactionRepo) Append(_ context.Context, transaction *entity.Transaction) error {
	r.nextID++
	transaction.ID = r.nextID
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id int64) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(r.transactions))
	for i := len(r.transactions) - 1; i >= 0; i-- {
		out = append(out, r.transactions[i])
	}
	return out, nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id int64) error {
	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeTransactionRepo) DeleteByDebt(_ context.Context, debtID uuid.UUID) (int64, error) {
	var kept []*entity.Transaction
	var removed int64
	for _, t := range r.transactions {
		if t.Source != nil && t.Source.DebtID == debtID {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	r.transactions = kept
	return removed, nil
}

func TestBridge_MirrorDebtCreation(t *testing.T) {
	t.Run("a DEBT mirrors as INCOME", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		bridge := NewBridge(repo)

		debt := entity.NewDebt("Budi", entity.DebtTypeDebt, decimal.NewFromInt(500000), "", nil)
		debt.CreatedAt = time.Date(2026, 8, 20, 14, 30, 0, 0, time.Local)

		mirrored, err := bridge.MirrorDebtCreation(context.Background(), debt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if mirrored.Title != "Loan from Budi" {
			t.Errorf("expected title 'Loan from Budi', got %q", mirrored.Title)
		}
		if mirrored.Type != entity.TransactionTypeIncome {
			t.Errorf("expected type INCOME, got %s", mirrored.Type)
		}
		if !mirrored.Amount.Equal(debt.Amount) {
			t.Errorf("expected amount %s, got %s", debt.Amount, mirrored.Amount)
		}
		if mirrored.Date != "2026-08-20" || mirrored.Time != "14:30" {
			t.Errorf("expected 2026-08-20 14:30, got %s %s", mirrored.Date, mirrored.Time)
		}
		if mirrored.Source == nil || mirrored.Source.Kind != entity.SourceKindDebtCreation {
			t.Fatal("expected a DEBT_CREATION source ref")
		}
		if mirrored.Source.DebtID != debt.ID {
			t.Error("source ref does not point at the debt")
		}
		if mirrored.Source.PaymentID != nil {
			t.Error("creation mirror must not carry a payment ID")
		}
		if mirrored.ID == 0 {
			t.Error("expected the repository to assign an ID")
		}
	})

	t.Run("a RECEIVABLE mirrors as EXPENSE", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		bridge := NewBridge(repo)

		debt := entity.NewDebt("Sari", entity.DebtTypeReceivable, decimal.NewFromInt(200000), "", nil)

		mirrored, err := bridge.MirrorDebtCreation(context.Background(), debt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if mirrored.Title != "Loan to Sari" {
			t.Errorf("expected title 'Loan to Sari', got %q", mirrored.Title)
		}
		if mirrored.Type != entity.TransactionTypeExpense {
			t.Errorf("expected type EXPENSE, got %s", mirrored.Type)
		}
	})
}

func TestBridge_MirrorPayment(t *testing.T) {
	t.Run("repaying a DEBT mirrors as EXPENSE", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		bridge := NewBridge(repo)

		debt := entity.NewDebt("Budi", entity.DebtTypeDebt, decimal.NewFromInt(500000), "", nil)
		payment := entity.NewPayment(decimal.NewFromInt(200000), "2026-08-21T09:15", "first installment")

		mirrored, err := bridge.MirrorPayment(context.Background(), debt, payment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if mirrored.Title != "Repayment to Budi" {
			t.Errorf("expected title 'Repayment to Budi', got %q", mirrored.Title)
		}
		if mirrored.Type != entity.TransactionTypeExpense {
			t.Errorf("expected type EXPENSE, got %s", mirrored.Type)
		}
		if mirrored.Date != "2026-08-21" || mirrored.Time != "09:15" {
			t.Errorf("expected 2026-08-21 09:15, got %s %s", mirrored.Date, mirrored.Time)
		}
		if mirrored.Source == nil || mirrored.Source.Kind != entity.SourceKindDebtPayment {
			t.Fatal("expected a DEBT_PAYMENT source ref")
		}
		if mirrored.Source.PaymentID == nil || *mirrored.Source.PaymentID != payment.ID {
			t.Error("source ref does not point at the payment")
		}
	})

	t.Run("receiving on a RECEIVABLE mirrors as INCOME", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		bridge := NewBridge(repo)

		debt := entity.NewDebt("Sari", entity.DebtTypeReceivable, decimal.NewFromInt(300000), "", nil)
		payment := entity.NewPayment(decimal.NewFromInt(100000), "2026-08-22", "")

		mirrored, err := bridge.MirrorPayment(context.Background(), debt, payment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if mirrored.Title != "Payment from Sari" {
			t.Errorf("expected title 'Payment from Sari', got %q", mirrored.Title)
		}
		if mirrored.Type != entity.TransactionTypeIncome {
			t.Errorf("expected type INCOME, got %s", mirrored.Type)
		}
		if mirrored.Date != "2026-08-22" || mirrored.Time != "00:00" {
			t.Errorf("expected date-only payment to default to midnight, got %s %s", mirrored.Date, mirrored.Time)
		}
	})
}

func TestBridge_Retract(t *testing.T) {
	repo := &fakeTransactionRepo{}
	bridge := NewBridge(repo)
	ctx := context.Background()

	debt := entity.NewDebt("Budi", entity.DebtTypeDebt, decimal.NewFromInt(500000), "", nil)
	if _, err := bridge.MirrorDebtCreation(ctx, debt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payment := entity.NewPayment(decimal.NewFromInt(200000), "2026-08-21", "")
	if _, err := bridge.MirrorPayment(ctx, debt, payment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An unrelated manual entry must survive retraction.
	manual := entity.NewTransaction("Groceries", entity.TransactionTypeExpense, decimal.NewFromInt(50000), "2026-08-21", "18:00", "", "")
	if err := repo.Append(ctx, manual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	removed, err := bridge.Retract(ctx, debt.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 mirrors removed, got %d", removed)
	}

	remaining, _ := repo.FindAll(ctx)
	if len(remaining) != 1 || remaining[0].Title != "Groceries" {
		t.Errorf("expected only the manual entry to remain, got %d entries", len(remaining))
	}

	// Retracting again finds nothing and still succeeds.
	removed, err = bridge.Retract(ctx, debt.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected 0 mirrors removed on second retract, got %d", removed)
	}
}

func TestSplitPaymentDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantDate string
		wantTime string
	}{
		{"date only", "2026-08-21", "2026-08-21", "00:00"},
		{"datetime-local", "2026-08-21T09:15", "2026-08-21", "09:15"},
		{"datetime with seconds", "2026-08-21T09:15:30", "2026-08-21", "09:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, timeOfDay := SplitPaymentDate(tt.input)
			if date != tt.wantDate || timeOfDay != tt.wantTime {
				t.Errorf("SplitPaymentDate(%q) = %q, %q; want %q, %q",
					tt.input, date, timeOfDay, tt.wantDate, tt.wantTime)
			}
		})
	}
}
