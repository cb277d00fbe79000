// Package transaction contains ledger transaction use cases.
package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository for use case tests.
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

func validInput() CreateTransactionInput {
	return CreateTransactionInput{
		Title:  "Groceries",
		Type:   entity.TransactionTypeExpense,
		Amount: decimal.NewFromInt(150000),
		Date:   "2026-08-21",
		Time:   "18:30",
		Icon:   "shopping_cart",
		Color:  "rose-red",
	}
}

func TestCreateTransactionUseCase(t *testing.T) {
	t.Run("valid input is stored with a repository-assigned ID", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.ID != 1 {
			t.Errorf("expected ID 1, got %d", output.Transaction.ID)
		}
		if output.Transaction.Mirrored {
			t.Error("manual entries are not mirrored")
		}

		second, err := uc.Execute(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Transaction.ID != 2 {
			t.Errorf("expected ID 2, got %d", second.Transaction.ID)
		}
	})

	t.Run("validation rejects bad input", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewCreateTransactionUseCase(repo)
		ctx := context.Background()

		tests := []struct {
			name     string
			mutate   func(*CreateTransactionInput)
			sentinel error
		}{
			{"empty title", func(in *CreateTransactionInput) { in.Title = "" }, domainerror.ErrEmptyTransactionTitle},
			{"unknown type", func(in *CreateTransactionInput) { in.Type = "TRANSFER" }, domainerror.ErrInvalidTransactionType},
			{"zero amount", func(in *CreateTransactionInput) { in.Amount = decimal.Zero }, domainerror.ErrInvalidTransactionAmount},
			{"negative amount", func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-100) }, domainerror.ErrInvalidTransactionAmount},
			{"fractional amount", func(in *CreateTransactionInput) { in.Amount = decimal.NewFromFloat(10.5) }, domainerror.ErrInvalidTransactionAmount},
			{"malformed date", func(in *CreateTransactionInput) { in.Date = "21/08/2026" }, domainerror.ErrInvalidTransactionDate},
			{"malformed time", func(in *CreateTransactionInput) { in.Time = "6pm" }, domainerror.ErrInvalidTransactionTime},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := validInput()
				tt.mutate(&input)

				_, err := uc.Execute(ctx, input)
				if !errors.Is(err, tt.sentinel) {
					t.Errorf("expected %v, got %v", tt.sentinel, err)
				}
			})
		}

		if len(repo.transactions) != 0 {
			t.Error("rejected input must not be stored")
		}
	})
}

func TestListTransactionsUseCase(t *testing.T) {
	repo := &fakeTransactionRepo{}
	create := NewCreateTransactionUseCase(repo)
	list := NewListTransactionsUseCase(repo)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		input := validInput()
		input.Title = title
		if _, err := create.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	output, err := list.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(output.Transactions))
	}
	// Newest-first by insertion.
	if output.Transactions[0].Title != "third" || output.Transactions[2].Title != "first" {
		t.Errorf("expected newest-first order, got %s..%s",
			output.Transactions[0].Title, output.Transactions[2].Title)
	}
}

func TestDeleteTransactionUseCase(t *testing.T) {
	repo := &fakeTransactionRepo{}
	create := NewCreateTransactionUseCase(repo)
	deleteUC := NewDeleteTransactionUseCase(repo)
	ctx := context.Background()

	output, err := create.Execute(ctx, validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := deleteUC.Execute(ctx, output.Transaction.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.transactions) != 0 {
		t.Error("expected transaction to be removed")
	}

	// Deleting again is a no-op.
	if err := deleteUC.Execute(ctx, output.Transaction.ID); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
}
