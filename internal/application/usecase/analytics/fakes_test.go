// Package analytics contains the derived-view use cases.
package analytics

import (
	"context"

	"github.com/google/uuid"

	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository for analytics tests.
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

// fakeDebtRepo is an in-memory DebtRepository for analytics tests.
type fakeDebtRepo struct {
	debts []*entity.Debt
}

func (r *fakeDebtRepo) Create(_ context.Context, debt *entity.Debt) error {
	r.debts = append(r.debts, debt)
	return nil
}

func (r *fakeDebtRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	for _, d := range r.debts {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, domainerror.ErrDebtNotFound
}

func (r *fakeDebtRepo) FindAll(_ context.Context) ([]*entity.Debt, error) {
	out := make([]*entity.Debt, 0, len(r.debts))
	for i := len(r.debts) - 1; i >= 0; i-- {
		out = append(out, r.debts[i])
	}
	return out, nil
}

func (r *fakeDebtRepo) AppendPayment(_ context.Context, debtID uuid.UUID, payment entity.Payment) error {
	for _, d := range r.debts {
		if d.ID == debtID {
			d.Payments = append(d.Payments, payment)
			return nil
		}
	}
	return domainerror.ErrDebtNotFound
}

func (r *fakeDebtRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, d := range r.debts {
		if d.ID == id {
			r.debts = append(r.debts[:i], r.debts[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeProfileRepo is an in-memory ProfileRepository for analytics tests.
type fakeProfileRepo struct {
	profile *entity.Profile
}

func (r *fakeProfileRepo) Get(_ context.Context) (*entity.Profile, error) {
	if r.profile == nil {
		return entity.DefaultProfile(), nil
	}
	return r.profile, nil
}

func (r *fakeProfileRepo) Save(_ context.Context, profile *entity.Profile) error {
	r.profile = profile
	return nil
}
