// Package analytics contains the derived-view use cases.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
)

// BudgetStatus is the qualitative tier of monthly budget usage. The five
// bands keyed on percent used are contract; their rendering is not.
type BudgetStatus string

const (
	BudgetStatusExcellent  BudgetStatus = "excellent"   // < 20%
	BudgetStatusSafe       BudgetStatus = "safe"        // 20-39%
	BudgetStatusCaution    BudgetStatus = "caution"     // 40-59%
	BudgetStatusWarning    BudgetStatus = "warning"     // 60-79%
	BudgetStatusDanger     BudgetStatus = "danger"      // >= 80%
	BudgetStatusOverBudget BudgetStatus = "over_budget" // spending reached or passed the budget
)

// GetBudgetUsageOutput represents the monthly budget usage figures.
type GetBudgetUsageOutput struct {
	Month        string // e.g. "August 2026"
	Budget       decimal.Decimal
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	PercentUsed  float64 // capped at 100
	Status       BudgetStatus
	IsOverBudget bool
}

// GetBudgetUsageUseCase computes how much of the monthly budget the current
// calendar month's expenses have consumed.
type GetBudgetUsageUseCase struct {
	transactionRepo adapter.TransactionRepository
	profileRepo     adapter.ProfileRepository
	now             func() time.Time
}

// NewGetBudgetUsageUseCase creates a new GetBudgetUsageUseCase instance.
func NewGetBudgetUsageUseCase(
	transactionRepo adapter.TransactionRepository,
	profileRepo adapter.ProfileRepository,
) *GetBudgetUsageUseCase {
	return &GetBudgetUsageUseCase{
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		now:             time.Now,
	}
}

// Execute filters expenses to the current local calendar month and derives
// the usage figures. With a zero budget, any spending counts as full usage.
func (uc *GetBudgetUsageUseCase) Execute(ctx context.Context) (*GetBudgetUsageOutput, error) {
	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := uc.now()
	monthPrefix := now.Format("2006-01")

	spent := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense && strings.HasPrefix(t.Date, monthPrefix) {
			spent = spent.Add(t.Amount)
		}
	}

	budget := profile.MonthlyBudget
	remaining := budget.Sub(spent)

	var percentUsed float64
	switch {
	case budget.IsPositive():
		percentUsed, _ = spent.Div(budget).Mul(decimal.NewFromInt(100)).Float64()
		if percentUsed > 100 {
			percentUsed = 100
		}
	case spent.IsPositive():
		percentUsed = 100
	}

	return &GetBudgetUsageOutput{
		Month:        now.Format("January 2006"),
		Budget:       budget,
		Spent:        spent,
		Remaining:    remaining,
		PercentUsed:  percentUsed,
		Status:       budgetStatusFor(percentUsed),
		IsOverBudget: remaining.IsNegative(),
	}, nil
}

// budgetStatusFor maps percent used onto the five qualitative tiers, with
// full usage reported as over budget.
func budgetStatusFor(percentUsed float64) BudgetStatus {
	switch {
	case percentUsed >= 100:
		return BudgetStatusOverBudget
	case percentUsed >= 80:
		return BudgetStatusDanger
	case percentUsed >= 60:
		return BudgetStatusWarning
	case percentUsed >= 40:
		return BudgetStatusCaution
	case percentUsed >= 20:
		return BudgetStatusSafe
	default:
		return BudgetStatusExcellent
	}
}
