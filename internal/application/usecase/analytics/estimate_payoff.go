// Package analytics contains the derived-view use cases.
package analytics

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
)

// recentPaymentWindow is how many of the latest payments feed the average.
const recentPaymentWindow = 3

// EstimateDebtPayoffOutput represents the payoff estimate for one debt.
// Available is false when the payment history is too thin to extrapolate
// (fewer than two payments, or a non-positive average).
type EstimateDebtPayoffOutput struct {
	Available      bool
	AverageRecent  decimal.Decimal
	MonthsLeft     int64
	ProjectedMonth string // e.g. "Dec 2026"
}

// EstimateDebtPayoffUseCase extrapolates a debt's payoff date from its
// recent payment pace.
type EstimateDebtPayoffUseCase struct {
	debtRepo adapter.DebtRepository
	now      func() time.Time
}

// NewEstimateDebtPayoffUseCase creates a new EstimateDebtPayoffUseCase instance.
func NewEstimateDebtPayoffUseCase(debtRepo adapter.DebtRepository) *EstimateDebtPayoffUseCase {
	return &EstimateDebtPayoffUseCase{
		debtRepo: debtRepo,
		now:      time.Now,
	}
}

// Execute averages the three most recent payments (by date, descending)
// and projects how many months of that pace clear the remaining balance.
func (uc *EstimateDebtPayoffUseCase) Execute(ctx context.Context, debtID uuid.UUID) (*EstimateDebtPayoffOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	if len(debt.Payments) < 2 {
		return &EstimateDebtPayoffOutput{}, nil
	}

	recent := make([]entity.Payment, len(debt.Payments))
	copy(recent, debt.Payments)
	sort.SliceStable(recent, func(i, j int) bool {
		return parsePaymentDate(recent[i].Date).After(parsePaymentDate(recent[j].Date))
	})
	if len(recent) > recentPaymentWindow {
		recent = recent[:recentPaymentWindow]
	}

	total := decimal.Zero
	for _, p := range recent {
		total = total.Add(p.Amount)
	}
	average := total.Div(decimal.NewFromInt(int64(len(recent))))
	if !average.IsPositive() {
		return &EstimateDebtPayoffOutput{}, nil
	}

	monthsLeft := debt.Remaining().Div(average).Ceil().IntPart()
	projected := uc.now().AddDate(0, int(monthsLeft), 0)

	return &EstimateDebtPayoffOutput{
		Available:      true,
		AverageRecent:  average,
		MonthsLeft:     monthsLeft,
		ProjectedMonth: projected.Format("Jan 2006"),
	}, nil
}

// parsePaymentDate parses a payment date in either accepted layout,
// treating malformed values as the zero time so they sort last.
func parsePaymentDate(date string) time.Time {
	layout := entity.DateLayout
	if strings.Contains(date, "T") {
		layout = "2006-01-02T15:04"
	}
	t, err := time.Parse(layout, date)
	if err != nil {
		return time.Time{}
	}
	return t
}
