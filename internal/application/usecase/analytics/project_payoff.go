// Package analytics contains the derived-view use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// PayoffMode selects how the payoff projection is driven.
type PayoffMode string

const (
	PayoffModeBudget PayoffMode = "BUDGET" // fixed monthly payment, project the completion month
	PayoffModeTarget PayoffMode = "TARGET" // fixed target date, project the required monthly payment
)

// PayoffOutcome is the kind of result a projection produced.
type PayoffOutcome string

const (
	PayoffOutcomeDebtFree   PayoffOutcome = "DEBT_FREE"  // nothing outstanding, both modes short-circuit
	PayoffOutcomeProjected  PayoffOutcome = "PROJECTED"  // a usable projection
	PayoffOutcomeImpossible PayoffOutcome = "IMPOSSIBLE" // target date is not in a future month
)

// ProjectPayoffInput represents the input for a payoff projection.
type ProjectPayoffInput struct {
	Mode          PayoffMode
	MonthlyAmount decimal.Decimal // BUDGET mode
	TargetDate    string          // TARGET mode, YYYY-MM-DD
}

// ProjectPayoffOutput represents the result of a payoff projection.
type ProjectPayoffOutput struct {
	Outcome         PayoffOutcome
	TotalDebt       decimal.Decimal
	Months          int64
	CompletionMonth string          // BUDGET mode, e.g. "December 2026"
	RequiredMonthly decimal.Decimal // TARGET mode
}

// ProjectPayoffUseCase computes forward-looking payoff estimates over the
// total outstanding debt (remaining balances of DEBT records; receivables
// are money coming in, not obligations to pay off).
type ProjectPayoffUseCase struct {
	debtRepo adapter.DebtRepository
	now      func() time.Time
}

// NewProjectPayoffUseCase creates a new ProjectPayoffUseCase instance.
func NewProjectPayoffUseCase(debtRepo adapter.DebtRepository) *ProjectPayoffUseCase {
	return &ProjectPayoffUseCase{
		debtRepo: debtRepo,
		now:      time.Now,
	}
}

// Execute runs the projection for the requested mode. With no outstanding
// debt, both modes short-circuit to a debt-free result regardless of input.
func (uc *ProjectPayoffUseCase) Execute(ctx context.Context, input ProjectPayoffInput) (*ProjectPayoffOutput, error) {
	if input.Mode != PayoffModeBudget && input.Mode != PayoffModeTarget {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidPayoffMode,
			"payoff mode must be 'BUDGET' or 'TARGET'",
			domainerror.ErrInvalidPayoffMode,
		)
	}

	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}

	totalDebt := decimal.Zero
	for _, d := range debts {
		if d.Type == entity.DebtTypeDebt {
			totalDebt = totalDebt.Add(d.Remaining())
		}
	}

	if !totalDebt.IsPositive() {
		return &ProjectPayoffOutput{
			Outcome:   PayoffOutcomeDebtFree,
			TotalDebt: decimal.Zero,
		}, nil
	}

	if input.Mode == PayoffModeBudget {
		return uc.projectByBudget(totalDebt, input.MonthlyAmount)
	}
	return uc.projectByTarget(totalDebt, input.TargetDate)
}

// projectByBudget derives the completion month from a fixed monthly payment.
func (uc *ProjectPayoffUseCase) projectByBudget(totalDebt, monthlyAmount decimal.Decimal) (*ProjectPayoffOutput, error) {
	if !monthlyAmount.IsPositive() {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidMonthlyAmount,
			"monthly amount must be positive",
			domainerror.ErrInvalidMonthlyAmount,
		)
	}

	months := totalDebt.Div(monthlyAmount).Ceil().IntPart()
	completion := uc.now().AddDate(0, int(months), 0)

	return &ProjectPayoffOutput{
		Outcome:         PayoffOutcomeProjected,
		TotalDebt:       totalDebt,
		Months:          months,
		CompletionMonth: completion.Format("January 2006"),
	}, nil
}

// projectByTarget derives the required monthly payment from a target date.
// A target in the current or an earlier month is reported as impossible.
func (uc *ProjectPayoffUseCase) projectByTarget(totalDebt decimal.Decimal, targetDate string) (*ProjectPayoffOutput, error) {
	target, err := time.Parse(entity.DateLayout, targetDate)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidTargetDate,
			"target date must be a valid YYYY-MM-DD value",
			domainerror.ErrInvalidTargetDate,
		)
	}

	now := uc.now()
	months := int64(target.Year()-now.Year())*12 + int64(target.Month()-now.Month())
	if months <= 0 {
		return &ProjectPayoffOutput{
			Outcome:   PayoffOutcomeImpossible,
			TotalDebt: totalDebt,
		}, nil
	}

	requiredMonthly := totalDebt.Div(decimal.NewFromInt(months)).Ceil()

	return &ProjectPayoffOutput{
		Outcome:         PayoffOutcomeProjected,
		TotalDebt:       totalDebt,
		Months:          months,
		RequiredMonthly: requiredMonthly,
	}, nil
}
