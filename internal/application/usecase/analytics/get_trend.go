// Package analytics contains the derived-view use cases.
package analytics

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// TrendView selects the time bucketing of the expense trend.
type TrendView string

const (
	TrendViewDaily   TrendView = "daily"   // today, 6 buckets of 4 hours
	TrendViewWeekly  TrendView = "weekly"  // last 7 days including today
	TrendViewMonthly TrendView = "monthly" // last 30 days including today
)

const (
	dailyBucketCount   = 6
	dailyBucketHours   = 4
	weeklyBucketCount  = 7
	monthlyBucketCount = 30
)

// TrendPoint is one bucket of the expense trend.
type TrendPoint struct {
	Label  string
	Amount decimal.Decimal
}

// GetTrendOutput represents the bucketed expense trend together with the
// chart geometry derived from it.
type GetTrendOutput struct {
	View   TrendView
	Points []TrendPoint
	Chart  ChartPath
}

// GetTrendUseCase computes time-bucketed expense series. Buckets are always
// produced in chronological order and are zero-filled, never omitted.
type GetTrendUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetTrendUseCase creates a new GetTrendUseCase instance.
func NewGetTrendUseCase(transactionRepo adapter.TransactionRepository) *GetTrendUseCase {
	return &GetTrendUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Execute buckets expense transactions according to the requested view.
func (uc *GetTrendUseCase) Execute(ctx context.Context, view TrendView) (*GetTrendOutput, error) {
	if view != TrendViewDaily && view != TrendViewWeekly && view != TrendViewMonthly {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidTrendView,
			"trend view must be 'daily', 'weekly' or 'monthly'",
			domainerror.ErrInvalidTrendView,
		)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	var points []TrendPoint
	switch view {
	case TrendViewDaily:
		points = uc.dailyBuckets(transactions)
	case TrendViewWeekly:
		points = uc.dayBuckets(transactions, weeklyBucketCount, func(d time.Time) string {
			return d.Format("Mon")
		})
	case TrendViewMonthly:
		points = uc.dayBuckets(transactions, monthlyBucketCount, func(d time.Time) string {
			return strconv.Itoa(d.Day())
		})
	}

	return &GetTrendOutput{
		View:   view,
		Points: points,
		Chart:  BuildChartPath(points),
	}, nil
}

// dailyBuckets groups today's expenses into six 4-hour blocks.
func (uc *GetTrendUseCase) dailyBuckets(transactions []*entity.Transaction) []TrendPoint {
	today := uc.now().Format(entity.DateLayout)

	points := make([]TrendPoint, 0, dailyBucketCount)
	for i := 0; i < dailyBucketCount; i++ {
		startHour := i * dailyBucketHours
		endHour := startHour + dailyBucketHours

		amount := decimal.Zero
		for _, t := range transactions {
			if t.Type != entity.TransactionTypeExpense || t.Date != today {
				continue
			}
			if h := hourOf(t.Time); h >= startHour && h < endHour {
				amount = amount.Add(t.Amount)
			}
		}

		points = append(points, TrendPoint{
			Label:  fmt.Sprintf("%02d:00", startHour),
			Amount: amount,
		})
	}
	return points
}

// dayBuckets produces one bucket per calendar day for the last `days` days
// inclusive of today, oldest first.
func (uc *GetTrendUseCase) dayBuckets(transactions []*entity.Transaction, days int, label func(time.Time) string) []TrendPoint {
	byDate := sumExpensesByDate(transactions)
	now := uc.now()

	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		amount := byDate[date.Format(entity.DateLayout)]
		points = append(points, TrendPoint{
			Label:  label(date),
			Amount: amount,
		})
	}
	return points
}

// hourOf parses the hour out of an HH:mm wall-clock value, treating
// malformed values as midnight.
func hourOf(timeOfDay string) int {
	hh, _, _ := strings.Cut(timeOfDay, ":")
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0
	}
	return h
}
