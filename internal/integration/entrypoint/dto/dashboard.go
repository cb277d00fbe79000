// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/dompetku/backend/internal/application/usecase/analytics"
)

// BalanceResponse represents the total ledger balance.
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// BudgetUsageResponse represents monthly budget usage figures.
type BudgetUsageResponse struct {
	Month        string  `json:"month"`
	Budget       string  `json:"budget"`
	Spent        string  `json:"spent"`
	Remaining    string  `json:"remaining"`
	PercentUsed  float64 `json:"percent_used"`
	Status       string  `json:"status"`
	IsOverBudget bool    `json:"is_over_budget"`
}

// TrendPointResponse represents one trend bucket.
type TrendPointResponse struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// ChartPointResponse represents one normalized chart coordinate.
type ChartPointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TrendResponse represents a bucketed expense trend with chart geometry.
type TrendResponse struct {
	View     string               `json:"view"`
	Points   []TrendPointResponse `json:"points"`
	Line     string               `json:"line"`
	Area     string               `json:"area"`
	Chart    []ChartPointResponse `json:"chart_points"`
	MaxIndex int                  `json:"max_index"`
}

// PayoffResponse represents a payoff projection result.
type PayoffResponse struct {
	Outcome         string `json:"outcome"`
	TotalDebt       string `json:"total_debt"`
	Months          int64  `json:"months,omitempty"`
	CompletionMonth string `json:"completion_month,omitempty"`
	RequiredMonthly string `json:"required_monthly,omitempty"`
}

// DebtEstimateResponse represents a per-debt payoff estimate.
type DebtEstimateResponse struct {
	Available      bool   `json:"available"`
	AverageRecent  string `json:"average_recent,omitempty"`
	MonthsLeft     int64  `json:"months_left,omitempty"`
	ProjectedMonth string `json:"projected_month,omitempty"`
}

// ToTrendResponse maps a trend output to its API representation.
func ToTrendResponse(output *analytics.GetTrendOutput) TrendResponse {
	points := make([]TrendPointResponse, len(output.Points))
	for i, p := range output.Points {
		points[i] = TrendPointResponse{
			Label:  p.Label,
			Amount: p.Amount.String(),
		}
	}

	chartPoints := make([]ChartPointResponse, len(output.Chart.Points))
	for i, p := range output.Chart.Points {
		chartPoints[i] = ChartPointResponse{X: p.X, Y: p.Y}
	}

	return TrendResponse{
		View:     string(output.View),
		Points:   points,
		Line:     output.Chart.Line,
		Area:     output.Chart.Area,
		Chart:    chartPoints,
		MaxIndex: output.Chart.MaxIndex,
	}
}

// ToPayoffResponse maps a payoff projection to its API representation.
func ToPayoffResponse(output *analytics.ProjectPayoffOutput) PayoffResponse {
	response := PayoffResponse{
		Outcome:   string(output.Outcome),
		TotalDebt: output.TotalDebt.String(),
		Months:    output.Months,
	}
	if output.CompletionMonth != "" {
		response.CompletionMonth = output.CompletionMonth
	}
	if output.Outcome == analytics.PayoffOutcomeProjected && !output.RequiredMonthly.IsZero() {
		response.RequiredMonthly = output.RequiredMonthly.String()
	}
	return response
}

// ToDebtEstimateResponse maps a per-debt estimate to its API representation.
func ToDebtEstimateResponse(output *analytics.EstimateDebtPayoffOutput) DebtEstimateResponse {
	response := DebtEstimateResponse{
		Available: output.Available,
	}
	if output.Available {
		response.AverageRecent = output.AverageRecent.String()
		response.MonthsLeft = output.MonthsLeft
		response.ProjectedMonth = output.ProjectedMonth
	}
	return response
}
