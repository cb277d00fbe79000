// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/usecase/analytics"
	domainerror "github.com/dompetku/backend/internal/domain/error"
	"github.com/dompetku/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles analytics endpoints.
type DashboardController struct {
	balanceUseCase  *analytics.GetBalanceUseCase
	budgetUseCase   *analytics.GetBudgetUsageUseCase
	trendUseCase    *analytics.GetTrendUseCase
	payoffUseCase   *analytics.ProjectPayoffUseCase
	estimateUseCase *analytics.EstimateDebtPayoffUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	balanceUseCase *analytics.GetBalanceUseCase,
	budgetUseCase *analytics.GetBudgetUsageUseCase,
	trendUseCase *analytics.GetTrendUseCase,
	payoffUseCase *analytics.ProjectPayoffUseCase,
	estimateUseCase *analytics.EstimateDebtPayoffUseCase,
) *DashboardController {
	return &DashboardController{
		balanceUseCase:  balanceUseCase,
		budgetUseCase:   budgetUseCase,
		trendUseCase:    trendUseCase,
		payoffUseCase:   payoffUseCase,
		estimateUseCase: estimateUseCase,
	}
}

// Balance handles GET /dashboard/balance requests.
func (c *DashboardController) Balance(ctx *gin.Context) {
	output, err := c.balanceUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute balance",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.BalanceResponse{Balance: output.Balance.String()})
}

// Budget handles GET /dashboard/budget requests.
func (c *DashboardController) Budget(ctx *gin.Context) {
	output, err := c.budgetUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute budget usage",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetUsageResponse{
		Month:        output.Month,
		Budget:       output.Budget.String(),
		Spent:        output.Spent.String(),
		Remaining:    output.Remaining.String(),
		PercentUsed:  output.PercentUsed,
		Status:       string(output.Status),
		IsOverBudget: output.IsOverBudget,
	})
}

// Trend handles GET /dashboard/trend requests. The view query parameter
// selects the bucketing: daily, weekly or monthly (default weekly).
func (c *DashboardController) Trend(ctx *gin.Context) {
	view := analytics.TrendView(ctx.DefaultQuery("view", string(analytics.TrendViewWeekly)))

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), view)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendResponse(output))
}

// Payoff handles GET /dashboard/payoff requests. BUDGET mode takes a
// monthly_amount, TARGET mode a target_date.
func (c *DashboardController) Payoff(ctx *gin.Context) {
	input := analytics.ProjectPayoffInput{
		Mode:       analytics.PayoffMode(ctx.Query("mode")),
		TargetDate: ctx.Query("target_date"),
	}

	if monthlyStr := ctx.Query("monthly_amount"); monthlyStr != "" {
		monthly, err := strconv.ParseInt(monthlyStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid monthly_amount: must be a whole number",
				Code:  string(domainerror.ErrCodeInvalidMonthlyAmount),
			})
			return
		}
		input.MonthlyAmount = decimal.NewFromInt(monthly)
	}

	output, err := c.payoffUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayoffResponse(output))
}

// Estimate handles GET /dashboard/debts/:id/estimate requests.
func (c *DashboardController) Estimate(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	output, err := c.estimateUseCase.Execute(ctx.Request.Context(), debtID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Debt not found",
				Code:  string(domainerror.ErrCodeDebtNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute payoff estimate",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtEstimateResponse(output))
}

// handleAnalyticsError translates domain errors into HTTP responses.
func (c *DashboardController) handleAnalyticsError(ctx *gin.Context, err error) {
	var anlErr *domainerror.AnalyticsError
	if errors.As(err, &anlErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: anlErr.Message,
			Code:  string(anlErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
