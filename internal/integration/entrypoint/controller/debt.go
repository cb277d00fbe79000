// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/usecase/debt"
	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
	"github.com/dompetku/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debt and payment endpoints.
type DebtController struct {
	listUseCase       *debt.ListDebtsUseCase
	getUseCase        *debt.GetDebtUseCase
	createUseCase     *debt.CreateDebtUseCase
	addPaymentUseCase *debt.AddPaymentUseCase
	deleteUseCase     *debt.DeleteDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	getUseCase *debt.GetDebtUseCase,
	createUseCase *debt.CreateDebtUseCase,
	addPaymentUseCase *debt.AddPaymentUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		createUseCase:     createUseCase,
		addPaymentUseCase: addPaymentUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve debts",
		})
		return
	}

	debts := make([]dto.DebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		debts[i] = dto.ToDebtResponse(d)
	}

	ctx.JSON(http.StatusOK, dto.ListDebtsResponse{Debts: debts})
}

// Get handles GET /debts/:id requests.
func (c *DebtController) Get(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), debtID)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output))
}

// Create handles POST /debts requests. The created debt's mirrored ledger
// entry is written before the response returns.
func (c *DebtController) Create(ctx *gin.Context) {
	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := debt.CreateDebtInput{
		Person:      req.Person,
		Type:        entity.DebtType(req.Type),
		Amount:      decimal.NewFromInt(req.Amount),
		Description: req.Description,
		DueDate:     req.DueDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// AddPayment handles POST /debts/:id/payments requests.
func (c *DebtController) AddPayment(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.AddPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := debt.AddPaymentInput{
		DebtID: debtID,
		Amount: decimal.NewFromInt(req.Amount),
		Date:   req.Date,
		Note:   req.Note,
	}

	output, err := c.addPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Delete handles DELETE /debts/:id requests. The debt's mirrored ledger
// entries are removed along with it; deleting an absent debt succeeds.
func (c *DebtController) Delete(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), debtID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete debt",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Debt deleted"})
}

// handleDebtError translates domain errors into HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(c.statusCodeForDebtError(debtErr.Code), dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrDebtNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Debt not found",
			Code:  string(domainerror.ErrCodeDebtNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) statusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePaymentExceedsRemaining:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidDebtType,
		domainerror.ErrCodeInvalidDebtAmount,
		domainerror.ErrCodeEmptyDebtPerson,
		domainerror.ErrCodeInvalidDueDate,
		domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodeInvalidPaymentDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
