// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/usecase/profile"
	domainerror "github.com/dompetku/backend/internal/domain/error"
	"github.com/dompetku/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles user settings endpoints.
type ProfileController struct {
	getUseCase    *profile.GetProfileUseCase
	updateUseCase *profile.UpdateProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getUseCase *profile.GetProfileUseCase,
	updateUseCase *profile.UpdateProfileUseCase,
) *ProfileController {
	return &ProfileController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve profile",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// Update handles PATCH /profile requests. Absent fields are left unchanged.
func (c *ProfileController) Update(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := profile.UpdateProfileInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	}
	if req.MonthlyBudget != nil {
		budget := decimal.NewFromInt(*req.MonthlyBudget)
		input.MonthlyBudget = &budget
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var prfErr *domainerror.ProfileError
		if errors.As(err, &prfErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: prfErr.Message,
				Code:  string(prfErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update profile",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}
