// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dompetku/backend/internal/application/usecase/profile"
)

// UpdateProfileRequest represents a partial settings update.
type UpdateProfileRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,max=255"`
	AvatarURL     *string `json:"avatar_url,omitempty"`
	MonthlyBudget *int64  `json:"monthly_budget,omitempty"`
}

// ProfileResponse represents the user settings in API responses.
type ProfileResponse struct {
	Name          string    `json:"name"`
	AvatarURL     string    `json:"avatar_url"`
	MonthlyBudget string    `json:"monthly_budget"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToProfileResponse maps a profile output to its API representation.
func ToProfileResponse(output *profile.ProfileOutput) ProfileResponse {
	return ProfileResponse{
		Name:          output.Name,
		AvatarURL:     output.AvatarURL,
		MonthlyBudget: output.MonthlyBudget.String(),
		UpdatedAt:     output.UpdatedAt,
	}
}
