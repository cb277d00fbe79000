// Package profile contains user settings use cases.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
)

// ProfileOutput represents the user settings in use case outputs.
type ProfileOutput struct {
	Name          string
	AvatarURL     string
	MonthlyBudget decimal.Decimal
	UpdatedAt     time.Time
}

// GetProfileUseCase handles fetching the single local user's settings.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute returns the profile, defaulted when nothing has been saved yet.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*ProfileOutput, error) {
	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &ProfileOutput{
		Name:          profile.Name,
		AvatarURL:     profile.AvatarURL,
		MonthlyBudget: profile.MonthlyBudget,
		UpdatedAt:     profile.UpdatedAt,
	}, nil
}
