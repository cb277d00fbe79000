// Package profile contains user settings use cases.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/application/adapter"
	domainerror "github.com/dompetku/backend/internal/domain/error"
)

// UpdateProfileInput represents a partial settings update. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	Name          *string
	AvatarURL     *string
	MonthlyBudget *decimal.Decimal
}

// UpdateProfileUseCase handles updating the user's settings.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute applies the partial update and persists the settings.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*ProfileOutput, error) {
	if input.MonthlyBudget != nil && input.MonthlyBudget.IsNegative() {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeNegativeMonthlyBudget,
			"monthly budget cannot be negative",
			domainerror.ErrNegativeMonthlyBudget,
		)
	}

	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.MonthlyBudget != nil {
		profile.MonthlyBudget = *input.MonthlyBudget
	}
	profile.UpdatedAt = time.Now()

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &ProfileOutput{
		Name:          profile.Name,
		AvatarURL:     profile.AvatarURL,
		MonthlyBudget: profile.MonthlyBudget,
		UpdatedAt:     profile.UpdatedAt,
	}, nil
}
