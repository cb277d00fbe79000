// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/dompetku/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for user settings persistence.
// There is exactly one profile row per installation.
type ProfileRepository interface {
	// Get retrieves the profile, returning defaults when none has been
	// saved yet.
	Get(ctx context.Context) (*entity.Profile, error)

	// Save persists the profile, creating or replacing the single row.
	Save(ctx context.Context, profile *entity.Profile) error
}
