// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile holds the single local user's display settings and the monthly
// spending budget used by the analytics engine.
type Profile struct {
	Name          string
	AvatarURL     string
	MonthlyBudget decimal.Decimal
	UpdatedAt     time.Time
}

// DefaultProfile returns the profile used before the user configures
// anything: no name, no avatar, zero budget.
func DefaultProfile() *Profile {
	return &Profile{
		MonthlyBudget: decimal.Zero,
		UpdatedAt:     time.Now(),
	}
}
