// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompetku/backend/internal/domain/entity"
)

// profileRowID is the fixed primary key of the single settings row.
const profileRowID = 1

// ProfileModel represents the single-row profile table in the database.
type ProfileModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement:false"`
	Name          string          `gorm:"type:varchar(255)"`
	AvatarURL     string          `gorm:"type:text"`
	MonthlyBudget decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profile"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		Name:          m.Name,
		AvatarURL:     m.AvatarURL,
		MonthlyBudget: m.MonthlyBudget,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileFromEntity(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:            profileRowID,
		Name:          profile.Name,
		AvatarURL:     profile.AvatarURL,
		MonthlyBudget: profile.MonthlyBudget,
		UpdatedAt:     profile.UpdatedAt,
	}
}
