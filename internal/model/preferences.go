package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPreferences holds per-user notification flags, created lazily with
// defaults on first access.
type UserPreferences struct {
	ID                 uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID             uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	EmailNotifications bool      `json:"email_notifications" gorm:"not null;default:true"`
	RenewalReminders   bool      `json:"renewal_reminders" gorm:"not null;default:true"`
	BudgetAlerts       bool      `json:"budget_alerts" gorm:"not null;default:true"`
	WeeklySummary      bool      `json:"weekly_summary" gorm:"not null;default:false"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultPreferences returns the record created on first access.
func DefaultPreferences(userID uuid.UUID) *UserPreferences {
	return &UserPreferences{
		UserID:             userID,
		EmailNotifications: true,
		RenewalReminders:   true,
		BudgetAlerts:       true,
		WeeklySummary:      false,
	}
}

// BeforeCreate sets UUID before creating the record.
func (p *UserPreferences) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
