package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Saving is a savings goal with optional deadline.
type Saving struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	Name          string          `json:"name" gorm:"size:255;not null"`
	TargetAmount  decimal.Decimal `json:"target_amount" gorm:"type:decimal(12,2);not null"`
	CurrentAmount decimal.Decimal `json:"current_amount" gorm:"type:decimal(12,2);not null;default:0"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OwnerID returns the owning user's id.
func (s Saving) OwnerID() uuid.UUID { return s.UserID }

// BeforeCreate sets UUID before creating the record.
func (s *Saving) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
