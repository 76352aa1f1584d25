package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is an earnings entry (salary, freelance, etc).
type Income struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Source      string          `json:"source" gorm:"size:255;not null"`
	Date        time.Time       `json:"date" gorm:"not null;index"`
	Description string          `json:"description,omitempty" gorm:"size:1024"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OwnerID returns the owning user's id.
func (i Income) OwnerID() uuid.UUID { return i.UserID }

// BeforeCreate sets UUID before creating the record.
func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
