package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Subscription is a recurring service a user pays for. A subscription may sit
// in several categories at once; aggregation counts its full price in every
// one of them.
type Subscription struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	BillingDate time.Time       `json:"billing_date" gorm:"not null;index"`
	Categories  StringList      `json:"categories" gorm:"type:json"`
	Description string          `json:"description,omitempty" gorm:"size:1024"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OwnerID returns the owning user's id.
func (s Subscription) OwnerID() uuid.UUID { return s.UserID }

// BeforeCreate sets UUID before creating the record.
func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
