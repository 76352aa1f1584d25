package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet is the one-per-user budget record, created lazily on first access.
type Wallet struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	Balance       decimal.Decimal `json:"balance" gorm:"type:decimal(12,2);not null;default:0"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget" gorm:"type:decimal(12,2);not null;default:0"`
	Currency      string          `json:"currency" gorm:"size:8;not null;default:'USD'"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DefaultWallet returns the record created on first access.
func DefaultWallet(userID uuid.UUID) *Wallet {
	return &Wallet{
		UserID:        userID,
		Balance:       decimal.Zero,
		MonthlyBudget: decimal.Zero,
		Currency:      "USD",
	}
}

// BeforeCreate sets UUID before creating the record.
func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
