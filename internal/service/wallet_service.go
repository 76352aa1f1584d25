package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/model"
	"subtrack/internal/repository"
)

// WalletInput carries updatable wallet fields. Nil fields are left unchanged.
type WalletInput struct {
	Balance       *decimal.Decimal
	MonthlyBudget *decimal.Decimal
	Currency      *string
}

// WalletService manages the per-user wallet singleton.
type WalletService interface {
	Get(ctx context.Context, userID uuid.UUID) (*model.Wallet, error)
	Update(ctx context.Context, userID uuid.UUID, in WalletInput) (*model.Wallet, error)
}

type walletService struct {
	repo repository.SingletonRepository[model.Wallet]
}

// NewWalletService creates a new wallet service.
func NewWalletService(repo repository.SingletonRepository[model.Wallet]) WalletService {
	return &walletService{repo: repo}
}

// Get returns the user's wallet, creating it with defaults on first access.
func (s *walletService) Get(ctx context.Context, userID uuid.UUID) (*model.Wallet, error) {
	wallet, err := s.repo.GetOrCreate(ctx, userID, model.DefaultWallet(userID))
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return wallet, nil
}

func (s *walletService) Update(ctx context.Context, userID uuid.UUID, in WalletInput) (*model.Wallet, error) {
	updates := map[string]interface{}{}
	if in.Balance != nil {
		if in.Balance.IsNegative() {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["balance"] = *in.Balance
	}
	if in.MonthlyBudget != nil {
		if in.MonthlyBudget.IsNegative() {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["monthly_budget"] = *in.MonthlyBudget
	}
	if in.Currency != nil {
		updates["currency"] = *in.Currency
	}

	// Ensure the singleton exists before updating it.
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, userID, updates); err != nil {
			return nil, fmt.Errorf("update wallet: %w", err)
		}
	}
	return s.Get(ctx, userID)
}
