package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/model"
	"subtrack/internal/repository"
)

// SavingInput carries validated fields for create/update.
type SavingInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
}

// SavingService handles savings-goal CRUD scoped to the authenticated user.
type SavingService interface {
	Create(ctx context.Context, userID uuid.UUID, in SavingInput) (*model.Saving, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Saving, error)
	Update(ctx context.Context, userID, id uuid.UUID, in SavingInput) (*model.Saving, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type savingService struct {
	repo repository.OwnedRepository[model.Saving]
}

// NewSavingService creates a new saving service.
func NewSavingService(repo repository.OwnedRepository[model.Saving]) SavingService {
	return &savingService{repo: repo}
}

func (in SavingInput) validate() error {
	if in.TargetAmount.IsNegative() || in.CurrentAmount.IsNegative() {
		return apperrors.ErrInvalidAmount
	}
	return nil
}

func (s *savingService) Create(ctx context.Context, userID uuid.UUID, in SavingInput) (*model.Saving, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	saving := &model.Saving{
		UserID:        userID,
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Deadline:      in.Deadline,
	}
	if err := s.repo.Create(ctx, saving); err != nil {
		return nil, fmt.Errorf("create saving: %w", err)
	}
	return saving, nil
}

func (s *savingService) List(ctx context.Context, userID uuid.UUID) ([]model.Saving, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *savingService) Update(ctx context.Context, userID, id uuid.UUID, in SavingInput) (*model.Saving, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":           in.Name,
		"target_amount":  in.TargetAmount,
		"current_amount": in.CurrentAmount,
		"deadline":       in.Deadline,
	}
	if err := s.repo.Update(ctx, userID, id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID, id)
}

func (s *savingService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
