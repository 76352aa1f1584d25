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

// IncomeInput carries validated fields for create/update.
type IncomeInput struct {
	Amount      decimal.Decimal
	Source      string
	Date        time.Time
	Description string
}

// IncomeService handles income CRUD scoped to the authenticated user.
type IncomeService interface {
	Create(ctx context.Context, userID uuid.UUID, in IncomeInput) (*model.Income, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Income, error)
	Update(ctx context.Context, userID, id uuid.UUID, in IncomeInput) (*model.Income, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type incomeService struct {
	repo repository.OwnedRepository[model.Income]
}

// NewIncomeService creates a new income service.
func NewIncomeService(repo repository.OwnedRepository[model.Income]) IncomeService {
	return &incomeService{repo: repo}
}

func (in IncomeInput) validate() error {
	if in.Amount.IsNegative() {
		return apperrors.ErrInvalidAmount
	}
	if in.Date.IsZero() {
		return apperrors.ErrInvalidDate
	}
	return nil
}

func (s *incomeService) Create(ctx context.Context, userID uuid.UUID, in IncomeInput) (*model.Income, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	income := &model.Income{
		UserID:      userID,
		Amount:      in.Amount,
		Source:      in.Source,
		Date:        in.Date,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("create income: %w", err)
	}
	return income, nil
}

func (s *incomeService) List(ctx context.Context, userID uuid.UUID) ([]model.Income, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *incomeService) Update(ctx context.Context, userID, id uuid.UUID, in IncomeInput) (*model.Income, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"amount":      in.Amount,
		"source":      in.Source,
		"date":        in.Date,
		"description": in.Description,
	}
	if err := s.repo.Update(ctx, userID, id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID, id)
}

func (s *incomeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
