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

// ExpenseInput carries validated fields for create/update.
type ExpenseInput struct {
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// ExpenseService handles expense CRUD scoped to the authenticated user.
type ExpenseService interface {
	Create(ctx context.Context, userID uuid.UUID, in ExpenseInput) (*model.Expense, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Expense, error)
	Update(ctx context.Context, userID, id uuid.UUID, in ExpenseInput) (*model.Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type expenseService struct {
	repo repository.OwnedRepository[model.Expense]
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo repository.OwnedRepository[model.Expense]) ExpenseService {
	return &expenseService{repo: repo}
}

func (in ExpenseInput) validate() error {
	if in.Amount.IsNegative() {
		return apperrors.ErrInvalidAmount
	}
	if in.Date.IsZero() {
		return apperrors.ErrInvalidDate
	}
	return nil
}

func (s *expenseService) Create(ctx context.Context, userID uuid.UUID, in ExpenseInput) (*model.Expense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	expense := &model.Expense{
		UserID:      userID,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        in.Date,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) List(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *expenseService) Update(ctx context.Context, userID, id uuid.UUID, in ExpenseInput) (*model.Expense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"amount":      in.Amount,
		"category":    in.Category,
		"date":        in.Date,
		"description": in.Description,
	}
	if err := s.repo.Update(ctx, userID, id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID, id)
}

func (s *expenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
