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

// SubscriptionInput carries validated fields for create/update.
type SubscriptionInput struct {
	Name        string
	Price       decimal.Decimal
	BillingDate time.Time
	Categories  []string
	Description string
}

// SubscriptionService handles subscription CRUD, always scoped to the
// authenticated user.
type SubscriptionService interface {
	Create(ctx context.Context, userID uuid.UUID, in SubscriptionInput) (*model.Subscription, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Subscription, error)
	Update(ctx context.Context, userID, id uuid.UUID, in SubscriptionInput) (*model.Subscription, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type subscriptionService struct {
	repo repository.OwnedRepository[model.Subscription]
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(repo repository.OwnedRepository[model.Subscription]) SubscriptionService {
	return &subscriptionService{repo: repo}
}

func (in SubscriptionInput) validate() error {
	if in.Price.IsNegative() {
		return apperrors.ErrInvalidAmount
	}
	if in.BillingDate.IsZero() {
		return apperrors.ErrInvalidDate
	}
	return nil
}

func (s *subscriptionService) Create(ctx context.Context, userID uuid.UUID, in SubscriptionInput) (*model.Subscription, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	sub := &model.Subscription{
		UserID:      userID,
		Name:        in.Name,
		Price:       in.Price,
		BillingDate: in.BillingDate,
		Categories:  model.StringList(in.Categories),
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return sub, nil
}

func (s *subscriptionService) List(ctx context.Context, userID uuid.UUID) ([]model.Subscription, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *subscriptionService) Update(ctx context.Context, userID, id uuid.UUID, in SubscriptionInput) (*model.Subscription, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":         in.Name,
		"price":        in.Price,
		"billing_date": in.BillingDate,
		"categories":   model.StringList(in.Categories),
		"description":  in.Description,
	}
	if err := s.repo.Update(ctx, userID, id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID, id)
}

func (s *subscriptionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
