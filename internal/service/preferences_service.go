package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"subtrack/internal/model"
	"subtrack/internal/repository"
)

// PreferencesInput carries updatable flags. Nil fields are left unchanged.
type PreferencesInput struct {
	EmailNotifications *bool
	RenewalReminders   *bool
	BudgetAlerts       *bool
	WeeklySummary      *bool
}

// PreferencesService manages the per-user preferences singleton.
type PreferencesService interface {
	Get(ctx context.Context, userID uuid.UUID) (*model.UserPreferences, error)
	Update(ctx context.Context, userID uuid.UUID, in PreferencesInput) (*model.UserPreferences, error)
}

type preferencesService struct {
	repo repository.SingletonRepository[model.UserPreferences]
}

// NewPreferencesService creates a new preferences service.
func NewPreferencesService(repo repository.SingletonRepository[model.UserPreferences]) PreferencesService {
	return &preferencesService{repo: repo}
}

// Get returns the user's preferences, creating defaults on first access.
func (s *preferencesService) Get(ctx context.Context, userID uuid.UUID) (*model.UserPreferences, error) {
	prefs, err := s.repo.GetOrCreate(ctx, userID, model.DefaultPreferences(userID))
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

func (s *preferencesService) Update(ctx context.Context, userID uuid.UUID, in PreferencesInput) (*model.UserPreferences, error) {
	updates := map[string]interface{}{}
	if in.EmailNotifications != nil {
		updates["email_notifications"] = *in.EmailNotifications
	}
	if in.RenewalReminders != nil {
		updates["renewal_reminders"] = *in.RenewalReminders
	}
	if in.BudgetAlerts != nil {
		updates["budget_alerts"] = *in.BudgetAlerts
	}
	if in.WeeklySummary != nil {
		updates["weekly_summary"] = *in.WeeklySummary
	}

	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, userID, updates); err != nil {
			return nil, fmt.Errorf("update preferences: %w", err)
		}
	}
	return s.Get(ctx, userID)
}
