package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"subtrack/internal/model"
	"subtrack/internal/repository"
)

// NotificationService manages per-user notifications.
type NotificationService interface {
	Create(ctx context.Context, userID uuid.UUID, kind, message string) (*model.Notification, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type notificationService struct {
	repo repository.OwnedRepository[model.Notification]
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.OwnedRepository[model.Notification]) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Create(ctx context.Context, userID uuid.UUID, kind, message string) (*model.Notification, error) {
	n := &model.Notification{
		UserID:  userID,
		Type:    kind,
		Message: message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Update(ctx, userID, id, map[string]interface{}{"read": true})
}

func (s *notificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
