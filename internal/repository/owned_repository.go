package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "subtrack/internal/errors"
)

// OwnedRecord is any entity carrying a foreign key to its owning user.
type OwnedRecord interface {
	OwnerID() uuid.UUID
}

// OwnedRepository is the single CRUD implementation shared by all owned
// entities. Every read and mutation filters by both record id and user id, so
// a record owned by someone else behaves exactly like a missing one.
type OwnedRepository[T OwnedRecord] interface {
	Create(ctx context.Context, rec *T) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]T, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*T, error)
	Update(ctx context.Context, userID, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ownedRepository[T OwnedRecord] struct {
	db    *gorm.DB
	order string // per-entity list order, e.g. "date DESC"
}

// NewOwnedRepository builds a GORM-backed repository for one entity type.
func NewOwnedRepository[T OwnedRecord](db *gorm.DB, order string) OwnedRepository[T] {
	return &ownedRepository[T]{db: db, order: order}
}

func (r *ownedRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ownedRepository[T]) ListByUser(ctx context.Context, userID uuid.UUID) ([]T, error) {
	var recs []T
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(r.order).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ownedRepository[T]) FindByID(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *ownedRepository[T]) Update(ctx context.Context, userID, id uuid.UUID, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ownedRepository[T]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
