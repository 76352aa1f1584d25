package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SingletonRepository manages one-per-user records (wallet, preferences).
// First access creates the record with defaults. Creation goes through an
// ON CONFLICT DO NOTHING insert keyed on user_id, so two concurrent first
// reads cannot produce duplicates or an error.
type SingletonRepository[T any] interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, defaults *T) (*T, error)
	Update(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error
}

type singletonRepository[T any] struct {
	db *gorm.DB
}

// NewSingletonRepository builds a GORM-backed singleton repository.
func NewSingletonRepository[T any](db *gorm.DB) SingletonRepository[T] {
	return &singletonRepository[T]{db: db}
}

func (r *singletonRepository[T]) GetOrCreate(ctx context.Context, userID uuid.UUID, defaults *T) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(defaults).Error; err != nil {
		return nil, err
	}

	// Re-read: under a concurrent first access the insert above may have
	// been the losing no-op.
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *singletonRepository[T]) Update(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(new(T)).
		Where("user_id = ?", userID).
		Updates(updates).Error
}
