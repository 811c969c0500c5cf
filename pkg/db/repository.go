package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository is the generic persistence surface shared by domain repositories
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindOneWhere(ctx context.Context, condition string, args ...any) (*T, error)
}

// GormRepository implements Repository on top of gorm
type GormRepository[T any] struct {
	db *gorm.DB
}

// NewGormRepository creates a repository bound to db
func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

// Create inserts entity in its own transaction so a failed insert leaves nothing behind
func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	return InTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(entity).Error
	})
}

// FindOneWhere returns the first row matching condition or gorm.ErrRecordNotFound
func (r *GormRepository[T]) FindOneWhere(ctx context.Context, condition string, args ...any) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(condition, args...).Take(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// InTx runs fn in a transaction, rolling back on error or panic
func InTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) (err error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err = tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
