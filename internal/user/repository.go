package user

import (
	"context"
	"errors"
	"fmt"

	"quillpost-api/internal/models"
	"quillpost-api/pkg/db"

	"gorm.io/gorm"
)

// NewRepository creates a new user repository
func NewRepository(database *gorm.DB) Repository {
	return &repo{
		userRepo: db.NewGormRepository[models.User](database),
	}
}

// repo is the concrete implementation of Repository
type repo struct {
	userRepo db.Repository[models.User]
}

// SaveUser creates a new user. The unique index on email decides conflicts.
func (r *repo) SaveUser(ctx context.Context, user *models.User) error {
	user.Email = NormalizeEmail(user.Email)

	err := r.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// FindUserByEmail finds a user by normalized email
func (r *repo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.userRepo.FindOneWhere(ctx, "email = ?", NormalizeEmail(email))
	return user, translateLookupError(err)
}

func translateLookupError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrUserNotFound
	default:
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
}
