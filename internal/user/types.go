package user

import (
	"context"

	"quillpost-api/internal/models"
)

// Repository defines the credential store used by the auth service
type Repository interface {
	// SaveUser inserts a new record. A duplicate email yields ErrEmailAlreadyExists.
	SaveUser(ctx context.Context, user *models.User) error
	// FindUserByEmail yields ErrUserNotFound when no record matches.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserValidator validates user input before it reaches the store
type UserValidator interface {
	ValidateRegistration(name, email, password string) error
	ValidateEmail(email string) bool
	ValidateName(name string) bool
	ValidatePassword(password string) bool
}

// userValidator is the concrete implementation of UserValidator
type userValidator struct{}
