package user

import (
	"errors"
)

// Custom error types for the user package
var (
	// ErrUserNotFound indicates the user was not found
	ErrUserNotFound = errors.New("User not found")

	// ErrInvalidEmail indicates the provided email is invalid
	ErrInvalidEmail = errors.New("Invalid email format")

	// ErrInvalidName indicates the provided display name is invalid
	ErrInvalidName = errors.New("Invalid name")

	// ErrWeakPassword indicates the provided password does not meet the minimum length
	ErrWeakPassword = errors.New("Password must be at least 8 characters")

	// ErrEmailAlreadyExists indicates the email is already in use
	ErrEmailAlreadyExists = errors.New("Email already exists")

	// ErrDatabaseError indicates an error occurred with the database
	ErrDatabaseError = errors.New("Database operation failed")
)
