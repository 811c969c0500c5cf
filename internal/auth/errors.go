package auth

import (
	"errors"
)

// Custom error types for the auth package
var (
	// ErrUserAlreadyRegistered indicates the email is already taken
	ErrUserAlreadyRegistered = errors.New("User already registered.")

	// ErrInvalidCredentials covers both an unknown email and a wrong password
	ErrInvalidCredentials = errors.New("Invalid login credentials.")

	// ErrTooManyAttempts indicates the email or client is temporarily locked out
	ErrTooManyAttempts = errors.New("Too many failed login attempts. Please try again later.")

	// ErrInvalidIdentity indicates the federated identity token was rejected
	ErrInvalidIdentity = errors.New("Invalid identity token.")
)
